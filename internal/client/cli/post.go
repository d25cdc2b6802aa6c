package cli

import (
	"context"
	"fmt"

	"github.com/bemgestar/bemgestar/internal/client/api"
)

// Posts lists the blog entries.
func (a *App) Posts(ctx context.Context) error {
	posts, err := a.api.Posts(ctx, a.token(ctx))
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}

	if len(posts) == 0 {
		fmt.Println("Nenhuma publicação disponível")
		return nil
	}
	for _, p := range posts {
		fmt.Printf("%s  %s (%s)\n", p.PublishedAtDisplay, p.Title, p.DocumentID)
	}
	return nil
}

// ShowPost fetches one blog entry by documentId.
func (a *App) ShowPost(ctx context.Context, documentID string) error {
	if documentID == "" {
		fmt.Println("Uso: post <id>")
		return nil
	}

	post, err := a.api.Post(ctx, a.token(ctx), documentID)
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}

	fmt.Printf("%s\n%s\n\n%s\n", post.Title, post.PublishedAtDisplay, post.Content)
	if post.Image != nil && post.Image.URL != "" {
		fmt.Printf("Imagem: %s\n", post.Image.URL)
	}
	return nil
}
