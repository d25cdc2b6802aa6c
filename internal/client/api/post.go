package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/bemgestar/bemgestar/internal/client/models"
	"github.com/bemgestar/bemgestar/internal/validate"
)

// Posts lists the blog entries visible to clients, with image URLs made
// absolute and publication dates pre-rendered for display.
func (c *Client) Posts(ctx context.Context, token string) ([]models.Post, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, http.MethodGet, "/listPostsInClient", nil, token, nil, "Erro ao buscar as publicações")
	if err != nil {
		return nil, err
	}

	posts := decodeList[models.Post](raw)
	for i := range posts {
		c.preparePost(&posts[i])
	}
	return posts, nil
}

// Post fetches one blog entry by documentId.
func (c *Client) Post(ctx context.Context, token, documentID string) (*models.Post, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	if strings.TrimSpace(documentID) == "" {
		return nil, validationError("Identificador da publicação não informado")
	}

	query := url.Values{"postDocumentId": {documentID}}
	raw, err := c.do(ctx, http.MethodGet, "/getPostsInClient", query, token, nil, "Erro ao buscar a publicação")
	if err != nil {
		return nil, err
	}

	post, err := decodeObject[models.Post](raw, "Erro ao buscar a publicação")
	if err != nil {
		return nil, err
	}
	c.preparePost(post)
	return post, nil
}

func (c *Client) preparePost(p *models.Post) {
	if p.Image != nil {
		p.Image.URL = c.absoluteMediaURL(p.Image.URL)
		for name, format := range p.Image.Formats {
			format.URL = c.absoluteMediaURL(format.URL)
			p.Image.Formats[name] = format
		}
	}
	if len(p.PublishedAt) >= 10 && validate.ValidISODate(p.PublishedAt[:10]) {
		p.PublishedAtDisplay = validate.FormatDate(p.PublishedAt[:10])
	}
}

// absoluteMediaURL resolves a server-relative media path against the API
// host (the media root sits one level above the /api prefix). Absolute URLs
// pass through untouched.
func (c *Client) absoluteMediaURL(u string) string {
	if u == "" || strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	host := strings.TrimSuffix(c.baseURL, "/api")
	if !strings.HasPrefix(u, "/") {
		u = "/" + u
	}
	return host + u
}
