package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bemgestar/bemgestar/internal/client/api"
)

// Lists shows the user's preparation lists.
func (a *App) Lists(ctx context.Context) error {
	lists, err := a.api.Lists(ctx, a.token(ctx))
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}

	if len(lists) == 0 {
		fmt.Println("Nenhuma lista ainda")
		return nil
	}
	for _, l := range lists {
		fmt.Printf("%s (%s)\n", l.Name, l.DocumentID)
	}
	return nil
}

// AddList creates a list.
func (a *App) AddList(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Nome da lista", os.Stdout)
	if err != nil {
		return err
	}

	list, err := a.api.CreateList(ctx, a.token(ctx), name)
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}
	fmt.Printf("Lista criada: %s (%s)\n", list.Name, list.DocumentID)
	return nil
}

// RenameList renames a list by documentId.
func (a *App) RenameList(ctx context.Context, documentID string) error {
	if documentID == "" {
		fmt.Println("Uso: renomearlista <id>")
		return nil
	}

	name, err := getSimpleText(a.reader, "Novo nome", os.Stdout)
	if err != nil {
		return err
	}

	list, err := a.api.UpdateList(ctx, a.token(ctx), documentID, name)
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}
	fmt.Printf("Lista atualizada: %s\n", list.Name)
	return nil
}

// RemoveList deletes a list by documentId.
func (a *App) RemoveList(ctx context.Context, documentID string) error {
	if documentID == "" {
		fmt.Println("Uso: apagarlista <id>")
		return nil
	}

	msg, err := a.api.DeleteList(ctx, a.token(ctx), documentID)
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}
	fmt.Println(msg)
	return nil
}

// Topics shows the items of a list.
func (a *App) Topics(ctx context.Context, listDocumentID string) error {
	if listDocumentID == "" {
		fmt.Println("Uso: itens <id da lista>")
		return nil
	}

	topics, err := a.api.Topics(ctx, a.token(ctx), listDocumentID)
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}

	if len(topics) == 0 {
		fmt.Println("Lista vazia")
		return nil
	}
	for _, t := range topics {
		fmt.Printf("%s (%s)\n", t.Name, t.DocumentID)
	}
	return nil
}

// AddTopic adds an item to a list.
func (a *App) AddTopic(ctx context.Context, listDocumentID string) error {
	if listDocumentID == "" {
		fmt.Println("Uso: novoitem <id da lista>")
		return nil
	}

	name, err := getSimpleText(a.reader, "Nome do item", os.Stdout)
	if err != nil {
		return err
	}

	topic, err := a.api.CreateTopic(ctx, a.token(ctx), listDocumentID, name)
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}
	fmt.Printf("Item criado: %s (%s)\n", topic.Name, topic.DocumentID)
	return nil
}

// RenameTopic renames an item by its documentId.
func (a *App) RenameTopic(ctx context.Context, topicDocumentID string) error {
	if topicDocumentID == "" {
		fmt.Println("Uso: renomearitem <id>")
		return nil
	}

	name, err := getSimpleText(a.reader, "Novo nome", os.Stdout)
	if err != nil {
		return err
	}

	topic, err := a.api.UpdateTopic(ctx, a.token(ctx), topicDocumentID, name)
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}
	fmt.Printf("Item atualizado: %s\n", topic.Name)
	return nil
}

// RemoveTopic deletes an item by its documentId.
func (a *App) RemoveTopic(ctx context.Context, topicDocumentID string) error {
	if topicDocumentID == "" {
		fmt.Println("Uso: apagaritem <id>")
		return nil
	}

	msg, err := a.api.DeleteTopic(ctx, a.token(ctx), topicDocumentID)
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}
	fmt.Println(msg)
	return nil
}
