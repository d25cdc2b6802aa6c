package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/bemgestar/bemgestar/internal/client/models"
)

// Topics returns the items of one list, keyed by the list's documentId.
func (c *Client) Topics(ctx context.Context, token, listDocumentID string) ([]models.Topic, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	if strings.TrimSpace(listDocumentID) == "" {
		return nil, validationError("Identificador da lista não informado")
	}

	query := url.Values{"listDocumentId": {listDocumentID}}
	raw, err := c.do(ctx, http.MethodGet, "/listTopic", query, token, nil, "Erro ao buscar os itens da lista")
	if err != nil {
		return nil, err
	}
	return decodeList[models.Topic](raw), nil
}

// CreateTopic adds an item to a list.
func (c *Client) CreateTopic(ctx context.Context, token, listDocumentID, name string) (*models.Topic, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	if strings.TrimSpace(listDocumentID) == "" {
		return nil, validationError("Identificador da lista não informado")
	}
	if strings.TrimSpace(name) == "" {
		return nil, validationError("Informe o nome do item")
	}

	query := url.Values{"listDocumentId": {listDocumentID}}
	body := map[string]string{"name": name}
	raw, err := c.do(ctx, http.MethodPost, "/createTopic", query, token, body, "Erro ao criar o item")
	if err != nil {
		return nil, err
	}
	return decodeObject[models.Topic](raw, "Erro ao criar o item")
}

// UpdateTopic renames an item, identified by its own documentId.
func (c *Client) UpdateTopic(ctx context.Context, token, topicDocumentID, name string) (*models.Topic, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	if strings.TrimSpace(topicDocumentID) == "" {
		return nil, validationError("Identificador do item não informado")
	}
	if strings.TrimSpace(name) == "" {
		return nil, validationError("Informe o nome do item")
	}

	query := url.Values{"topicDocumentId": {topicDocumentID}}
	body := map[string]string{"name": name}
	raw, err := c.do(ctx, http.MethodPut, "/updateTopic", query, token, body, "Erro ao atualizar o item")
	if err != nil {
		return nil, err
	}
	return decodeObject[models.Topic](raw, "Erro ao atualizar o item")
}

// DeleteTopic removes an item. Same plain-text-or-JSON body contract as
// DeleteList.
func (c *Client) DeleteTopic(ctx context.Context, token, topicDocumentID string) (string, error) {
	if err := requireToken(token); err != nil {
		return "", err
	}
	if strings.TrimSpace(topicDocumentID) == "" {
		return "", validationError("Identificador do item não informado")
	}

	query := url.Values{"topicDocumentId": {topicDocumentID}}
	raw, err := c.do(ctx, http.MethodDelete, "/deleteTopic", query, token, nil, "Erro ao excluir o item")
	if err != nil {
		return "", err
	}
	return textMessage(raw, "Item deletado"), nil
}
