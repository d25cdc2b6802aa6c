package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/bemgestar/bemgestar/internal/client/models"
)

// Lists returns every preparation list of the authenticated user.
func (c *Client) Lists(ctx context.Context, token string) ([]models.List, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, http.MethodGet, "/listList", nil, token, nil, "Erro ao buscar as listas")
	if err != nil {
		return nil, err
	}
	return decodeList[models.List](raw), nil
}

// CreateList adds a new list.
func (c *Client) CreateList(ctx context.Context, token, name string) (*models.List, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, validationError("Informe o nome da lista")
	}

	body := map[string]string{"name": name}
	raw, err := c.do(ctx, http.MethodPost, "/createList", nil, token, body, "Erro ao criar a lista")
	if err != nil {
		return nil, err
	}
	return decodeObject[models.List](raw, "Erro ao criar a lista")
}

// UpdateList renames a list, identified by documentId.
func (c *Client) UpdateList(ctx context.Context, token, documentID, name string) (*models.List, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	if strings.TrimSpace(documentID) == "" {
		return nil, validationError("Identificador da lista não informado")
	}
	if strings.TrimSpace(name) == "" {
		return nil, validationError("Informe o nome da lista")
	}

	query := url.Values{"listDocumentId": {documentID}}
	body := map[string]string{"name": name}
	raw, err := c.do(ctx, http.MethodPut, "/updateList", query, token, body, "Erro ao atualizar a lista")
	if err != nil {
		return nil, err
	}
	return decodeObject[models.List](raw, "Erro ao atualizar a lista")
}

// DeleteList removes a list. The endpoint may answer with plain text
// instead of JSON on both success and failure; the body is read once and
// interpreted either way.
func (c *Client) DeleteList(ctx context.Context, token, documentID string) (string, error) {
	if err := requireToken(token); err != nil {
		return "", err
	}
	if strings.TrimSpace(documentID) == "" {
		return "", validationError("Identificador da lista não informado")
	}

	query := url.Values{"listDocumentId": {documentID}}
	raw, err := c.do(ctx, http.MethodDelete, "/deleteList", query, token, nil, "Erro ao excluir a lista")
	if err != nil {
		return "", err
	}
	return textMessage(raw, "Lista deletada"), nil
}
