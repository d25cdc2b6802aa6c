package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/bemgestar/bemgestar/internal/client/models"
	"github.com/bemgestar/bemgestar/internal/validate"
)

// ProfileUpdate carries the editable profile fields. Empty strings mean
// "leave unchanged"; the server merges.
type ProfileUpdate struct {
	Name                   string `json:"name,omitempty"`
	ProbableDateOfDelivery string `json:"probableDateOfDelivery,omitempty"`
	BabyGender             string `json:"babyGender,omitempty"`
	BabyName               string `json:"babyName,omitempty"`
	FatherName             string `json:"fatherName,omitempty"`
}

// Profile fetches the authenticated user's pregnancy profile.
func (c *Client) Profile(ctx context.Context, token string) (*models.ClientProfile, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, http.MethodGet, "/getMyData", nil, token, nil, "Erro ao buscar os seus dados")
	if err != nil {
		return nil, err
	}
	return decodeObject[models.ClientProfile](raw, "Erro ao buscar os seus dados")
}

// UpdateProfile rewrites the profile in place.
func (c *Client) UpdateProfile(ctx context.Context, token string, update ProfileUpdate) (*models.ClientProfile, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	if update.ProbableDateOfDelivery != "" && !validate.ValidISODate(update.ProbableDateOfDelivery) {
		return nil, validationError("Data inválida, use o formato AAAA-MM-DD")
	}
	if update == (ProfileUpdate{}) {
		return nil, validationError("Nenhum dado para atualizar")
	}

	raw, err := c.do(ctx, http.MethodPut, "/updateClient", nil, token, update, "Erro ao atualizar os seus dados")
	if err != nil {
		return nil, err
	}
	return decodeObject[models.ClientProfile](raw, "Erro ao atualizar os seus dados")
}

// DeleteAccount removes the client profile; the server cascades this into
// full account deletion.
func (c *Client) DeleteAccount(ctx context.Context, token string) (string, error) {
	if err := requireToken(token); err != nil {
		return "", err
	}

	raw, err := c.do(ctx, http.MethodDelete, "/deleteMyClient", nil, token, nil, "Erro ao excluir a conta")
	if err != nil {
		return "", err
	}
	return textMessage(raw, "Conta excluída"), nil
}

// Terms fetches legal content; kind is "privacy" or "terms". No auth.
func (c *Client) Terms(ctx context.Context, kind string) ([]models.Term, error) {
	kind = strings.TrimSpace(kind)
	if kind != "privacy" && kind != "terms" {
		return nil, validationError("Tipo de termo inválido")
	}

	raw, err := c.do(ctx, http.MethodGet, "/listTerms", url.Values{"type": {kind}}, "", nil, "Erro ao buscar os termos")
	if err != nil {
		return nil, err
	}
	return decodeList[models.Term](raw), nil
}
