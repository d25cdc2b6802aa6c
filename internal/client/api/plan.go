package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/bemgestar/bemgestar/internal/client/models"
)

// The childbirth-plan endpoints sit behind slow server-side PDF machinery,
// so every call in this family runs under its own deadline. The deadline
// aborts the in-flight request instead of merely abandoning it.

// ChildbirthPlan lists the plan checklist with the user's selections.
func (c *Client) ChildbirthPlan(ctx context.Context, token string) ([]models.PlanItem, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.planTimeout)
	defer cancel()

	raw, err := c.do(ctx, http.MethodGet, "/listChildbirthPlan", nil, token, nil, "Erro ao buscar o plano de parto")
	if err != nil {
		return nil, err
	}
	return decodeList[models.PlanItem](raw), nil
}

// SelectOrUnselectPlanItem toggles one checklist item for the user.
func (c *Client) SelectOrUnselectPlanItem(ctx context.Context, token, planDocumentID string) (string, error) {
	if err := requireToken(token); err != nil {
		return "", err
	}
	if strings.TrimSpace(planDocumentID) == "" {
		return "", validationError("Identificador do item não informado")
	}

	ctx, cancel := context.WithTimeout(ctx, c.planTimeout)
	defer cancel()

	query := url.Values{"planDocumentId": {planDocumentID}}
	raw, err := c.do(ctx, http.MethodPatch, "/selectOrUnselectChildbirthPlan", query, token, nil, "Erro ao atualizar o plano de parto")
	if err != nil {
		return "", err
	}
	return textMessage(raw, "Plano de parto atualizado"), nil
}

// PlanPDF asks the server to render the user's plan as a PDF and returns
// the raw document bytes.
func (c *Client) PlanPDF(ctx context.Context, token string) ([]byte, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.planTimeout)
	defer cancel()

	raw, err := c.do(ctx, http.MethodGet, "/pdfChildbirthPlan", nil, token, nil, "Erro ao gerar o PDF do plano de parto")
	if err != nil {
		return nil, err
	}
	return raw, nil
}
