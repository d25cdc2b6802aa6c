package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/bemgestar/bemgestar/internal/client/models"
	"github.com/bemgestar/bemgestar/internal/validate"
)

// ScheduleInput carries the editable fields of an agenda entry. Time accepts
// raw digits ("1430") and is normalized to HH:mm before the request goes out.
type ScheduleInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

func (in *ScheduleInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return validationError("Informe o nome do compromisso")
	}
	if !validate.ValidISODate(in.Date) {
		return validationError("Data inválida, use o formato AAAA-MM-DD")
	}
	normalized, err := validate.NormalizeTime(in.Time)
	if err != nil {
		return validationError(err.Error())
	}
	in.Time = normalized
	return nil
}

// MonthSchedule lists the events of a month (YYYY-MM).
func (c *Client) MonthSchedule(ctx context.Context, token, month string) ([]models.ScheduledEvent, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	if !validate.ValidMonth(month) {
		return nil, validationError("Mês inválido, use o formato AAAA-MM")
	}

	query := url.Values{"month": {month}}
	raw, err := c.do(ctx, http.MethodGet, "/getMonthSchedule", query, token, nil, "Erro ao buscar a agenda do mês")
	if err != nil {
		return nil, err
	}
	return decodeList[models.ScheduledEvent](raw), nil
}

// DaySchedule lists the events of one day (YYYY-MM-DD) and fills each
// event's DD/MM display fragment.
func (c *Client) DaySchedule(ctx context.Context, token, day string) ([]models.ScheduledEvent, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	if !validate.ValidISODate(day) {
		return nil, validationError("Data inválida, use o formato AAAA-MM-DD")
	}

	query := url.Values{"day": {day}}
	raw, err := c.do(ctx, http.MethodGet, "/getDaySchedule", query, token, nil, "Erro ao buscar a agenda do dia")
	if err != nil {
		return nil, err
	}

	events := decodeList[models.ScheduledEvent](raw)
	for i := range events {
		date := events[i].Date
		if date == "" {
			date = day
		}
		events[i].DisplayDate = validate.DayMonth(date)
	}
	return events, nil
}

// CreateSchedule adds an agenda entry.
func (c *Client) CreateSchedule(ctx context.Context, token string, in ScheduleInput) (*models.ScheduledEvent, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, http.MethodPost, "/createSchedule", nil, token, in, "Erro ao criar o compromisso")
	if err != nil {
		return nil, err
	}
	return decodeObject[models.ScheduledEvent](raw, "Erro ao criar o compromisso")
}

// UpdateSchedule rewrites an existing entry, identified by documentId.
func (c *Client) UpdateSchedule(ctx context.Context, token, documentID string, in ScheduleInput) (*models.ScheduledEvent, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	if strings.TrimSpace(documentID) == "" {
		return nil, validationError("Identificador do compromisso não informado")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	query := url.Values{"scheduleDocumentId": {documentID}}
	raw, err := c.do(ctx, http.MethodPut, "/updateSchedule", query, token, in, "Erro ao atualizar o compromisso")
	if err != nil {
		return nil, err
	}
	return decodeObject[models.ScheduledEvent](raw, "Erro ao atualizar o compromisso")
}

// DeleteSchedule removes an entry and returns the server's message.
func (c *Client) DeleteSchedule(ctx context.Context, token, documentID string) (string, error) {
	if err := requireToken(token); err != nil {
		return "", err
	}
	if strings.TrimSpace(documentID) == "" {
		return "", validationError("Identificador do compromisso não informado")
	}

	query := url.Values{"scheduleDocumentId": {documentID}}
	raw, err := c.do(ctx, http.MethodDelete, "/deleteSchedule", query, token, nil, "Erro ao excluir o compromisso")
	if err != nil {
		return "", err
	}
	return textMessage(raw, "Compromisso excluído"), nil
}
