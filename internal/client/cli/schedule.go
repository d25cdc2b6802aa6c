package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bemgestar/bemgestar/internal/client/api"
	"github.com/bemgestar/bemgestar/internal/validate"
)

// MonthAgenda lists the events of a month (AAAA-MM).
func (a *App) MonthAgenda(ctx context.Context, month string) error {
	if month == "" {
		fmt.Println("Uso: agenda <AAAA-MM>")
		return nil
	}

	events, err := a.api.MonthSchedule(ctx, a.token(ctx), month)
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}

	if len(events) == 0 {
		fmt.Println("Nenhum compromisso neste mês")
		return nil
	}
	for _, e := range events {
		fmt.Printf("%s  %s  %s (%s)\n", validate.FormatDate(e.Date), e.Time, e.Name, e.DocumentID)
	}
	return nil
}

// DayAgenda lists the events of a single day (AAAA-MM-DD).
func (a *App) DayAgenda(ctx context.Context, day string) error {
	if day == "" {
		fmt.Println("Uso: dia <AAAA-MM-DD>")
		return nil
	}

	events, err := a.api.DaySchedule(ctx, a.token(ctx), day)
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}

	if len(events) == 0 {
		fmt.Println("Nenhum compromisso neste dia")
		return nil
	}
	for _, e := range events {
		fmt.Printf("%s %s  %s (%s)\n", e.DisplayDate, e.Time, e.Name, e.DocumentID)
	}
	return nil
}

func (a *App) promptScheduleInput(current api.ScheduleInput) (api.ScheduleInput, error) {
	name, err := GetFieldWithDefault(a.reader, "Compromisso", current.Name, os.Stdout)
	if err != nil {
		return current, err
	}
	description, err := GetFieldWithDefault(a.reader, "Descrição (opcional)", current.Description, os.Stdout)
	if err != nil {
		return current, err
	}
	date, err := GetFieldWithDefault(a.reader, "Data (AAAA-MM-DD)", current.Date, os.Stdout)
	if err != nil {
		return current, err
	}
	timeOfDay, err := GetFieldWithDefault(a.reader, "Horário (ex.: 1430)", current.Time, os.Stdout)
	if err != nil {
		return current, err
	}
	return api.ScheduleInput{Name: name, Description: description, Date: date, Time: timeOfDay}, nil
}

// AddEvent creates an agenda entry.
func (a *App) AddEvent(ctx context.Context) error {
	in, err := a.promptScheduleInput(api.ScheduleInput{})
	if err != nil {
		return err
	}

	event, err := a.api.CreateSchedule(ctx, a.token(ctx), in)
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}
	fmt.Printf("Compromisso criado: %s em %s\n", event.Name, validate.FormatDateTime(event.Date, event.Time))
	return nil
}

// EditEvent updates an agenda entry by documentId.
func (a *App) EditEvent(ctx context.Context, documentID string) error {
	if documentID == "" {
		fmt.Println("Uso: editar <id>")
		return nil
	}

	in, err := a.promptScheduleInput(api.ScheduleInput{})
	if err != nil {
		return err
	}

	event, err := a.api.UpdateSchedule(ctx, a.token(ctx), documentID, in)
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}
	fmt.Printf("Compromisso atualizado: %s em %s\n", event.Name, validate.FormatDateTime(event.Date, event.Time))
	return nil
}

// RemoveEvent deletes an agenda entry by documentId.
func (a *App) RemoveEvent(ctx context.Context, documentID string) error {
	if documentID == "" {
		fmt.Println("Uso: desmarcar <id>")
		return nil
	}

	msg, err := a.api.DeleteSchedule(ctx, a.token(ctx), documentID)
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}
	fmt.Println(msg)
	return nil
}
