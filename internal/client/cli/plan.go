package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bemgestar/bemgestar/internal/client/api"
)

// Plan shows the childbirth-plan checklist with the user's selections.
func (a *App) Plan(ctx context.Context) error {
	items, err := a.api.ChildbirthPlan(ctx, a.token(ctx))
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}

	if len(items) == 0 {
		fmt.Println("Plano de parto indisponível")
		return nil
	}
	for _, item := range items {
		mark := "[ ]"
		if item.Selected {
			mark = "[x]"
		}
		fmt.Printf("%s %s (%s)\n", mark, item.Name, item.DocumentID)
	}
	return nil
}

// TogglePlanItem selects or unselects one checklist item.
func (a *App) TogglePlanItem(ctx context.Context, documentID string) error {
	if documentID == "" {
		fmt.Println("Uso: alternar <id>")
		return nil
	}

	msg, err := a.api.SelectOrUnselectPlanItem(ctx, a.token(ctx), documentID)
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}
	fmt.Println(msg)
	return nil
}

// PlanPDF downloads the rendered plan into the working directory.
func (a *App) PlanPDF(ctx context.Context) error {
	pdf, err := a.api.PlanPDF(ctx, a.token(ctx))
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}

	const filename = "plano-de-parto.pdf"
	if err := os.WriteFile(filename, pdf, 0o600); err != nil {
		a.log.Error(ctx, "failed to write plan pdf", "error", err)
		fmt.Println("Não foi possível salvar o arquivo")
		return err
	}
	fmt.Printf("PDF salvo em %s\n", filename)
	return nil
}
