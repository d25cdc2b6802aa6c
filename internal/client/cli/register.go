package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bemgestar/bemgestar/internal/client/api"
	"github.com/bemgestar/bemgestar/internal/client/models"
	"github.com/bemgestar/bemgestar/internal/validate"
)

// Register runs the two-step registration wizard. Every field change is
// written through to the draft store, so an interrupted registration picks
// up where it stopped. The draft is cleared on successful submission and
// when the user abandons the wizard from step 1; going back from step 2 to
// step 1 keeps it, since the registration is still in progress.
func (a *App) Register(ctx context.Context) error {
	d, restored, _ := a.drafts.Load(ctx)
	if restored {
		fmt.Println("Retomando cadastro em andamento")
		if d.DueDate != "" {
			if _, err := validate.ParseBRDate(d.DueDate); err != nil {
				d.DueDate = ""
			}
		}
	}

	step := 1
	for {
		switch step {
		case 1:
			next, err := a.registerStepOne(ctx, &d)
			if err != nil {
				return err
			}
			if !next {
				// Explicit exit from the first step abandons the draft.
				if err := a.drafts.Clear(ctx); err != nil {
					a.log.Warn(ctx, "failed to clear draft", "error", err)
				}
				fmt.Println("Cadastro cancelado")
				return nil
			}
			step = 2

		case 2:
			done, back, err := a.registerStepTwo(ctx, &d)
			if err != nil {
				return err
			}
			if back {
				step = 1
				continue
			}
			if done {
				return nil
			}
			// Submission failed; stay on step 2 with fields intact.
		}
	}
}

// saveDraft mirrors the current field record to storage. Persistence faults
// are logged and swallowed: the wizard keeps working in memory.
func (a *App) saveDraft(ctx context.Context, d models.RegistrationDraft) {
	if err := a.drafts.Save(ctx, d); err != nil {
		a.log.Warn(ctx, "draft not saved", "error", err)
	}
}

// registerStepOne collects name, e-mail and password. Returns next=false
// when the user typed "sair" to abandon the wizard.
func (a *App) registerStepOne(ctx context.Context, d *models.RegistrationDraft) (next bool, err error) {
	fmt.Println("Etapa 1 de 2 — seus dados (digite 'sair' para cancelar)")

	for {
		name, err := GetFieldWithDefault(a.reader, "Nome", d.Name, os.Stdout)
		if err != nil {
			return false, err
		}
		if strings.EqualFold(name, "sair") {
			return false, nil
		}
		d.Name = name
		a.saveDraft(ctx, *d)

		email, err := GetFieldWithDefault(a.reader, "E-mail", d.Email, os.Stdout)
		if err != nil {
			return false, err
		}
		if strings.EqualFold(email, "sair") {
			return false, nil
		}
		d.Email = strings.ToLower(strings.TrimSpace(email))
		a.saveDraft(ctx, *d)

		prompt := "Senha"
		if d.Password != "" {
			prompt = "Senha (Enter mantém a anterior)"
		}
		password, err := getPassword(os.Stdout, prompt)
		if err != nil {
			return false, err
		}
		if password != "" {
			d.Password = password
			a.saveDraft(ctx, *d)
		}

		if msg := stepOneError(*d); msg != "" {
			fmt.Println(msg)
			continue
		}
		return true, nil
	}
}

// stepOneError applies the step-1 rules in fixed order and returns the
// first failure's message, or "" when the step is complete.
func stepOneError(d models.RegistrationDraft) string {
	switch {
	case strings.TrimSpace(d.Name) == "":
		return "Informe o seu nome"
	case strings.TrimSpace(d.Email) == "":
		return "Informe o seu e-mail"
	case d.Password == "":
		return "Informe uma senha"
	}
	if err := validate.RegistrationPassword(d.Password); err != nil {
		return err.Error()
	}
	return ""
}

// registerStepTwo collects the pregnancy data, requires the terms to be
// accepted, and submits. back=true returns to step 1 without touching the
// draft; done=true means the account was created and the draft cleared.
func (a *App) registerStepTwo(ctx context.Context, d *models.RegistrationDraft) (done, back bool, err error) {
	fmt.Println("Etapa 2 de 2 — dados da gestação (digite 'voltar' para retornar)")

	dueDate, err := GetFieldWithDefault(a.reader, "Data provável do parto (DD/MM/AAAA)", d.DueDate, os.Stdout)
	if err != nil {
		return false, false, err
	}
	if strings.EqualFold(dueDate, "voltar") {
		return false, true, nil
	}
	d.DueDate = dueDate
	a.saveDraft(ctx, *d)

	gender, err := GetFieldWithDefault(a.reader, "Sexo do bebê (menina/menino/surpresa)", d.BabyGender, os.Stdout)
	if err != nil {
		return false, false, err
	}
	d.BabyGender = gender
	a.saveDraft(ctx, *d)

	babyName, err := GetFieldWithDefault(a.reader, "Nome do bebê (opcional)", d.BabyName, os.Stdout)
	if err != nil {
		return false, false, err
	}
	d.BabyName = babyName
	a.saveDraft(ctx, *d)

	fatherName, err := GetFieldWithDefault(a.reader, "Nome do pai (opcional)", d.FatherName, os.Stdout)
	if err != nil {
		return false, false, err
	}
	d.FatherName = fatherName
	a.saveDraft(ctx, *d)

	if strings.TrimSpace(d.DueDate) == "" {
		fmt.Println("Informe a data provável do parto")
		return false, false, nil
	}
	isoDueDate, convErr := validate.ToISODate(d.DueDate)
	if convErr != nil {
		fmt.Println(convErr.Error())
		return false, false, nil
	}
	if strings.TrimSpace(d.BabyGender) == "" {
		fmt.Println("Informe o sexo do bebê")
		return false, false, nil
	}

	accepted, err := GetYesNo(a.reader, "Você leu e aceita os termos de uso?", os.Stdout)
	if err != nil {
		return false, false, err
	}
	if !accepted {
		fmt.Println("É preciso aceitar os termos para concluir o cadastro")
		return false, false, nil
	}

	msg, submitErr := a.api.RegisterClient(ctx, api.RegisterClientRequest{
		Name:                   d.Name,
		Email:                  d.Email,
		Password:               d.Password,
		ProbableDateOfDelivery: isoDueDate,
		BabyGender:             d.BabyGender,
		BabyName:               d.BabyName,
		FatherName:             d.FatherName,
	})
	if submitErr != nil {
		fmt.Println(api.UserMessage(submitErr))
		return false, false, nil
	}

	if err := a.drafts.Clear(ctx); err != nil {
		a.log.Warn(ctx, "failed to clear draft after registration", "error", err)
	}
	fmt.Println(msg)
	return true, false, nil
}
