package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bemgestar/bemgestar/internal/client/api"
	"github.com/bemgestar/bemgestar/internal/validate"
)

// Profile shows the pregnancy profile.
func (a *App) Profile(ctx context.Context) error {
	profile, err := a.api.Profile(ctx, a.token(ctx))
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}

	fmt.Printf("Nome: %s\n", profile.Name)
	fmt.Printf("Data provável do parto: %s\n", validate.FormatDate(profile.ProbableDateOfDelivery))
	fmt.Printf("Sexo do bebê: %s\n", profile.BabyGender)
	if profile.BabyName != "" {
		fmt.Printf("Nome do bebê: %s\n", profile.BabyName)
	}
	if profile.FatherName != "" {
		fmt.Printf("Nome do pai: %s\n", profile.FatherName)
	}
	return nil
}

// EditProfile updates the profile in place. Empty answers keep the current
// values.
func (a *App) EditProfile(ctx context.Context) error {
	current, err := a.api.Profile(ctx, a.token(ctx))
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}

	name, err := GetFieldWithDefault(a.reader, "Nome", current.Name, os.Stdout)
	if err != nil {
		return err
	}
	dueDate, err := GetFieldWithDefault(a.reader, "Data provável do parto (AAAA-MM-DD)", current.ProbableDateOfDelivery, os.Stdout)
	if err != nil {
		return err
	}
	gender, err := GetFieldWithDefault(a.reader, "Sexo do bebê", current.BabyGender, os.Stdout)
	if err != nil {
		return err
	}
	babyName, err := GetFieldWithDefault(a.reader, "Nome do bebê", current.BabyName, os.Stdout)
	if err != nil {
		return err
	}
	fatherName, err := GetFieldWithDefault(a.reader, "Nome do pai", current.FatherName, os.Stdout)
	if err != nil {
		return err
	}

	updated, err := a.api.UpdateProfile(ctx, a.token(ctx), api.ProfileUpdate{
		Name:                   name,
		ProbableDateOfDelivery: dueDate,
		BabyGender:             gender,
		BabyName:               babyName,
		FatherName:             fatherName,
	})
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}
	fmt.Printf("Dados atualizados, %s\n", updated.Name)
	return nil
}

// DeleteAccount removes the account after an explicit confirmation, then
// wipes the local session.
func (a *App) DeleteAccount(ctx context.Context) error {
	confirmed, err := GetYesNo(a.reader, "Excluir a conta apaga todos os seus dados. Confirmar?", os.Stdout)
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	msg, err := a.api.DeleteAccount(ctx, a.token(ctx))
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}

	if err := a.session.Logout(ctx); err != nil {
		a.log.Warn(ctx, "failed to clear session after account deletion", "error", err)
	}
	fmt.Println(msg)
	return nil
}
