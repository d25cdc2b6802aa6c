package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bemgestar/bemgestar/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates through the session
// store, which persists the token (and, when the user asks to stay signed
// in, the refresh token).
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "E-mail", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Senha")
	if err != nil {
		return err
	}

	rememberMe, err := GetYesNo(a.reader, "Permanecer conectada?", os.Stdout)
	if err != nil {
		return err
	}

	sess, err := a.session.Login(ctx, identifier, password, rememberMe)
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}

	if sess.User != nil {
		fmt.Printf("Olá, %s!\n", sess.User.Username)
	}
	return nil
}

// Logout wipes the persisted session. Running it twice is harmless.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	fmt.Println("Sessão encerrada")
	return nil
}

// ForgotPassword asks the server to send a reset code by e-mail.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "E-mail da conta", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.api.ForgotPassword(ctx, email)
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}
	fmt.Println(msg)
	return nil
}

// ResetPassword consumes an e-mailed code and sets a new password.
func (a *App) ResetPassword(ctx context.Context) error {
	code, err := getSimpleText(a.reader, "Código de recuperação", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Nova senha")
	if err != nil {
		return err
	}
	confirmation, err := getPassword(os.Stdout, "Confirme a nova senha")
	if err != nil {
		return err
	}

	msg, err := a.api.ResetPassword(ctx, code, password, confirmation)
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}
	fmt.Println(msg)
	return nil
}

// Terms shows legal content; works logged out.
func (a *App) Terms(ctx context.Context, kind string) error {
	if kind == "" {
		kind = "terms"
	}

	terms, err := a.api.Terms(ctx, kind)
	if err != nil {
		fmt.Println(api.UserMessage(err))
		return err
	}
	for _, t := range terms {
		fmt.Println(t.Content)
	}
	return nil
}
