package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/bemgestar/bemgestar/internal/client/models"
	"github.com/bemgestar/bemgestar/internal/validate"
)

// roleClient is the fixed role discriminator sent at login; the API serves
// both clients and professionals on the same auth endpoint.
const roleClient = "client"

type LoginRequest struct {
	Identifier     string `json:"identifier"`
	Password       string `json:"password"`
	Role           string `json:"role"`
	RequestRefresh bool   `json:"requestRefresh"`
}

type LoginResponse struct {
	JWT          string             `json:"jwt"`
	RefreshToken string             `json:"refreshToken"`
	User         models.UserSummary `json:"user"`
}

// Login exchanges credentials for a JWT (and, when requestRefresh is set, a
// refresh token). The caller owns persistence; this is a plain API call.
func (c *Client) Login(ctx context.Context, identifier, password string, requestRefresh bool) (*LoginResponse, error) {
	if strings.TrimSpace(identifier) == "" || password == "" {
		return nil, validationError("Informe e-mail e senha")
	}

	req := LoginRequest{
		Identifier:     identifier,
		Password:       password,
		Role:           roleClient,
		RequestRefresh: requestRefresh,
	}

	raw, err := c.do(ctx, http.MethodPost, "/auth/local", nil, "", req, "Não foi possível entrar, verifique suas credenciais")
	if err != nil {
		return nil, err
	}
	return decodeObject[LoginResponse](raw, "Não foi possível entrar, verifique suas credenciais")
}

type RefreshResponse struct {
	JWT          string `json:"jwt"`
	RefreshToken string `json:"refreshToken"`
}

// Refresh exchanges a refresh token for a new token pair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*RefreshResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, validationError("Token de atualização não fornecido")
	}

	body := map[string]string{"refreshToken": refreshToken}
	raw, err := c.do(ctx, http.MethodPost, "/auth/local/refresh", nil, "", body, "Não foi possível renovar a sessão")
	if err != nil {
		return nil, err
	}
	return decodeObject[RefreshResponse](raw, "Não foi possível renovar a sessão")
}

type RegisterClientRequest struct {
	Name                   string `json:"name"`
	Email                  string `json:"email"`
	Password               string `json:"password"`
	ProbableDateOfDelivery string `json:"probableDateOfDelivery"`
	BabyGender             string `json:"babyGender"`
	BabyName               string `json:"babyName"`
	FatherName             string `json:"fatherName"`
}

// RegisterClient creates a new account. The wizard has already validated
// step by step, but the rules run again here so the API surface is safe on
// its own.
func (c *Client) RegisterClient(ctx context.Context, req RegisterClientRequest) (string, error) {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return "", validationError("Informe o seu nome")
	case strings.TrimSpace(req.Email) == "":
		return "", validationError("Informe o seu e-mail")
	case req.Password == "":
		return "", validationError("Informe uma senha")
	}
	if err := validate.RegistrationPassword(req.Password); err != nil {
		return "", validationError(err.Error())
	}
	if !validate.ValidISODate(req.ProbableDateOfDelivery) {
		return "", validationError("Informe a data provável do parto")
	}
	if strings.TrimSpace(req.BabyGender) == "" {
		return "", validationError("Informe o sexo do bebê")
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	raw, err := c.do(ctx, http.MethodPost, "/createClient", nil, "", req, "Erro ao criar a conta")
	if err != nil {
		return "", err
	}
	return textMessage(raw, "Conta criada com sucesso"), nil
}

// ForgotPassword asks the server to e-mail a reset code.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", validationError("Informe o seu e-mail")
	}

	body := map[string]string{"email": email}
	raw, err := c.do(ctx, http.MethodPost, "/forgotPassword", nil, "", body, "Erro ao solicitar a recuperação de senha")
	if err != nil {
		return "", err
	}
	return textMessage(raw, "Código de recuperação enviado"), nil
}

// ResetPassword consumes a reset code and sets a new password. The reset
// flow keeps its own password rule set (see validate.ResetPassword).
func (c *Client) ResetPassword(ctx context.Context, code, password, confirmation string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", validationError("Informe o código de recuperação")
	}
	if err := validate.ResetPassword(password); err != nil {
		return "", validationError(err.Error())
	}
	if password != confirmation {
		return "", validationError("As senhas não coincidem")
	}

	body := map[string]string{
		"code":                 code,
		"password":             password,
		"passwordConfirmation": confirmation,
	}
	raw, err := c.do(ctx, http.MethodPost, "/resetPassword", nil, "", body, "Erro ao redefinir a senha")
	if err != nil {
		return "", err
	}
	return textMessage(raw, "Senha redefinida com sucesso"), nil
}
