package api

import "errors"

// Kind classifies a failed call. Validation failures are detected locally
// before any I/O; the rest map the transport outcome.
type Kind string

const (
	KindValidation Kind = "validation"
	KindHTTP       Kind = "http"
	KindNetwork    Kind = "network"
	KindTimeout    Kind = "timeout"
	KindDecode     Kind = "decode"
)

// User-facing messages shared by every resource module.
const (
	MsgNoToken    = "Token de autenticação não fornecido"
	MsgConnection = "Erro de conexão, tente novamente"
	MsgTimeout    = "O servidor demorou para responder, tente novamente"
)

// Error is the uniform failure shape returned by every client call. Message
// is user-facing (pt-BR) and is all a screen ever shows; Status is set for
// KindHTTP only.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func validationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// UserMessage extracts the displayable message from any error returned by
// this package, falling back to the generic connection message.
func UserMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return MsgConnection
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}
