// Package validate holds the local input checks that run before anything
// touches the network: password strength rules and date/time normalization.
package validate

import "strings"

// The registration screen and the reset-password screen historically applied
// different rules (the reset flow never required a digit and used a smaller
// symbol set). Both sets are kept as-is; do not unify without product
// sign-off, since that silently changes which passwords are accepted.
const (
	registrationSymbols = `!@#$%^&*(),.?":{}|<>`
	resetSymbols        = `@$!%*?&#`
)

const minPasswordLen = 8

func containsAny(s, set string) bool {
	return strings.ContainsAny(s, set)
}

func hasLower(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r >= 'a' && r <= 'z' }) >= 0
}

func hasUpper(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r >= 'A' && r <= 'Z' }) >= 0
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' }) >= 0
}

// RegistrationPassword applies the five registration-wizard predicates in
// fixed order, returning the first failing rule's message.
func RegistrationPassword(password string) error {
	switch {
	case len(password) < minPasswordLen:
		return &Error{Message: "A senha deve ter no mínimo 8 caracteres"}
	case !hasLower(password):
		return &Error{Message: "A senha deve conter pelo menos uma letra minúscula"}
	case !hasUpper(password):
		return &Error{Message: "A senha deve conter pelo menos uma letra maiúscula"}
	case !hasDigit(password):
		return &Error{Message: "A senha deve conter pelo menos um número"}
	case !containsAny(password, registrationSymbols):
		return &Error{Message: "A senha deve conter pelo menos um caractere especial"}
	}
	return nil
}

// ResetPassword applies the reset-screen predicates: same length and case
// rules, its own symbol set, and no digit requirement.
func ResetPassword(password string) error {
	switch {
	case len(password) < minPasswordLen:
		return &Error{Message: "A senha deve ter no mínimo 8 caracteres"}
	case !hasLower(password):
		return &Error{Message: "A senha deve conter pelo menos uma letra minúscula"}
	case !hasUpper(password):
		return &Error{Message: "A senha deve conter pelo menos uma letra maiúscula"}
	case !containsAny(password, resetSymbols):
		return &Error{Message: "A senha deve conter pelo menos um caractere especial"}
	}
	return nil
}

// Error is a local validation failure carrying a user-facing message.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }
