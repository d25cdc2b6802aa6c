package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs. The real App type
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool

	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Register(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Terms(ctx context.Context, kind string) error

	MonthAgenda(ctx context.Context, month string) error
	DayAgenda(ctx context.Context, day string) error
	AddEvent(ctx context.Context) error
	EditEvent(ctx context.Context, documentID string) error
	RemoveEvent(ctx context.Context, documentID string) error

	Lists(ctx context.Context) error
	AddList(ctx context.Context) error
	RenameList(ctx context.Context, documentID string) error
	RemoveList(ctx context.Context, documentID string) error
	Topics(ctx context.Context, listDocumentID string) error
	AddTopic(ctx context.Context, listDocumentID string) error
	RenameTopic(ctx context.Context, topicDocumentID string) error
	RemoveTopic(ctx context.Context, topicDocumentID string) error

	Posts(ctx context.Context) error
	ShowPost(ctx context.Context, documentID string) error

	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	DeleteAccount(ctx context.Context) error

	Plan(ctx context.Context) error
	TogglePlanItem(ctx context.Context, documentID string) error
	PlanPDF(ctx context.Context) error
}

const (
	helpLoggedOut = "Comandos: login, cadastro, esquecisenha, novasenha, termos <privacy|terms>, sair"
	helpLoggedIn  = "Comandos: agenda <AAAA-MM>, dia <AAAA-MM-DD>, marcar, editar <id>, desmarcar <id>, " +
		"listas, novalista, renomearlista <id>, apagarlista <id>, itens <id>, novoitem <id>, " +
		"renomearitem <id>, apagaritem <id>, posts, post <id>, perfil, editarperfil, excluirconta, " +
		"plano, alternar <id>, planopdf, termos <privacy|terms>, logout, sair"
)

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// runREPL reads commands, dispatches to a, and loops until EOF or "sair".
// Handler errors are ignored here; handlers print their own messages, which
// keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("Bem-vinda ao BemGestar (digite 'ajuda' para ver os comandos)")

	for {
		fmt.Printf("bg %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "ajuda", "help":
			if a.isLoggedIn(ctx) {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "cadastro":
			_ = a.Register(ctx)
		case "esquecisenha":
			_ = a.ForgotPassword(ctx)
		case "novasenha":
			_ = a.ResetPassword(ctx)
		case "termos":
			_ = a.Terms(ctx, firstArg(args))

		case "agenda":
			_ = a.MonthAgenda(ctx, firstArg(args))
		case "dia":
			_ = a.DayAgenda(ctx, firstArg(args))
		case "marcar":
			_ = a.AddEvent(ctx)
		case "editar":
			_ = a.EditEvent(ctx, firstArg(args))
		case "desmarcar":
			_ = a.RemoveEvent(ctx, firstArg(args))

		case "listas":
			_ = a.Lists(ctx)
		case "novalista":
			_ = a.AddList(ctx)
		case "renomearlista":
			_ = a.RenameList(ctx, firstArg(args))
		case "apagarlista":
			_ = a.RemoveList(ctx, firstArg(args))
		case "itens":
			_ = a.Topics(ctx, firstArg(args))
		case "novoitem":
			_ = a.AddTopic(ctx, firstArg(args))
		case "renomearitem":
			_ = a.RenameTopic(ctx, firstArg(args))
		case "apagaritem":
			_ = a.RemoveTopic(ctx, firstArg(args))

		case "posts":
			_ = a.Posts(ctx)
		case "post":
			_ = a.ShowPost(ctx, firstArg(args))

		case "perfil":
			_ = a.Profile(ctx)
		case "editarperfil":
			_ = a.EditProfile(ctx)
		case "excluirconta":
			_ = a.DeleteAccount(ctx)

		case "plano":
			_ = a.Plan(ctx)
		case "alternar":
			_ = a.TogglePlanItem(ctx, firstArg(args))
		case "planopdf":
			_ = a.PlanPDF(ctx)

		case "sair", "exit", "quit":
			printlnFn("Até logo!")
			return

		default:
			printlnFn("Comando desconhecido:", cmd)
		}
	}
}
