package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/azrs7/Login/internal/apperrors"
	"github.com/azrs7/Login/internal/core/services"
	"github.com/azrs7/Login/internal/dto"
	"github.com/azrs7/Login/internal/handlers"
	"github.com/azrs7/Login/internal/platform/config"
	"github.com/azrs7/Login/internal/utils"
	"github.com/google/subcommands"
)

type shellCmd struct {
	cfg *config.Config
}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "run the interactive login and transaction menus (default)" }
func (*shellCmd) Usage() string {
	return `ledger [shell]

  Starts the interactive shell: register, log in, then record debits and
  credits and browse the transaction history.
`
}
func (*shellCmd) SetFlags(*flag.FlagSet) {}

func (c *shellCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, closeStorage, err := openSession(ctx, c.cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStorage()

	if err := handlers.NewShell(os.Stdin, os.Stdout, session).Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type registerCmd struct {
	cfg      *config.Config
	name     string
	email    string
	password string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "register a new identity" }
func (*registerCmd) Usage() string {
	return `ledger register -name <name> -email <email> -password <password>
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name of the identity.")
	f.StringVar(&c.email, "email", "", "Email used to log in.")
	f.StringVar(&c.password, "password", "", "Password used to log in.")
}

func (c *registerCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	req := dto.RegisterRequest{Name: c.name, Email: c.email, Password: c.password, ConfirmPassword: c.password}
	if err := dto.NewValidator().Struct(req); err != nil {
		fmt.Fprintln(os.Stderr, "Invalid email format.")
		return subcommands.ExitUsageError
	}

	session, closeStorage, err := openSession(ctx, c.cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStorage()

	if err := session.Register(ctx, req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			fmt.Fprintln(os.Stderr, "Email already registered!")
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return subcommands.ExitFailure
	}
	fmt.Println("Registration successful!")
	return subcommands.ExitSuccess
}

// loginFlags are shared by the commands that read a ledger non-interactively.
type loginFlags struct {
	email    string
	password string
}

func (l *loginFlags) set(f *flag.FlagSet) {
	f.StringVar(&l.email, "email", "", "Email of the ledger owner.")
	f.StringVar(&l.password, "password", "", "Password of the ledger owner.")
}

// login logs session in, reporting failures on stderr.
func (l *loginFlags) login(ctx context.Context, session *services.Session) bool {
	err := session.Login(ctx, l.email, l.password)
	switch {
	case err == nil:
		return true
	case errors.Is(err, apperrors.ErrEmailNotFound):
		fmt.Fprintln(os.Stderr, "Email not registered!")
	case errors.Is(err, apperrors.ErrIncorrectPassword):
		fmt.Fprintln(os.Stderr, "Incorrect password!")
	default:
		fmt.Fprintln(os.Stderr, err)
	}
	return false
}

type historyCmd struct {
	cfg *config.Config
	loginFlags
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "print the transaction history and balance of a ledger" }
func (*historyCmd) Usage() string {
	return `ledger history -email <email> -password <password>
`
}
func (c *historyCmd) SetFlags(f *flag.FlagSet) { c.loginFlags.set(f) }

func (c *historyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, closeStorage, err := openSession(ctx, c.cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStorage()

	if !c.login(ctx, session) {
		return subcommands.ExitFailure
	}
	defer session.Logout(ctx)

	txns, err := session.History(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("== Transaction History ==")
	handlers.RenderHistory(os.Stdout, txns)
	fmt.Printf("Balance: %s\n", utils.FormatAmount(session.Balance()))
	return subcommands.ExitSuccess
}

type exportCmd struct {
	cfg *config.Config
	loginFlags
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the transaction history of a ledger to an .xlsx file" }
func (*exportCmd) Usage() string {
	return `ledger export -email <email> -password <password> [-o history.xlsx]
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.loginFlags.set(f)
	f.StringVar(&c.output, "o", "history.xlsx", "Path of the workbook to write.")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, closeStorage, err := openSession(ctx, c.cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStorage()

	if !c.login(ctx, session) {
		return subcommands.ExitFailure
	}
	defer session.Logout(ctx)

	txns, err := session.History(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := handlers.ExportHistoryXLSX(c.output, txns, session.Balance()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d transactions to %s\n", len(txns), c.output)
	return subcommands.ExitSuccess
}
