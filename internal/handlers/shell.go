package handlers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/azrs7/Login/internal/core/services"
	"github.com/azrs7/Login/internal/dto"
	"github.com/go-playground/validator/v10"
)

// Shell is the interactive front end: it prompts on out, reads answers from in
// and drives a Session.
type Shell struct {
	in       *bufio.Scanner
	out      io.Writer
	session  *services.Session
	validate *validator.Validate
}

// NewShell creates a Shell over session.
func NewShell(in io.Reader, out io.Writer, session *services.Session) *Shell {
	return &Shell{
		in:       bufio.NewScanner(in),
		out:      out,
		session:  session,
		validate: dto.NewValidator(),
	}
}

// Run shows the main menu until input ends. A session still open when input
// ends is logged out before Run returns.
func (h *Shell) Run(ctx context.Context) error {
	for {
		h.println("== Ledger System ==")
		h.println("1. Login")
		h.println("2. Register")
		choice, ok := h.prompt("> ")
		if !ok {
			return h.in.Err()
		}

		var err error
		switch choice {
		case "1":
			err = h.Login(ctx)
		case "2":
			err = h.Register(ctx)
		default:
			h.printf("Invalid choice.\n\n")
		}
		if err != nil {
			return err
		}
	}
}

// prompt writes label and returns the next trimmed input line. It returns
// false once input is exhausted.
func (h *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(h.out, label)
	if !h.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(h.in.Text()), true
}

func (h *Shell) println(a ...any) {
	fmt.Fprintln(h.out, a...)
}

func (h *Shell) printf(format string, a ...any) {
	fmt.Fprintf(h.out, format, a...)
}
