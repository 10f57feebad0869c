package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/azrs7/Login/internal/apperrors"
	"github.com/azrs7/Login/internal/dto"
	"github.com/azrs7/Login/internal/middleware"
)

// Register runs the registration form. Registration never logs in.
func (h *Shell) Register(ctx context.Context) error {
	h.println("\n== Please fill in the form ==")

	req := dto.RegisterRequest{}
	var ok bool
	if req.Name, ok = h.prompt("Name: "); !ok {
		return nil
	}
	if req.Email, ok = h.promptEmail("Invalid email format. Try again."); !ok {
		return nil
	}
	for {
		if req.Password, ok = h.prompt("Password: "); !ok {
			return nil
		}
		if req.ConfirmPassword, ok = h.prompt("Confirm Password: "); !ok {
			return nil
		}
		if h.validate.VarWithValue(req.ConfirmPassword, req.Password, "eqfield") == nil {
			break
		}
		h.println("Passwords do not match.")
	}
	if err := h.validate.Struct(req); err != nil {
		h.println("Invalid input.")
		return nil
	}

	err := h.session.Register(ctx, req.Name, req.Email, req.Password)
	switch {
	case err == nil:
		h.printf("\nRegistration successful!\n\n")
	case errors.Is(err, apperrors.ErrDuplicateEmail):
		h.printf("Email already registered!\n\n")
	case errors.Is(err, apperrors.ErrValidation):
		h.printf("Invalid input.\n\n")
	default:
		h.reportFailure(ctx, "Registration failed", err)
	}
	return nil
}

// Login runs the login form and, on success, the transaction menu.
func (h *Shell) Login(ctx context.Context) error {
	h.println("\n== Login ==")

	req := dto.LoginRequest{}
	var ok bool
	if req.Email, ok = h.promptEmail("Invalid email format."); !ok {
		return nil
	}
	if req.Password, ok = h.prompt("Password: "); !ok {
		return nil
	}

	err := h.session.Login(ctx, req.Email, req.Password)
	switch {
	case err == nil:
		h.printf("\nLogin successful!\n\n")
		return h.TransactionMenu(ctx)
	case errors.Is(err, apperrors.ErrEmailNotFound):
		h.printf("Email not registered!\n\n")
	case errors.Is(err, apperrors.ErrIncorrectPassword):
		h.printf("Incorrect password!\n\n")
	default:
		h.reportFailure(ctx, "Login failed", err)
	}
	return nil
}

// promptEmail asks for an email until it has a valid format.
func (h *Shell) promptEmail(invalidMsg string) (string, bool) {
	for {
		email, ok := h.prompt("Email: ")
		if !ok {
			return "", false
		}
		if h.validate.Var(email, "required,ledgeremail") == nil {
			return email, true
		}
		h.println(invalidMsg)
	}
}

// reportFailure prints a non-domain failure and logs it.
func (h *Shell) reportFailure(ctx context.Context, msg string, err error) {
	if logger := middleware.GetLoggerFromCtx(ctx); logger != nil {
		logger.Error(msg, slog.String("error", err.Error()))
	}
	h.printf("Error: %v\n\n", err)
}
