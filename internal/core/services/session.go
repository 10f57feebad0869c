package services

import (
	"context"
	"log/slog"

	"github.com/azrs7/Login/internal/apperrors"
	"github.com/azrs7/Login/internal/core/domain"
	portssvc "github.com/azrs7/Login/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SessionState is the state of a Session.
type SessionState int

const (
	LoggedOut SessionState = iota
	Authenticating
	LoggedIn
)

func (s SessionState) String() string {
	switch s {
	case LoggedOut:
		return "LoggedOut"
	case Authenticating:
		return "Authenticating"
	case LoggedIn:
		return "LoggedIn"
	}
	return "Unknown"
}

// Session binds one verified identity to one open LedgerEngine.
// Ledger operations are only valid while LoggedIn; calling them in any other
// state panics.
type Session struct {
	BaseService
	credentials portssvc.CredentialSvcFacade
	ledgers     portssvc.LedgerSvcFacade

	id     string
	state  SessionState
	email  string
	engine portssvc.LedgerEngine
}

// NewSession creates a logged out session over the given services.
func NewSession(container *portssvc.ServiceContainer) *Session {
	return &Session{
		credentials: container.Credential,
		ledgers:     container.Ledger,
		state:       LoggedOut,
	}
}

// State returns the current state.
func (s *Session) State() SessionState { return s.state }

// Email returns the bound identity, or "" when logged out.
func (s *Session) Email() string { return s.email }

// ID returns the identifier of the current login, or "" when logged out.
func (s *Session) ID() string { return s.id }

// Register creates an identity. It does not log in.
func (s *Session) Register(ctx context.Context, name, email, password string) error {
	return s.credentials.Register(ctx, name, email, password)
}

// Login verifies the credentials and opens the identity's ledger.
// Unknown emails fail with apperrors.ErrEmailNotFound and wrong passwords with
// apperrors.ErrIncorrectPassword; the session stays LoggedOut in both cases.
func (s *Session) Login(ctx context.Context, email, password string) error {
	if s.state != LoggedOut {
		panic("session: Login called while " + s.state.String())
	}
	s.state = Authenticating
	if err := s.authenticate(ctx, email, password); err != nil {
		s.state = LoggedOut
		if apperrors.IsDomainError(err) {
			s.LogInfo(ctx, "Login rejected", slog.String("email", email), slog.String("reason", err.Error()))
		}
		return err
	}

	engine, err := s.ledgers.Open(ctx, email)
	if err != nil {
		s.state = LoggedOut
		return err
	}

	s.id = uuid.NewString()
	s.email = email
	s.engine = engine
	s.state = LoggedIn
	s.LogInfo(ctx, "Session started", slog.String("session_id", s.id), slog.String("email", email))
	return nil
}

func (s *Session) authenticate(ctx context.Context, email, password string) error {
	exists, err := s.credentials.Exists(ctx, email)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrEmailNotFound
	}
	ok, err := s.credentials.Verify(ctx, email, password)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrIncorrectPassword
	}
	return nil
}

// Logout closes the bound ledger and clears the identity. The session is
// LoggedOut afterwards even if closing the ledger fails.
func (s *Session) Logout(ctx context.Context) error {
	s.mustBeLoggedIn("Logout")
	err := s.engine.Close()
	if err != nil {
		s.LogError(ctx, err, "Failed to close ledger on logout", slog.String("session_id", s.id))
	}
	s.LogInfo(ctx, "Session ended", slog.String("session_id", s.id), slog.String("email", s.email))
	s.engine = nil
	s.email = ""
	s.id = ""
	s.state = LoggedOut
	return err
}

// Balance returns the bound ledger's balance.
func (s *Session) Balance() decimal.Decimal {
	s.mustBeLoggedIn("Balance")
	return s.engine.Balance()
}

// Debit withdraws amount from the bound ledger.
func (s *Session) Debit(ctx context.Context, amount decimal.Decimal, description string) (decimal.Decimal, error) {
	s.mustBeLoggedIn("Debit")
	return s.engine.Debit(ctx, amount, description)
}

// Credit deposits amount into the bound ledger.
func (s *Session) Credit(ctx context.Context, amount decimal.Decimal, description string) (decimal.Decimal, error) {
	s.mustBeLoggedIn("Credit")
	return s.engine.Credit(ctx, amount, description)
}

// History returns the bound ledger's transactions, most recent first.
func (s *Session) History(ctx context.Context) ([]domain.Transaction, error) {
	s.mustBeLoggedIn("History")
	return s.engine.History(ctx)
}

func (s *Session) mustBeLoggedIn(op string) {
	if s.state != LoggedIn {
		panic("session: " + op + " called while " + s.state.String())
	}
}
