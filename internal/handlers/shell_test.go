package handlers_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/azrs7/Login/internal/core/services"
	"github.com/azrs7/Login/internal/handlers"
	"github.com/azrs7/Login/internal/platform/config"
	"github.com/azrs7/Login/internal/repositories/memory"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type ShellTestSuite struct {
	suite.Suite
	store   *memory.Store
	session *services.Session
}

func (s *ShellTestSuite) SetupTest() {
	s.store = memory.NewStore()
	cfg := &config.Config{BcryptCost: bcrypt.MinCost}
	s.session = services.NewSession(services.NewServiceContainer(cfg, s.store.Provider()))
}

// run feeds lines to a fresh shell and returns everything it printed.
func (s *ShellTestSuite) run(lines ...string) string {
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	err := handlers.NewShell(in, &out, s.session).Run(context.Background())
	s.Require().NoError(err)
	return out.String()
}

func (s *ShellTestSuite) register(name, email, password string) {
	s.Require().NoError(s.session.Register(context.Background(), name, email, password))
}

func (s *ShellTestSuite) TestRegister_RetriesEmailAndPasswordConfirmation() {
	out := s.run(
		"2", "Alice", "not-an-email", "a@x.com",
		"pw1", "pw2",
		"pw1", "pw1",
	)

	s.Contains(out, "== Please fill in the form ==")
	s.Contains(out, "Invalid email format. Try again.")
	s.Contains(out, "Passwords do not match.")
	s.Contains(out, "Registration successful!")
	s.Equal(services.LoggedOut, s.session.State())

	exists, err := s.store.IdentityExists(context.Background(), "a@x.com")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *ShellTestSuite) TestRegister_DuplicateEmail() {
	s.register("Alice", "a@x.com", "pw1")

	out := s.run("2", "Alice Again", "a@x.com", "pw2", "pw2")

	s.Contains(out, "Email already registered!")
	s.NotContains(out, "Registration successful!")
}

func (s *ShellTestSuite) TestLogin_Failures() {
	s.register("Alice", "a@x.com", "pw1")

	out := s.run(
		"1", "b@x.com", "pw1",
		"1", "a@x.com", "wrong",
	)

	s.Contains(out, "Email not registered!")
	s.Contains(out, "Incorrect password!")
	s.NotContains(out, "Login successful!")
	s.Equal(services.LoggedOut, s.session.State())
}

func (s *ShellTestSuite) TestInvalidMenuChoice() {
	out := s.run("9")
	s.Contains(out, "Invalid choice.")
}

func (s *ShellTestSuite) TestTransactionMenu_FullSession() {
	s.register("Alice", "a@x.com", "pw1")

	out := s.run(
		"1", "a@x.com", "pw1",
		"2", "100", "salary",
		"1", "30", "rent",
		"1", "1000", "car",
		"1", "abc", "oops",
		"2", "5", strings.Repeat("x", 101),
		"3",
		"4",
	)

	s.Contains(out, "Login successful!")
	s.Contains(out, "Current balance: 0.00")
	s.Contains(out, "==Transaction Menu==")
	s.Contains(out, "Credit recorded. Balance: 100.00")
	s.Contains(out, "Debit recorded. Balance: 70.00")
	s.Contains(out, "Insufficient balance.")
	s.Equal(2, strings.Count(out, "Invalid input."))
	s.Contains(out, "== Transaction History ==")
	s.Contains(out, "Logged out and DB connection closed.")

	debitRow := strings.Index(out, "2   | Debit  |    30.00 | rent")
	creditRow := strings.Index(out, "1   | Credit |   100.00 | salary")
	s.Require().NotEqual(-1, debitRow)
	s.Require().NotEqual(-1, creditRow)
	s.Less(debitRow, creditRow, "history is most recent first")

	s.Equal(services.LoggedOut, s.session.State())
	s.Equal(0, s.store.OpenHandles())
}

func (s *ShellTestSuite) TestTransactionMenu_EndOfInputLogsOut() {
	s.register("Alice", "a@x.com", "pw1")

	out := s.run("1", "a@x.com", "pw1", "2", "10", "gift")

	s.Contains(out, "Credit recorded. Balance: 10.00")
	s.Equal(services.LoggedOut, s.session.State())
	s.Equal(0, s.store.OpenHandles())
}

func TestShellTestSuite(t *testing.T) {
	suite.Run(t, new(ShellTestSuite))
}
