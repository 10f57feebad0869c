package middleware

import (
	"context"
	"flag"
	"log/slog"
	"time"

	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// loggerKey is the key used to store the logger in the context.
// Using a custom type prevents collisions.
type contextKey string

const loggerKey = contextKey("logger")

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerFromCtx retrieves the command-scoped logger from the context.
// It returns nil if none is found.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return nil
	}
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok {
		return nil
	}
	return logger
}

// loggedCommand wraps a subcommand so that its execution runs with a
// command-scoped logger in its context.
type loggedCommand struct {
	subcommands.Command
	baseLogger *slog.Logger
}

// StructuredLogging wraps cmd so that Execute injects a logger enriched with a
// command ID and the command name, and logs completion with status and latency.
func StructuredLogging(baseLogger *slog.Logger, cmd subcommands.Command) subcommands.Command {
	return &loggedCommand{Command: cmd, baseLogger: baseLogger}
}

func (c *loggedCommand) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	start := time.Now()
	commandID := uuid.NewString()

	commandLogger := c.baseLogger.With(
		slog.String("command_id", commandID),
		slog.String("command", c.Name()),
	)

	status := c.Command.Execute(WithLogger(ctx, commandLogger), f, args...)

	commandLogger.Info("Command completed",
		slog.Int("status", int(status)),
		slog.Duration("latency", time.Since(start)),
	)
	return status
}
