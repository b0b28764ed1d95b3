package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"codeberg.org/mutker/erroror"
	"codeberg.org/mutker/erroror/internal/config"
	"codeberg.org/mutker/erroror/internal/logger"
	"codeberg.org/mutker/erroror/internal/users"
)

var cfg config.Config

func init() {
	res := config.Load(os.Args[1:])
	if res.IsError() {
		first := res.FirstError()
		fmt.Printf("failed to load config: %v\n", first.Error())
		os.Exit(exitCode(first.Kind()))
	}
	cfg = res.Value()

	logger.Init(cfg.LogLevel)
	logger.Debug().Msg("Config loaded")
}

func main() {
	svc, err := users.NewService(users.Config{DBPath: cfg.Database})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize user service")
	}
	defer svc.Close()

	os.Exit(run(context.Background(), svc))
}

// run walks through the expected outcomes of the users domain: a happy
// path, a duplicate registration, invalid inputs, and a missing lookup.
// Only an unexpected failure makes the demo exit non-zero.
func run(ctx context.Context, svc users.Service) int {
	registered := svc.Register(ctx, "Alice", "alice@example.com", 30)
	if registered.IsError() {
		return report(registered.FirstError(), "registration failed")
	}
	user := registered.Value()
	logger.Info().
		Str("id", user.ID.String()).
		Str("name", user.Name).
		Msg("user registered")

	fetched := svc.Get(ctx, user.ID)
	if fetched.IsError() {
		return report(fetched.FirstError(), "lookup failed")
	}
	logger.Info().Str("email", fetched.Value().Email).Msg("user fetched")

	// Expected rejections, logged with their kind but non-fatal.
	duplicate := svc.Register(ctx, "Bob", user.Email, 41)
	if duplicate.IsError() {
		logger.ErrorWithKind(duplicate.FirstError()).Msg("duplicate registration rejected")
	}

	invalid := svc.Register(ctx, "A", "not-an-email", -1)
	if invalid.IsError() {
		for _, e := range invalid.Errors() {
			logger.ErrorWithKind(e).Msg("validation failure")
		}
	}

	missing := svc.Get(ctx, uuid.New())
	if missing.IsError() {
		logger.ErrorWithKind(missing.FirstError()).Msg("missing user rejected")
	}

	renamed := svc.Rename(ctx, user.ID, "Alice Cooper")
	if renamed.IsError() {
		return report(renamed.FirstError(), "rename failed")
	}
	logger.Info().Msg("user renamed")

	removed := svc.Remove(ctx, user.ID)
	if removed.IsError() {
		return report(removed.FirstError(), "removal failed")
	}
	logger.Info().Msg("user removed")

	return 0
}

func report(err erroror.Error, msg string) int {
	logger.ErrorWithKind(err).Msg(msg)

	return exitCode(err.Kind())
}

// exitCode maps a failure kind to a process exit status. This is the
// presentation-layer mapping; the error values themselves stay
// transport-agnostic.
func exitCode(kind erroror.Kind) int {
	switch kind {
	case erroror.KindValidation:
		return 2
	case erroror.KindNotFound:
		return 3
	case erroror.KindConflict:
		return 4
	case erroror.KindUnauthorized, erroror.KindForbidden:
		return 5
	default:
		return 1
	}
}
