// Package roll implements the dice-rolling CLI pipeline: parse tokens,
// simulate each spec against a shared generator, print each outcome.
package roll

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rollcraft/rollcraft/internal/dice"
	"github.com/rollcraft/rollcraft/internal/platform/config"
)

// Config holds CLI configuration. All fields are optional; with an empty
// environment the CLI rolls whatever tokens it is given and prints to
// stdout, nothing more.
type Config struct {
	// Seed fixes the roller seed for reproducible sessions.
	Seed *int64 `env:"ROLLCRAFT_SEED"`
	// HistoryPath enables the SQLite roll journal when set.
	HistoryPath string `env:"ROLLCRAFT_HISTORY_PATH"`
	// WarnMalformed surfaces skipped tokens on stderr. Malformed tokens
	// never abort the run either way.
	WarnMalformed bool `env:"ROLLCRAFT_WARN_MALFORMED"`
}

// ParseConfig loads CLI configuration from the environment.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Journal records roll outcomes. Implemented by the SQLite store; nil
// disables journaling.
type Journal interface {
	AppendRoll(ctx context.Context, token string, values []uint, total uint) error
}

// Run rolls each token and writes one formatted line per parseable token
// to out, in token order.
//
// Malformed tokens are skipped. With WarnMalformed set they produce a
// diagnostic on errOut; they never stop processing of later tokens.
// Journal failures likewise degrade to an errOut warning so a broken
// journal cannot block roll output.
func Run(ctx context.Context, cfg Config, tokens []string, out, errOut io.Writer, gen dice.Generator, journal Journal) error {
	if out == nil {
		return errors.New("output is required")
	}
	if gen == nil {
		return errors.New("generator is required")
	}

	for _, result := range dice.ParseTokens(tokens) {
		if result.Err != nil {
			if cfg.WarnMalformed && errOut != nil {
				fmt.Fprintf(errOut, "skipping %q: %v\n", result.Token, result.Err)
			}
			continue
		}

		outcome := result.Spec.Result(gen)
		if _, err := fmt.Fprintln(out, outcome); err != nil {
			return fmt.Errorf("write outcome: %w", err)
		}

		if journal != nil {
			if err := journal.AppendRoll(ctx, result.Token, outcome, outcome.Total()); err != nil && errOut != nil {
				fmt.Fprintf(errOut, "journal append: %v\n", err)
			}
		}
	}
	return nil
}
