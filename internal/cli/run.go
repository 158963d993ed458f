package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/giftswap/allocator"
	"github.com/katalvlaran/giftswap/internal/logging"
	"github.com/katalvlaran/giftswap/internal/random"
	"github.com/katalvlaran/giftswap/participant"
)

// separator is printed before the pairs.
const separator = "------"

// LoadRoster reads the roster named by input: "" is the demo roster, "-" is
// stdin, anything else a file path.
func LoadRoster(input string, stdin io.Reader) ([]participant.Participant, error) {
	var (
		data []byte
		err  error
	)
	switch input {
	case "":
		return participant.Demo(), nil
	case "-":
		if stdin == nil {
			return nil, errors.New("stdin is not available")
		}
		data, err = io.ReadAll(stdin)
	default:
		data, err = os.ReadFile(input)
	}
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	ps, err := participant.DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}

	return ps, nil
}

// Run loads the roster, allocates and writes one "<giver> -> <receiver>" line
// per participant to out. Progress goes to logger.
func Run(cfg Config, stdin io.Reader, out io.Writer, logger *slog.Logger) error {
	if out == nil {
		return errors.New("output is required")
	}
	if logger == nil {
		logger = logging.Discard()
	}

	roster, err := LoadRoster(cfg.Input, stdin)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = random.NewSeed(); err != nil {
			return err
		}
	}

	opts := cfg.Options(seed)
	opts.OnRestart = func(st allocator.RestartStat) {
		logger.Debug("restart finished",
			"restart", st.Index,
			"initial_score", st.InitialScore,
			"score", st.Score,
			"accepted_swaps", st.Accepted,
		)
	}
	logger.Info("allocating",
		"participants", len(roster),
		"steps", opts.Steps,
		"max_options", opts.MaxOptions,
		"restarts", opts.Restarts,
		"workers", opts.Workers,
		"seed", seed,
	)

	res, err := allocator.Solve(roster, opts)
	if err != nil {
		return err
	}
	logger.Info("allocation finished", "score", res.Score, "categories", res.Categories, "best_restart", res.Best)

	return Render(out, res, cfg.ShowScore)
}

// Render writes the separator, the pairs and optionally the score line.
func Render(out io.Writer, res allocator.Result, showScore bool) error {
	if _, err := fmt.Fprintln(out, separator); err != nil {
		return err
	}
	for _, a := range res.Allocations {
		if _, err := fmt.Fprintln(out, a.String()); err != nil {
			return err
		}
	}
	if showScore {
		if _, err := fmt.Fprintf(out, "score: %g\n", res.Score); err != nil {
			return err
		}
	}

	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
