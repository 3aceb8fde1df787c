package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/theirongolddev/ccb/internal/cli"
	"github.com/theirongolddev/ccb/internal/config"
	"github.com/theirongolddev/ccb/internal/store"
	"github.com/theirongolddev/ccb/internal/tui/components"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagVerbose bool
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:          "ccb",
	Short:        "Credit card benefits tracker",
	Long:         "Track recurring credit card benefits, how much of each you've used, and when they reset.",
	RunE:         runList,
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log store activity to stderr")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress startup notices")
}

// notice is a startup message for the user.
type notice struct {
	msg  string
	kind components.MessageKind
}

// session is the state every command works against.
type session struct {
	cfg     config.Config
	store   *store.Store
	notices []notice
}

// openSession resolves the data file, loads it, applies any lapsed resets
// and saves. Problems along the way become notices; none of them are fatal.
func openSession() *session {
	// A .env file is optional; variables already set take precedence.
	_ = godotenv.Load()

	s := &session{}

	cfg, err := config.Load()
	if err != nil {
		s.add(fmt.Sprintf("Using default settings: %v", err), components.MsgWarn)
	}
	s.cfg = cfg

	level := config.ParseLogLevel(cfg.General.LogLevel)
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	s.store = store.New(config.DataFile(cfg), store.WithLogger(logger))

	if err := s.store.Load(); err != nil {
		if errors.Is(err, store.ErrNoDataFile) {
			s.add("No existing benefits file found. A new one will be created upon adding a benefit.", components.MsgInfo)
		} else {
			s.add(fmt.Sprintf("Error loading benefits file: %v", err), components.MsgError)
		}
	}

	reset, err := s.store.CheckResets()
	if len(reset) > 0 {
		s.add(fmt.Sprintf("Reset %d benefit(s): %s", len(reset), strings.Join(reset, ", ")), components.MsgSuccess)
	}
	if err != nil {
		s.add(err.Error(), components.MsgError)
	}

	return s
}

func (s *session) add(msg string, kind components.MessageKind) {
	s.notices = append(s.notices, notice{msg: msg, kind: kind})
}

// printNotices writes startup notices to stderr.
func (s *session) printNotices() {
	if flagQuiet {
		return
	}
	for _, n := range s.notices {
		fmt.Fprintln(os.Stderr, renderMessage(n.msg, n.kind))
	}
}

// lastNotice returns the most severe notice for the TUI status bar.
func (s *session) lastNotice() (notice, bool) {
	var (
		best  notice
		found bool
	)
	for _, n := range s.notices {
		if !found || n.kind >= best.kind {
			best = n
			found = true
		}
	}
	return best, found
}

func renderMessage(msg string, kind components.MessageKind) string {
	switch kind {
	case components.MsgSuccess:
		return cli.Success(msg)
	case components.MsgWarn:
		return cli.Warn(msg)
	case components.MsgError:
		return cli.Error(msg)
	default:
		return cli.Info(msg)
	}
}

// explain prints a store error the way the user should see it and returns
// it so the command exits non-zero.
func explain(err error) error {
	var (
		verr *store.ValidationError
		serr *store.SaveError
	)
	switch {
	case errors.As(err, &verr):
		fmt.Fprintln(os.Stderr, cli.Warn(verr.Error()))
	case errors.Is(err, store.ErrNotFound):
		fmt.Fprintln(os.Stderr, cli.Warn(err.Error()))
	case errors.As(err, &serr):
		fmt.Fprintln(os.Stderr, cli.Error(fmt.Sprintf("Error saving benefits file: %v", serr.Err)))
	default:
		fmt.Fprintln(os.Stderr, cli.Error(err.Error()))
	}
	return err
}
