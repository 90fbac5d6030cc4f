// Package cli assembles the cobra commands shared by the checker binaries.
package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"namecheck/internal/audit"
	"namecheck/internal/config"
	"namecheck/internal/isocache"
	"namecheck/internal/logging"
	"namecheck/internal/report"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitFindings = 1
	ExitSetup    = 2
)

// ExitError carries a process exit code out of a command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// Check is one checker run against the shared auditor.
type Check struct {
	Name string
	Run  func(a *audit.Auditor, ctx context.Context, rep audit.Reporter) error
}

// The checkers a command can run.
var (
	QuranRefs   = Check{Name: "quran references", Run: (*audit.Auditor).QuranReferences}
	Slugs       = Check{Name: "slugs", Run: (*audit.Auditor).Slugs}
	LegalGuides = Check{Name: "legal guides", Run: (*audit.Auditor).LegalGuides}
)

// NewCommand builds an argument-free root command that runs checks into one
// report titled title.
func NewCommand(use, title, short string, checks ...Check) *cobra.Command {
	var (
		configPath string
		cfg        *config.Config
		logger     *zap.Logger
	)

	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return &ExitError{Code: ExitSetup, Err: err}
			}
			logger, err = logging.New(cfg.Log, use)
			if err != nil {
				return &ExitError{Code: ExitSetup, Err: err}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, logger, title, checks)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultFile+")")
	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config, logger *zap.Logger, title string, checks []Check) error {
	a := &audit.Auditor{
		Paths: audit.Paths{
			Names:       cfg.Data.Names,
			Aliases:     cfg.Data.Aliases,
			Mappings:    cfg.Data.Mappings,
			LegalGuides: cfg.Data.LegalGuides,
		},
		Countries: &isocache.Loader{
			Path:   cfg.ISO.CachePath,
			URL:    cfg.ISO.URL,
			Client: &http.Client{Timeout: cfg.ISO.Timeout},
			Logger: logger,
		},
		Logger: logger,
	}

	policy := report.DefaultPolicy()
	policy.FailOnWarnings = cfg.Report.FailOnWarnings
	rep := report.New(title, policy)

	var setupErrs []error
	for _, c := range checks {
		if err := c.Run(a, cmd.Context(), rep); err != nil {
			logger.Error("checker failed", zap.String("checker", c.Name), zap.Error(err))
			setupErrs = append(setupErrs, fmt.Errorf("%s: %w", c.Name, err))
		}
	}

	// Multi-check runs print what the other checkers found.
	if len(setupErrs) == 0 || len(checks) > 1 {
		if err := write(cmd, cfg.Report.Format, rep); err != nil {
			return &ExitError{Code: ExitSetup, Err: fmt.Errorf("write report: %w", err)}
		}
	}
	if cfg.Report.Output != "" {
		if err := rep.WriteFile(cfg.Report.Output); err != nil {
			return &ExitError{Code: ExitSetup, Err: fmt.Errorf("write report: %w", err)}
		}
		logger.Info("saved report", zap.String("path", cfg.Report.Output))
	}
	if len(setupErrs) > 0 {
		return &ExitError{Code: ExitSetup, Err: errors.Join(setupErrs...)}
	}
	if code := rep.ExitCode(); code != ExitOK {
		return &ExitError{Code: code}
	}
	return nil
}

func write(cmd *cobra.Command, format string, rep *report.Report) error {
	if format == "json" {
		return rep.WriteJSON(cmd.OutOrStdout())
	}
	return rep.WriteText(cmd.OutOrStdout())
}

// Execute runs cmd and returns the process exit code.
func Execute(cmd *cobra.Command) int {
	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		return ExitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		if ee.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", ee.Err)
		}
		return ee.Code
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	return ExitSetup
}

// Main runs cmd and exits the process.
func Main(cmd *cobra.Command) {
	os.Exit(Execute(cmd))
}
