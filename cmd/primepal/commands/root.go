package commands

import (
	"fmt"
	"log/slog"

	"github.com/mrled/suns/primepal/internal/logger"
	"github.com/mrled/suns/primepal/internal/usecase/scan"
	"github.com/spf13/cobra"
)

var log *slog.Logger

var rootCmd = &cobra.Command{
	Use:   "primepal",
	Short: "Print the prime palindromes between 10 and 999",
	Long: `Scan every integer from 10 up to (but not including) 1000 and print
those that are both prime and palindromic in base 10, one per line,
followed by a sign-off line.

The range is fixed and the command takes no arguments. Diagnostic
logging goes to stderr and is controlled by LOG_LEVEL, LOG_FORMAT and
LOG_ADD_SOURCE.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.NoArgs(cmd, args); err != nil {
			return &UsageError{err}
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logger.NewDefaultLogger()
		if err != nil {
			return &UsageError{fmt.Errorf("invalid logging environment: %w", err)}
		}
		log = logger.WithExecutable(l, "primepal")
		logger.SetDefault(log)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		uc := scan.NewScanUseCase(log)
		if _, err := uc.Run(ctx, cmd.OutOrStdout()); err != nil {
			return ExitWithCode(1, err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
