// Command storefront-admin-cli runs operator tasks against the console's
// infrastructure: schema migrations, token inspection, cache purges and the
// audit trail.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/target/storefront-admin/config"
	"github.com/target/storefront-admin/internal/bootstrap"
)

const defaultCommandTimeout = 5 * time.Minute

// app carries what every subcommand needs once the root command has run.
type app struct {
	cfg    config.AppConfig
	logger *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "storefront-admin-cli",
		Short:         "Operator tools for the storefront admin console",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bootstrap.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			a.cfg = cfg
			a.logger = bootstrap.InitLogger(cfg.LogLevel).With("command", cmd.CommandPath())
			return nil
		},
	}

	root.AddCommand(
		newMigrateCmd(a),
		newTokenCmd(a),
		newCacheCmd(a),
		newAuditCmd(a),
	)
	return root
}

// withTimeout bounds a subcommand so a hung dependency cannot stall a script.
func withTimeout(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, defaultCommandTimeout)
}

func writef(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
