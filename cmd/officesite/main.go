package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"officesite/internal/config"
	"officesite/internal/database"
	"officesite/internal/logging"
	"officesite/migration/commands"
	_ "officesite/migration/versions"
)

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	cfg    config.Config
	logger *zap.Logger
}

func (a *app) openDB(ctx context.Context) (*gorm.DB, func() error, error) {
	db, err := database.Open(ctx, database.Options{
		Driver:        a.cfg.DBDriver,
		DSN:           a.cfg.DatabaseURL,
		MaxRetries:    a.cfg.ConnRetries,
		RetryInterval: a.cfg.RetryInterval,
		Debug:         a.cfg.Debug,
	}, a.logger)
	if err != nil {
		return nil, nil, err
	}
	return db, func() error { return database.Close(db) }, nil
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "officesite",
		Short:         "Backend for the virtual office marketing site",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("database-url") {
				a.cfg.DatabaseURL, _ = flags.GetString("database-url")
			}
			if flags.Changed("db-driver") {
				a.cfg.DBDriver, _ = flags.GetString("db-driver")
			}
			if debug, _ := flags.GetBool("debug"); debug {
				a.cfg.Debug = true
			}

			logger, err := logging.New(a.cfg.Debug)
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().String("database-url", "", "Database connection string (defaults to DATABASE_URL)")
	rootCmd.PersistentFlags().String("db-driver", "", "Database driver: postgres or sqlite (defaults to DB_DRIVER)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		newServeCmd(a),
		newSeedCmd(a),
		newRedirectsCmd(),
		commands.MigrateCmd(a.openDB),
	)
	return rootCmd
}

func main() {
	a := &app{cfg: config.Load()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
