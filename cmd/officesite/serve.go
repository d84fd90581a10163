package main

import (
	"context"
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"officesite/internal/redirect"
	"officesite/internal/seed"
	"officesite/internal/server"
	"officesite/internal/startup"
	"officesite/internal/store"
	"officesite/migration"
)

const (
	addrFlag     = "addr"
	skipSeedFlag = "skip-seed"
)

func newServeCmd(a *app) *cobra.Command {
	serveFlags := map[string]cobraflags.Flag{
		addrFlag: &cobraflags.StringFlag{
			Name:  addrFlag,
			Value: a.cfg.Addr,
			Usage: "Address the HTTP server listens on (defaults to ADDR or PORT)",
		},
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Migrate, seed and start the HTTP server",
		Long: `Runs the startup pipeline and then serves HTTP.

Stages:
  database  connect to the database          (fatal)
  migrate   apply pending schema migrations  (fatal)
  seed      insert missing reference data    (recoverable)

A failed seed is logged and the server still starts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			skipSeed, _ := cmd.Flags().GetBool(skipSeedFlag)
			return serve(cmd.Context(), a, serveFlags[addrFlag].GetString(), skipSeed)
		},
	}

	cobraflags.RegisterMap(cmd, serveFlags)
	cmd.Flags().Bool(skipSeedFlag, false, "Do not run the seeder on startup")

	return cmd
}

func serve(ctx context.Context, a *app, addr string, skipSeed bool) error {
	var (
		db      *gorm.DB
		closeDB func() error
	)
	defer func() {
		if closeDB != nil {
			_ = closeDB()
		}
	}()

	pipeline := startup.New(a.logger).
		Add("database", startup.Fatal, func(ctx context.Context) error {
			var err error
			db, closeDB, err = a.openDB(ctx)
			return err
		}).
		Add("migrate", startup.Fatal, func(ctx context.Context) error {
			applied, err := migration.NewMigrator(db).Up(ctx)
			for _, m := range applied {
				a.logger.Info("applied migration", zap.String("version", m.Version), zap.String("name", m.Name))
			}
			return err
		})
	if !skipSeed {
		pipeline.Add("seed", startup.Recoverable, func(ctx context.Context) error {
			_, err := seed.New(store.New(db), seed.DefaultCatalog(), a.logger).Run(ctx)
			return err
		})
	}

	if _, err := pipeline.Run(ctx); err != nil {
		return err
	}

	srv := server.New(store.New(db), redirect.DefaultTable(), a.logger)
	if err := srv.ListenAndServe(ctx, addr); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
