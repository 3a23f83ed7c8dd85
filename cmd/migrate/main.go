// Command migrate manages the console's audit table.
package main

import (
	"fmt"
	"os"

	"chargili/internal/config"
	"chargili/internal/logger"
	"chargili/internal/repositories"

	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

func main() {
	zlog, err := logger.NewLogger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer zlog.Sync() //nolint:errcheck

	app := &cli.App{
		Name:  "chargili-migrate",
		Usage: "Create or drop the backoffice audit table",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dsn", Usage: "Postgres DSN (defaults to DB_* variables)"},
		},
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Create or update the audit table",
				Action: func(c *cli.Context) error {
					return withDB(c, zlog, func(db *gorm.DB) error {
						if err := repositories.Migrate(db); err != nil {
							return fmt.Errorf("migrate: %w", err)
						}
						zlog.Info("audit table is up to date")
						return nil
					})
				},
			},
			{
				Name:  "drop",
				Usage: "Drop the audit table",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Usage: "Confirm the drop"},
				},
				Action: func(c *cli.Context) error {
					if !c.Bool("yes") {
						return fmt.Errorf("refusing to drop the audit table without --yes")
					}
					return withDB(c, zlog, func(db *gorm.DB) error {
						if err := repositories.DropAuditTable(db); err != nil {
							return fmt.Errorf("drop: %w", err)
						}
						zlog.Warn("audit table dropped")
						return nil
					})
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		zlog.Fatal(err)
	}
}

func withDB(c *cli.Context, zlog *logger.Logger, fn func(db *gorm.DB) error) error {
	if err := config.LoadEnv(); err != nil {
		zlog.Debugw("no .env file loaded", "error", err)
	}
	dsn := c.String("dsn")
	if dsn == "" {
		dsn = config.Load().PostgresDSN()
	}

	db, err := repositories.OpenDB(dsn, repositories.DefaultDBConfig)
	if err != nil {
		return err
	}
	defer func() {
		if err := repositories.CloseDB(db); err != nil {
			zlog.Errorw("failed to close database connection", "error", err)
		}
	}()
	return fn(db)
}
