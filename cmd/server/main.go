// Command server runs the CHARGILI backoffice console.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chargili/internal/apiclient"
	"chargili/internal/config"
	"chargili/internal/logger"
	"chargili/internal/repositories"
	"chargili/internal/repositories/cache"
	"chargili/internal/routes"
	"chargili/internal/services/payment"
	"chargili/internal/session"
	"chargili/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/urfave/cli/v2"
)

const version = "1.0.0"

func main() {
	app := &cli.App{
		Name:    "chargili-backoffice",
		Usage:   "CHARGILI backoffice console",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "port", Aliases: []string{"p"}, Usage: "HTTP port"},
			&cli.StringFlag{Name: "api-base-url", Aliases: []string{"a"}, Usage: "CHARGILI API base URL"},
			&cli.DurationFlag{Name: "api-timeout", Usage: "Outbound API timeout (0 keeps the transport default)"},
			&cli.StringFlag{Name: "redis-host", Usage: "Redis host"},
			&cli.StringFlag{Name: "redis-port", Usage: "Redis port"},
			&cli.StringFlag{Name: "restore-mode", Usage: "Session restore mode: fetch or legacy"},
			&cli.DurationFlag{Name: "session-ttl", Usage: "Session token lifetime (0 = no expiry)"},
			&cli.BoolFlag{Name: "audit", Usage: "Record console mutations in Postgres"},
			&cli.BoolFlag{Name: "development", Aliases: []string{"D"}, Usage: "Development mode"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	if err := config.LoadEnv(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	if c.IsSet("port") {
		cfg.Port = c.String("port")
	}
	if c.IsSet("api-base-url") {
		cfg.APIBaseURL = c.String("api-base-url")
	}
	if c.IsSet("api-timeout") {
		cfg.APITimeout = c.Duration("api-timeout")
	}
	if c.IsSet("redis-host") {
		cfg.RedisHost = c.String("redis-host")
	}
	if c.IsSet("redis-port") {
		cfg.RedisPort = c.String("redis-port")
	}
	if c.IsSet("restore-mode") {
		cfg.SessionRestoreMode = c.String("restore-mode")
	}
	if c.IsSet("session-ttl") {
		cfg.SessionTTL = c.Duration("session-ttl")
	}
	if c.IsSet("audit") {
		cfg.AuditEnabled = c.Bool("audit")
	}
	if c.IsSet("development") {
		cfg.Development = c.Bool("development")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	zlog, err := logger.NewLogger(cfg.Development)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer zlog.Sync() //nolint:errcheck

	redisClient := cache.NewRedisClient(&cache.RedisConfig{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	cacheService := cache.NewCacheService(redisClient, cfg.SessionTTL)
	pingCtx, cancel := context.WithTimeout(c.Context, 5*time.Second)
	if err := cacheService.HealthCheck(pingCtx); err != nil {
		zlog.Warnw("redis unavailable at startup", "addr", cfg.RedisAddr(), "error", err)
	} else {
		zlog.Infow("connected to redis", "addr", cfg.RedisAddr())
	}
	cancel()

	var audit repositories.AuditRepository = repositories.NoopAuditRepository{}
	if cfg.AuditEnabled {
		db, err := repositories.OpenDB(cfg.PostgresDSN(), repositories.DefaultDBConfig)
		if err != nil {
			return err
		}
		defer repositories.CloseDB(db)
		if err := repositories.Migrate(db); err != nil {
			return fmt.Errorf("migrate audit table: %w", err)
		}
		audit = repositories.NewAuditRepository(db)
		zlog.Info("audit trail enabled")
	}

	var payments payment.Lookup = payment.Disabled{}
	if cfg.StripeSecretKey != "" {
		payments = payment.NewStripeLookup(cfg.StripeSecretKey)
	}

	api := apiclient.New(apiclient.Options{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.APITimeout,
		Token:   session.TokenFrom,
		Logger:  zlog.With("component", "apiclient"),
	})

	app := fiber.New(fiber.Config{
		AppName:      "chargili-backoffice",
		ErrorHandler: response.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupRoutes(app, routes.Deps{
		API:            api,
		Store:          repositories.NewRedisTokenStore(cacheService),
		Cache:          cacheService,
		Audit:          audit,
		Payments:       payments,
		Logger:         zlog,
		RestoreMode:    cfg.SessionRestoreMode,
		LoginRateLimit: cfg.LoginRateLimit,
		SecureCookies:  cfg.IsProduction(),
		Version:        version,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		zlog.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zlog.Errorw("shutdown", "error", err)
		}
	}()

	zlog.Infow("console listening", "port", cfg.Port, "api", cfg.APIBaseURL, "restore", cfg.SessionRestoreMode)
	return app.Listen(":" + cfg.Port)
}
