package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"seoagent-go/internal/config"
	"seoagent-go/internal/handler"
	"seoagent-go/pkg/logger"
	"seoagent-go/pkg/research"
)

type Application struct {
	configPath string
	debug      bool
}

func main() {
	godotenv.Load()

	app := &Application{}

	flag.StringVar(&app.configPath, "config", "config/dev.yaml", "Configuration file path")
	flag.BoolVar(&app.debug, "debug", false, "Enable debug mode")
	flag.Parse()

	if err := app.Run(); err != nil {
		log.Fatalf("Application failed: %v", err)
	}
}

func (app *Application) Run() error {
	manager := config.NewManager()
	cfg, err := manager.Load(app.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Logger.Level
	if app.debug {
		level = "debug"
	}
	appLogger := logger.New(logger.Config{
		Level:      level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	logger.SetLogger(appLogger)
	srvLog := appLogger.WithComponent("server")

	agent, err := buildAgent(cfg)
	if err != nil {
		return fmt.Errorf("failed to build research agent: %w", err)
	}

	server := fiber.New(fiber.Config{
		AppName:      "seoagent-go",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})
	server.Use(recover.New())

	handler.NewHandler(agent).Register(server)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	errChan := make(chan error, 1)
	go func() {
		srvLog.WithField("addr", addr).Info("Server listening")
		errChan <- server.Listen(addr)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		srvLog.WithField("signal", sig.String()).Info("Shutdown signal received")
	}

	if err := server.ShutdownWithTimeout(5 * time.Second); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	srvLog.Info("Server stopped")
	return nil
}

func buildAgent(cfg *config.Config) (*research.Agent, error) {
	builder := research.NewAgentBuilder().
		WithOpenAI(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL).
		WithModels(cfg.OpenAI.GenerationModel, cfg.OpenAI.ClassificationModel).
		WithBatchSize(cfg.Research.BatchSize).
		WithPacing(
			time.Duration(cfg.Research.BatchDelayMs)*time.Millisecond,
			time.Duration(cfg.Research.SeedDelayMs)*time.Millisecond,
		)

	if cfg.Trends.APIKey != "" {
		builder.WithTrends(cfg.Trends.BaseURL, cfg.Trends.APIKey)
	}

	return builder.Build()
}
