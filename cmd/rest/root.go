package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"presentation-builder-be/internal/bootstrap"
	"presentation-builder-be/internal/config"
	"presentation-builder-be/internal/pkg/logger"
	"presentation-builder-be/internal/server"
	"presentation-builder-be/internal/tracer"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var rootCmd = &cobra.Command{
	Use:          "presentation-builder",
	Short:        "Training presentation builder API",
	Long:         "Generates training plans and content with an LLM, renders PDF/PPTX decks and publishes quizzes as Google Forms.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("presentation-builder", version)
	},
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)
}

func runServer(ctx context.Context) error {
	// 1. Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	defer log.Sync()

	// 2. Tracing
	shutdownTracer := tracer.InitTracer(cfg.Tracing, log)
	defer shutdownTracer(context.Background())

	// 3. Bootstrap dependencies
	container, err := bootstrap.NewContainer(ctx, cfg, log, version)
	if err != nil {
		return err
	}

	// 4. Run server until interrupted
	srv := server.New(cfg, container)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("Server", "Shutting down", map[string]interface{}{"signal": sig.String()})
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
