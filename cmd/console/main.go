package main

import (
	"context"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/sit722-devops/week09/internal/config"
	"github.com/sit722-devops/week09/internal/scheduler"
	catalogsvc "github.com/sit722-devops/week09/internal/service/catalog"
	reportingsvc "github.com/sit722-devops/week09/internal/service/reporting"
	sessionsvc "github.com/sit722-devops/week09/internal/service/session"
	"github.com/sit722-devops/week09/internal/term"
	catalogclient "github.com/sit722-devops/week09/pkg/clients/catalog"
	"github.com/sit722-devops/week09/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	// Logs go to stderr so they never interleave with the rendered catalog.
	baseLogger := logger.Must(logger.NewConsole())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	apiClient := catalogclient.NewClient(cfg.API)
	renderer := term.NewRenderer(os.Stdout)
	prompt := term.NewPrompt(os.Stdin, os.Stdout)

	browser := catalogsvc.New(cfg.Console, apiClient, renderer, prompt.Confirm, baseLogger.Named("svc.catalog"))
	defer browser.Close()

	reportingSvc := reportingsvc.NewService(browser, baseLogger.Named("svc.reporting"))

	sched := scheduler.NewScheduler(cfg.Console, browser, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sess := sessionsvc.NewSession(browser, prompt, reportingSvc, os.Stdout, baseLogger.Named("svc.session"))
	if err := sess.Run(ctx); err != nil {
		baseLogger.Error("session ended with error", zap.Error(err))
	}

	baseLogger.Info("session closed")
}
