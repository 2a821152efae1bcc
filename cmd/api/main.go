package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tasq/config"
	_ "tasq/docs" // Swagger docs
	assistantUC "tasq/internal/assistant/usecase"
	"tasq/internal/httpserver"
	intentUC "tasq/internal/intent/usecase"
	"tasq/internal/middleware"
	"tasq/internal/model"
	reminderRepo "tasq/internal/reminder/repository/kv"
	reminderUC "tasq/internal/reminder/usecase"
	taskRepo "tasq/internal/task/repository/firestore"
	taskUC "tasq/internal/task/usecase"
	"tasq/pkg/datemath"
	"tasq/pkg/gemini"
	"tasq/pkg/kvstore"
	"tasq/pkg/log"
	"tasq/pkg/notify"
)

// @title       tasQ API
// @description AI-assisted task manager: natural-language task capture, reminders, and daily summaries.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting tasQ...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Shared primitives
	dateMathParser, dtErr := datemath.NewParser(cfg.Gemini.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Gemini.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// Gemini LLM client (optional: without it the deterministic parser runs)
	var llm intentUC.Generator
	if cfg.Gemini.APIKey != "" {
		llm = gemini.NewClient(cfg.Gemini.APIKey).WithModel(cfg.Gemini.Model)
		logger.Info(ctx, "Gemini client initialized")
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY missing, intent parsing falls back to pattern matching")
	}

	// Local key-value store for notification bookkeeping
	store, err := kvstore.NewOnDisk(cfg.Storage.Dir)
	if err != nil {
		logger.Errorf(ctx, "Failed to open local store at %s: %v", cfg.Storage.Dir, err)
		return
	}

	// Local notification scheduler
	notifier := notify.NewLocal(nil)
	notifier.SetPermission(cfg.Notifications.Enabled)
	defer notifier.Close()

	// 4. Task store (Firestore)
	if cfg.Firestore.ProjectID == "" || cfg.Firestore.CredentialsPath == "" {
		logger.Error(ctx, "firestore.project_id and firestore.credentials_path are required")
		return
	}
	firestoreSvc, err := taskRepo.NewServiceFromCredentialsFile(ctx, cfg.Firestore.CredentialsPath)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Firestore: %v", err)
		return
	}

	// 5. Domains. The reminder scheduler and task store are mutually
	// dependent (reminders complete tasks, toggles reschedule reminders), so
	// the completion hook is installed after the task usecase exists.
	intentUsecase := intentUC.New(logger, llm)

	var completeHook reminderUC.CompleteFunc
	reminderUsecase := reminderUC.New(
		logger,
		reminderRepo.New(store),
		notifier,
		dateMathParser,
		func(ctx context.Context, taskID string) error {
			if completeHook == nil {
				return nil
			}
			return completeHook(ctx, taskID)
		},
	)

	taskUsecase := taskUC.New(logger, taskRepo.New(firestoreSvc, cfg.Firestore.ProjectID, logger), reminderUsecase, dateMathParser)
	completeHook = func(ctx context.Context, taskID string) error {
		// Reminder actions arrive without a caller scope; the task id alone
		// identifies the document.
		_, err := taskUsecase.Toggle(ctx, model.Scope{}, taskID)
		return err
	}

	assistantUsecase := assistantUC.New(logger, intentUsecase, taskUsecase)

	// Daily summary: derive the schedule from stored settings on boot.
	if settings, sErr := reminderUsecase.Settings(ctx); sErr == nil && settings.DailySummary {
		if _, sErr := reminderUsecase.ScheduleDailySummary(ctx, settings.SummaryTime); sErr != nil {
			logger.Warnf(ctx, "Failed to schedule daily summary: %v", sErr)
		}
	}

	// 6. HTTP server
	mw := middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.Assistant.RateLimitPerMin})

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		TaskUC:      taskUsecase,
		ReminderUC:  reminderUsecase,
		AssistantUC: assistantUsecase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
