package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tasq/internal/assistant"
	"tasq/internal/middleware"
	"tasq/internal/reminder"
	"tasq/internal/task"
	pkgLog "tasq/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	taskUC      task.UseCase
	reminderUC  reminder.UseCase
	assistantUC assistant.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	TaskUC      task.UseCase
	ReminderUC  reminder.UseCase
	AssistantUC assistant.UseCase
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		taskUC:      cfg.TaskUC,
		reminderUC:  cfg.ReminderUC,
		assistantUC: cfg.AssistantUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	if srv.reminderUC == nil {
		return errors.New("reminder usecase is required")
	}
	if srv.assistantUC == nil {
		return errors.New("assistant usecase is required")
	}
	return nil
}
