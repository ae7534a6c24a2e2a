package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"smartude/internal/account"
	"smartude/internal/checklist"
	"smartude/internal/middleware"
	"smartude/internal/progress"
	"smartude/internal/reminder"
	appSync "smartude/internal/sync"
	"smartude/pkg/log"
)

const shutdownTimeout = 5 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	middleware  middleware.Config

	// Domains
	checklist checklist.Service
	progress  progress.UseCase
	account   account.UseCase
	sync      appSync.UseCase
	reminder  reminder.UseCase
	location  *time.Location
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Config

	Checklist checklist.Service
	Progress  progress.UseCase
	Account   account.UseCase
	Sync      appSync.UseCase
	Reminder  reminder.UseCase
	// Location is the zone arrival dates are read in.
	Location *time.Location
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		middleware:  cfg.Middleware,
		checklist:   cfg.Checklist,
		progress:    cfg.Progress,
		account:     cfg.Account,
		sync:        cfg.Sync,
		reminder:    cfg.Reminder,
		location:    cfg.Location,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.checklist == nil || srv.progress == nil {
		return errors.New("checklist and progress are required")
	}
	if srv.account == nil {
		return errors.New("account use case is required")
	}
	if srv.sync == nil {
		return errors.New("sync use case is required")
	}
	if srv.reminder == nil {
		return errors.New("reminder use case is required")
	}
	return nil
}
