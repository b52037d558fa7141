// Package bootstrap wires shared dependencies into a runnable app. Tests
// build the full router through here.
package bootstrap

import (
	"time"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/accounts"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/session"
	"resume-builder/internal/shared/storage/docstore"
	"resume-builder/internal/uploads"
)

// App holds shared dependencies.
type App struct {
	Config   config.Config
	Router   *gin.Engine
	Store    *docstore.Store
	Photos   *uploads.Store
	Sessions *session.Manager

	AccountsRepo    accounts.Repo
	ResumesRepo     resumes.Repo
	AccountsService *accounts.Service
	ResumesService  *resumes.Service
	AccountsHandler *accounts.Handler
	ResumesHandler  *resumes.Handler
}

// Build prepares all dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if cfg.SessionHours <= 0 {
		cfg.SessionHours = 24
	}

	store, err := docstore.New(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	photos, err := uploads.NewStore(cfg.UploadsDir)
	if err != nil {
		return nil, err
	}
	sessions := session.NewManager(cfg.SessionSecret, time.Duration(cfg.SessionHours)*time.Hour)

	accountsRepo := accounts.NewFileRepo(store)
	resumesRepo := resumes.NewFileRepo(store)
	accountsSvc := accounts.NewService(accountsRepo, cfg.BcryptCost)
	resumesSvc := resumes.NewService(resumesRepo, photos)

	app := &App{
		Config:          cfg,
		Store:           store,
		Photos:          photos,
		Sessions:        sessions,
		AccountsRepo:    accountsRepo,
		ResumesRepo:     resumesRepo,
		AccountsService: accountsSvc,
		ResumesService:  resumesSvc,
		AccountsHandler: accounts.NewHandler(accountsSvc, sessions),
		ResumesHandler:  resumes.NewHandler(resumesSvc),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		Sessions:        sessions,
		AccountsHandler: app.AccountsHandler,
		ResumesHandler:  app.ResumesHandler,
	})

	return app, nil
}
