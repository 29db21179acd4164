// Package bootstrap assembles the application dependency graph so that main
// and handler tests build the exact same wiring.
package bootstrap

import (
	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/imports"
	"resume-builder-backend/internal/shared/config"
	"resume-builder-backend/internal/shared/server"
	"resume-builder-backend/internal/shared/storage/object"
	localstore "resume-builder-backend/internal/shared/storage/object/local"
)

// App holds shared dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	Store          object.ObjectStore
	ImportsService *imports.Service
	ImportsHandler *imports.Handler
}

// Build prepares dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	store := localstore.New(cfg.LocalStoreDir)
	svc := imports.NewService(store)
	handler := imports.NewHandler(svc)

	return &App{
		Config:         cfg,
		Router:         server.NewRouter(cfg, handler),
		Store:          store,
		ImportsService: svc,
		ImportsHandler: handler,
	}, nil
}
