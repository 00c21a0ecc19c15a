package app

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Grelo-LLC/Grelo-Corporate-API/internal/config"
	httpx "github.com/Grelo-LLC/Grelo-Corporate-API/internal/http"
	"github.com/Grelo-LLC/Grelo-Corporate-API/internal/http/handlers"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	authH := handlers.NewAuthHandlers(container.AccountSvc, cfg.Messages)
	resetH := handlers.NewResetHandlers(container.ResetSvc, cfg.Messages)

	r := httpx.BuildRouter(authH, resetH)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
