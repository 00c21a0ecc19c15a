package main

import (
	"log"

	"github.com/Grelo-LLC/Grelo-Corporate-API/internal/app"
	"github.com/Grelo-LLC/Grelo-Corporate-API/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
