package main

import (
	"log"

	"PagSeguroBridge/config"
	"PagSeguroBridge/internal/app"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	if err := app.Run(cfg); err != nil {
		log.Fatalf("Run error: %s", err)
	}
}
