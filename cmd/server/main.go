package main

import (
	"fmt"
	"log"

	"vendor-registry/internal/config"
	"vendor-registry/internal/database"
	"vendor-registry/internal/server"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
