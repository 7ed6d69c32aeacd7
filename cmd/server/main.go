package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"leavebot/internal/app/server"
	"leavebot/internal/platform/config"
)

func main() {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Fatalf("load .env failed: %v", err)
		}
	}

	cfg := config.Load()
	app, err := server.New(cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer func() { _ = app.Close() }()

	log.Printf("leavebot server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
