package main

import (
	"flag"
	"log"

	"novagen/config"
	"novagen/internal/api"
	"novagen/internal/util"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the generation config file")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := util.InitLogger(cfg.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	api.NewHandler(cfg.Output.DataDir).SetupRoutes(router)

	log.Printf("Preview server listening on %s, serving %s", *addr, cfg.Output.DataDir)
	if err := router.Run(*addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
