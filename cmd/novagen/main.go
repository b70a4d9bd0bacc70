package main

import (
	"context"
	"flag"
	"log"
	"time"

	"novagen/config"
	"novagen/internal/pipeline"
	"novagen/internal/util"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the generation config file")
	seed := flag.Int64("seed", 0, "override the configured random seed")
	outputDir := flag.String("output", "", "override the configured output directory")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.RandomSeed = *seed
	}
	if *outputDir != "" {
		cfg.Output.DataDir = *outputDir
	}

	if err := util.InitLogger(cfg.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting nova data generator")

	if cfg.Observ.JaegerEndpoint != "" {
		tp, err := util.InitTracer("novagen", cfg.Observ.JaegerEndpoint)
		if err != nil {
			log.Fatalf("Failed to initialize tracer: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(ctx); err != nil {
				log.Printf("Error shutting down tracer: %v", err)
			}
		}()
	}

	res, err := pipeline.New(cfg).Run(context.Background())
	if err != nil {
		log.Fatalf("Generation run failed: %v", err)
	}

	log.Printf("Run %s complete: output written to %s in %s",
		res.RunID, res.OutputDir, res.Elapsed.Round(time.Millisecond))
}
