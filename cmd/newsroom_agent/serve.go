package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/newsroom-agent/internal/config"
	"github.com/jonathan/newsroom-agent/internal/pipeline"
	"github.com/jonathan/newsroom-agent/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the article generation pipeline and per-stage regeneration endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides APP_PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if servePort != 0 {
		cfg.Port = servePort
	}

	for _, key := range cfg.MissingKeys() {
		log.Printf("Warning: %s not set - the corresponding stage is unavailable", key)
	}

	p, err := pipeline.New(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	return server.New(cfg, p).Start()
}
