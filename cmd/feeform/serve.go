package main

import (
	"context"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/feeform/feeform/internal/api"
	"github.com/feeform/feeform/internal/assistant"
	"github.com/feeform/feeform/internal/config"
	"github.com/feeform/feeform/internal/db"
	"github.com/feeform/feeform/internal/exitcode"
	"github.com/feeform/feeform/internal/fees"
	"github.com/feeform/feeform/internal/logging"
	"github.com/feeform/feeform/internal/refdata"
)

var configFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&cfg.Addr, "addr", ":8080", "Listen address")
	f.StringVar(&cfg.PromptPath, "prompt", "prompts/assistant_prompt.txt", "Path to the assistant system prompt file")
	f.StringVar(&cfg.AssistantModel, "model", config.FirstEnv("ASSISTANT_MODEL"),
		"Assistant model identifier (or set ASSISTANT_MODEL; defaults to "+assistant.DefaultModel+")")
	f.StringVar(&configFile, "config", "", "Optional YAML config file (roles)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if configFile != "" {
		if err := cfg.LoadFromFile(configFile); err != nil {
			log.Error().Err(err).Msg("config file invalid")
			os.Exit(exitcode.ConfigError)
		}
	}
	if err := cfg.ValidateServe(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	store := db.NewStore(pool)

	// The API key is read here but only checked per request, so the
	// server comes up even when the assistant is unconfigured.
	cfg.AssistantAPIKey = config.FirstEnv("OPENAI_API_KEY", "LLM_API_KEY")
	client := assistant.NewClient(cfg.AssistantAPIKey, cfg.AssistantModel, nil, "")

	server := api.NewServer(
		refdata.NewService(store),
		fees.NewEngine(store, log),
		assistant.NewService(client, cfg.PromptPath, cfg.Roles),
		log,
	)

	log.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := http.ListenAndServe(cfg.Addr, server); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(exitcode.ServerError)
	}
	return nil
}
