package main

import (
	"github.com/spf13/cobra"

	"github.com/feeform/feeform/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "feeform",
	Short: "Regulatory fee calculation service",
	Long:  "Serves the fee calculation form API: reference data, rule-based fee totals, and the chat assistant proxy, backed by Supabase/Postgres.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", config.FirstEnv("SUPABASE_DB_URL", "DATABASE_URL"),
		"Postgres connection string (or set SUPABASE_DB_URL / DATABASE_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
}
