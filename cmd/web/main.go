package main

import (
	"fmt"
	"os"

	"github.com/de-tools/churn-atlas/pkg/server"
	authservice "github.com/de-tools/churn-atlas/pkg/services/auth"
	"github.com/de-tools/churn-atlas/pkg/services/config"
	"github.com/de-tools/churn-atlas/pkg/services/dataset"
	"github.com/de-tools/churn-atlas/pkg/store/csvsource"
	"github.com/de-tools/churn-atlas/pkg/store/duckdb"
	duckdbcustomer "github.com/de-tools/churn-atlas/pkg/store/duckdb/customer"
	duckdbuser "github.com/de-tools/churn-atlas/pkg/store/duckdb/user"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Churn Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "churn-atlas.yaml",
		"Path to the churn-atlas config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{
		DbPath: cfg.DbPath,
	})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}

	customerStore, err := duckdbcustomer.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create customer store: %w", err)
	}
	userStore, err := duckdbuser.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create user store: %w", err)
	}

	datasetStore := dataset.NewStore(customerStore, csvsource.NewFileSource(cfg.DatasetPath))

	auth, err := authservice.NewService(userStore, cfg.JWTSecret)
	if err != nil {
		return fmt.Errorf("failed to create auth service: %w", err)
	}

	// Warm the record cache so the first request is not the slow one.
	ctx := logger.WithContext(cmd.Context())
	if records, err := datasetStore.Records(ctx); err != nil {
		logger.Error().Err(err).Msg("startup data load failed, will retry on first request")
	} else {
		logger.Info().Int("records", len(records)).Msg("customer dataset ready")
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: cfg.Addr,
		Dependencies: server.Dependencies{
			Dataset: datasetStore,
			Auth:    auth,
		},
	})

	return api.Start()
}
