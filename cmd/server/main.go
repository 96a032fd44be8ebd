package main

import (
	"fmt"
	"os"

	"github.com/aistrugglebus/contact-api/internal/config"
	"github.com/aistrugglebus/contact-api/internal/db"
	"github.com/aistrugglebus/contact-api/internal/logging"
	"github.com/aistrugglebus/contact-api/internal/server"
	"github.com/aistrugglebus/contact-api/internal/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "contact-api",
	Short: "Contact intake API for the marketing site",
	Run:   runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Run:   runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migration and exit",
	Run: func(cmd *cobra.Command, args []string) {
		_, logger := mustInit()
		defer logger.Close()

		client, err := db.Initialize()
		if err != nil {
			logger.Error("Migration failed: %v", err)
			os.Exit(1)
		}
		defer client.Close()

		logger.Info("Schema migration completed")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and exit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Version)
	},
}

// mustInit loads configuration and sets up the global logger, exiting on
// failure. Shared by the serve and migrate commands.
func mustInit() (*config.Config, *logging.Logger) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logConfig := &logging.Config{
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}
	if err := logging.InitLogger(logConfig); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	return cfg, logging.GetGlobalLogger()
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, logger := mustInit()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)

	entClient, err := db.Initialize()
	if err != nil {
		logger.Error("Failed to initialize database: %v", err)
		os.Exit(1)
	}
	defer entClient.Close()

	srv := server.NewServer(cfg, db.NewDatabase(entClient))
	if err := srv.Init(); err != nil {
		logger.Error("Failed to initialize server: %v", err)
		os.Exit(1)
	}

	logger.Info("Listening on port %s", cfg.Port)
	if err := srv.Start(); err != nil {
		logger.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
