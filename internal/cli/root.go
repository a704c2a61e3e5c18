// filepath: internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"studiohub/internal/api"
	"studiohub/internal/api/handlers"
	"studiohub/internal/audit"
	"studiohub/internal/config"
	"studiohub/internal/logging"
	"studiohub/internal/repository"
	"studiohub/internal/services"
	"studiohub/internal/services/auth"
	"studiohub/internal/storage"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Version info
	Version = "1.0.0"

	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags
	cfgFile      string
	logLevel     string
	port         int
	password     string
	uploadsRoot  string
	maxUpload    string
	sessionTTL   int
	auditEnabled bool
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "studiohub",
	Short: "StudioHub site & admin console",
	Long:  `The StudioHub photography site: public catalog pages, lead intake and a small admin console for gallery uploads.`,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the base configuration file. (Env: STUDIOHUB_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: STUDIOHUB_LOG_LEVEL)")

	// Server-specific flags
	RootCmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: STUDIOHUB_PORT)")
	RootCmd.Flags().StringVar(&password, "password", "", "Password for the 'admin' user created on first run. (Env: STUDIOHUB_PASSWORD)")
	RootCmd.Flags().StringVar(&uploadsRoot, "uploads-root", "", "Directory for uploaded images. (Env: STUDIOHUB_UPLOADS_ROOT)")
	RootCmd.Flags().StringVar(&maxUpload, "max-upload", "", "Max upload size (e.g. '16MB'). (Env: STUDIOHUB_MAX_UPLOAD)")
	RootCmd.Flags().IntVar(&sessionTTL, "session-ttl", 0, "Admin session lifetime in hours. (Env: STUDIOHUB_SESSION_TTL)")
	RootCmd.Flags().BoolVar(&auditEnabled, "audit-enabled", false, "Enable detailed audit logging. (Env: STUDIOHUB_AUDIT_ENABLED=true)")
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	// Check environment variable for config path first
	if envPath := os.Getenv("STUDIOHUB_CONFIG_PATH"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config if not found, rely on defaults/flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	applyOverrides(cfg, cmd)

	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logging.Init(cfg.Logging.Level)

	return nil
}

func applyOverrides(c *config.Config, cmd *cobra.Command) {
	// --- 1. Environment Variables ---
	if v := os.Getenv("STUDIOHUB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("STUDIOHUB_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("STUDIOHUB_PASSWORD"); v != "" {
		c.AdminPassword = v
	}
	if v := os.Getenv("STUDIOHUB_DATABASE_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("STUDIOHUB_UPLOADS_ROOT"); v != "" {
		c.Uploads.Root = v
	}
	if v := os.Getenv("STUDIOHUB_MAX_UPLOAD"); v != "" {
		c.Uploads.MaxUploadSize = v
	}
	if v := os.Getenv("STUDIOHUB_SESSION_TTL"); v != "" {
		if ttl, err := strconv.Atoi(v); err == nil {
			c.Session.TTLHours = ttl
		}
	}
	if v := os.Getenv("STUDIOHUB_AUDIT_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.AuditEnabled = b
		}
	}

	// --- 2. CLI Flags (Take precedence) ---
	if port != 0 {
		c.Server.Port = port
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if password != "" {
		c.AdminPassword = password
	}
	if uploadsRoot != "" {
		c.Uploads.Root = uploadsRoot
	}
	if maxUpload != "" {
		c.Uploads.MaxUploadSize = maxUpload
	}
	if sessionTTL != 0 {
		c.Session.TTLHours = sessionTTL
	}
	if cmd.Flags().Changed("audit-enabled") {
		c.Logging.AuditEnabled = auditEnabled
	}
}

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer() error {
	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	defer repo.Close()

	// Schema and seed data must be in place before serving anything.
	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		logging.Log.Errorf("Failed to bootstrap database: %v", err)
		return err
	}
	if err := repo.Seed(cfg.AdminPassword); err != nil {
		logging.Log.Errorf("Failed to seed database: %v", err)
		return err
	}
	if err := repo.DeleteExpiredSessions(); err != nil {
		logging.Log.Warnf("Failed to clean up expired sessions: %v", err)
	}

	if err := storage.EnsureUploadDirs(cfg.Uploads.Root); err != nil {
		return fmt.Errorf("failed to prepare upload directories: %w", err)
	}

	// Service Initialization
	catalogService := services.NewCatalogService(repo)
	inquiryService := services.NewInquiryService(repo)
	adminService := services.NewAdminService(repo)
	galleryService := services.NewGalleryService(repo, cfg)
	sessionService := auth.NewSessionService(cfg, repo)

	loggerAuditor := audit.NewLoggerAuditor(cfg.Logging.AuditEnabled)
	guard := auth.NewMiddleware(sessionService, cfg.Session.CookieName)

	h := handlers.NewHandlers(
		catalogService,
		inquiryService,
		adminService,
		galleryService,
		sessionService,
		loggerAuditor,
		guard,
		cfg,
	)

	r := api.SetupRouter(h, guard, cfg)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logging.Log.Infof("Server starting on %s (Max Upload: %s)", serverAddr, cfg.Uploads.MaxUploadSize)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-stop
	logging.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
