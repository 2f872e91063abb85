package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmehra2102/menudash/internal/app"
	"github.com/dmehra2102/menudash/internal/domain"
	"github.com/dmehra2102/menudash/internal/guard"
	"github.com/dmehra2102/menudash/internal/i18n"
	"github.com/dmehra2102/menudash/internal/infrastructure/config"
	"github.com/dmehra2102/menudash/internal/infrastructure/memstore"
	"github.com/dmehra2102/menudash/internal/infrastructure/postgres"
	"github.com/dmehra2102/menudash/internal/infrastructure/restapi"
	"github.com/dmehra2102/menudash/internal/session"
	"github.com/dmehra2102/menudash/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	serviceName    = "menudash"
	serviceVersion = "1.0.0"
)

var rootCmd = &cobra.Command{
	Use:           "menudash",
	Short:         "Terminal dashboard for the restaurant ordering platform",
	Long:          `Sign in against the platform API and manage products, categories, options, promotions, reels and the game.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDashboard,
}

func main() {
	rootCmd.AddCommand(migrateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "menudash: %v\n", err)
		os.Exit(1)
	}
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	// Load Configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := initLogger(cfg.Environment, cfg.GetObservabilityConfig())
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("Starting dashboard",
		zap.String("version", serviceVersion),
		zap.String("environment", cfg.Environment),
		zap.String("api", cfg.APIBaseURL),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := initTracer(ctx, cfg.GetObservabilityConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize tracer: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			logger.Warn("Tracer shutdown failed", zap.Error(err))
		}
	}()

	stopMetrics := startMetricsServer(cfg.GetObservabilityConfig(), logger)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		stopMetrics(shutdownCtx)
	}()

	store, closeStore, err := initPageStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	sess := session.NewStore(cfg.JWTSecret, logger.Named("session"))
	client, err := restapi.New(cfg.GetAPIConfig(), sess, logger.Named("api"))
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	dash := cfg.GetDashboardConfig()
	events := ui.NewEvents(64)
	model := ui.New(ui.Deps{
		Ctx:      ctx,
		Config:   dash,
		Store:    store,
		Messages: i18n.New(dash.Locale),
		Logger:   logger.Named("ui"),
		Session:  sess,
		Auth:     client,
		Events:   events,
	}, guard.New(sess, logger.Named("guard")), bindings(restapi.NewCatalog(client), sess, logger)...)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, runErr := program.Run()
	model.Close()

	logger.Info("Dashboard stopped")
	if runErr != nil && ctx.Err() == nil {
		return fmt.Errorf("dashboard failed: %w", runErr)
	}
	return nil
}

func bindings(c *restapi.Catalog, sess app.Session, logger *zap.Logger) []ui.Binding {
	res := func(kind domain.ResourceKind) domain.Resource {
		r, _ := domain.ResourceByKind(kind)
		return r
	}

	return []ui.Binding{
		ui.Bind[domain.Product](app.NewResourceService[domain.Product](res(domain.ResourceProducts), c.Products, sess, logger)),
		ui.Bind[domain.Category](app.NewResourceService[domain.Category](res(domain.ResourceCategories), c.Categories, sess, logger)),
		ui.Bind[domain.Option](app.NewResourceService[domain.Option](res(domain.ResourceAdditionalOptions), c.AdditionalOptions, sess, logger)),
		ui.Bind[domain.Option](app.NewResourceService[domain.Option](res(domain.ResourceRequiredOptions), c.RequiredOptions, sess, logger)),
		ui.Bind[domain.Promotion](app.NewResourceService[domain.Promotion](res(domain.ResourcePromotions), c.Promotions, sess, logger)),
		ui.Bind[domain.Reel](app.NewResourceService[domain.Reel](res(domain.ResourceReels), c.Reels, sess, logger)),
		ui.Bind[domain.Game](app.NewResourceService[domain.Game](res(domain.ResourceGames), c.Games, sess, logger)),
	}
}

// initPageStore uses Postgres when DATABASE_URL is set, memory otherwise.
func initPageStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (domain.PageStore, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Info("No database configured, listing pages are kept in memory")
		return memstore.New(), func() {}, nil
	}

	db, err := postgres.Open(ctx, cfg.GetDatabaseConfig())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run migrations
	if err := postgres.Migrate(db, cfg.MigrationsPath); err != nil {
		db.Close()
		return nil, nil, err
	}

	return postgres.NewPageStore(db), func() { closeDB(db, logger) }, nil
}

func closeDB(db *sql.DB, logger *zap.Logger) {
	if err := db.Close(); err != nil {
		logger.Warn("Failed to close database", zap.Error(err))
	}
}
