package routes

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/yky-hub/yky_hub/internal/auth"
	"github.com/yky-hub/yky_hub/internal/billing"
	"github.com/yky-hub/yky_hub/internal/bioscan"
	"github.com/yky-hub/yky_hub/internal/community"
	"github.com/yky-hub/yky_hub/internal/config"
	"github.com/yky-hub/yky_hub/internal/identity"
	"github.com/yky-hub/yky_hub/internal/library"
	"github.com/yky-hub/yky_hub/internal/middleware"
	"github.com/yky-hub/yky_hub/internal/notification"
	"github.com/yky-hub/yky_hub/internal/oracle"
	"github.com/yky-hub/yky_hub/internal/soulprint"
	"github.com/yky-hub/yky_hub/internal/tarot"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !isDev(d.Cfg.AppEnv) {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	// Repositories
	var (
		identityRepo identity.Repository
		oracleRepo   oracle.Repository
		tarotRepo    tarot.Repository
		bioscanRepo  bioscan.Repository
		postRepo     community.Repository
		billingRepo  billing.Repository
	)
	if d.DB != nil {
		identityRepo = identity.NewPostgresRepository(d.DB)
		oracleRepo = oracle.NewPostgresRepository(d.DB)
		tarotRepo = tarot.NewPostgresRepository(d.DB)
		bioscanRepo = bioscan.NewPostgresRepository(d.DB)
		postRepo = community.NewPostgresRepository(d.DB)
		billingRepo = billing.NewPostgresRepository(d.DB)
	} else {
		identityRepo = identity.NewMemoryRepository()
		oracleRepo = oracle.NewMemoryRepository()
		tarotRepo = tarot.NewMemoryRepository()
		bioscanRepo = bioscan.NewMemoryRepository()
		postRepo = community.NewMemoryRepository()
		billingRepo = billing.NewMemoryRepository()
	}

	// Connectors
	var provider oracle.Provider = oracle.StaticProvider{}
	if d.Cfg.OracleAPIKey != "" {
		provider = oracle.NewHTTPProvider(d.Cfg.OracleBaseURL, d.Cfg.OracleAPIKey)
	}
	var processor billing.Processor = &billing.StaticProcessor{}
	if d.Cfg.StripeAPIKey != "" {
		processor = billing.NewStripeProcessor(d.Cfg.StripeAPIKey)
	}
	notifier := notification.NewLoggerNotifier(d.Logger)

	// Services and handlers
	identitySvc := identity.NewService(identityRepo)
	oracleSvc := oracle.NewService(provider, oracleRepo, identityRepo)
	tarotSvc := tarot.NewService(tarotRepo, provider, identityRepo, nil)
	soulprintSvc := soulprint.NewService(identityRepo, nil)
	bioscanSvc := bioscan.NewService(bioscanRepo, provider, nil)
	communitySvc := community.NewService(postRepo)
	billingSvc := billing.NewService(billingRepo, processor, identitySvc, notifier)

	authHandler := auth.NewHandler(d.Cfg, identitySvc)
	oracleHandler := oracle.NewHandler(oracleSvc)
	tarotHandler := tarot.NewHandler(tarotSvc)
	soulprintHandler := soulprint.NewHandler(soulprintSvc, identitySvc)
	bioscanHandler := bioscan.NewHandler(bioscanSvc)
	communityHandler := community.NewHandler(communitySvc)
	billingHandler := billing.NewHandler(d.Cfg, billingSvc)
	libraryHandler := library.NewHandler()

	// API routes
	api := app.Group("/api")

	RegisterHealthRoutes(api, d)

	// Public routes
	rateLimiter := middleware.LoginRateLimit(d.Cache, 5)
	RegisterAuthRoutes(api, authHandler, rateLimiter)
	api.Get("/community/feed", communityHandler.Feed)
	api.Get("/database/search", libraryHandler.Search)
	api.Post("/webhook/stripe", billingHandler.Webhook)

	// Protected routes
	jwtmw := middleware.BearerAuth(d.Cfg, identityRepo)
	protected := api.Group("", jwtmw)
	protected.Get("/auth/me", authHandler.Me)
	RegisterProfileRoutes(protected, soulprintHandler)
	RegisterOracleRoutes(protected, oracleHandler)
	RegisterTarotRoutes(protected, tarotHandler)
	RegisterBioScanRoutes(protected, bioscanHandler)
	protected.Post("/community/post", communityHandler.CreatePost)
	RegisterPaymentRoutes(protected, billingHandler)

	return nil
}

func isDev(env string) bool {
	switch strings.ToLower(env) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}
