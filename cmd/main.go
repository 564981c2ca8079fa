package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"gameworth/internal/config"
	"gameworth/internal/facades"
	"gameworth/internal/handlers"
	"gameworth/internal/jwt"
	"gameworth/internal/logger"
	"gameworth/internal/middlewares"
	"gameworth/internal/repositories"
	"gameworth/internal/services"

	_ "gameworth/docs"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const ownedGamesCacheTTL = 5 * time.Minute

// @title gameworth API
// @version 1.0.0
// @description Searchable game catalog with accounts and Steam owned-games proxy
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, Redis, Kafka and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpen)
	db.SetMaxIdleConns(cfg.PostgresMaxIdle)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for user.registered events, optional
	var events services.KafkaWriter
	if cfg.KafkaAddr != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaAddr),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		events = kw
		logger.Log.Infof("Kafka events enabled on %s topic %s", cfg.KafkaAddr, cfg.KafkaTopic)
	}

	// Initialize JWT service
	tokens := jwt.New(cfg.JWTSecretKey, time.Duration(cfg.JWTExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	gameRepo := repositories.NewGameReadRepository(db)
	ownedCache := repositories.NewOwnedGamesCacheRepository(rdb, ownedGamesCacheTTL)

	// Initialize facades
	steam := facades.NewSteamFacade(cfg.SteamAPIBaseURL, cfg.SteamAPIKey, nil)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, events)
	gamesService := services.NewGamesService(gameRepo)
	ownedService := services.NewOwnedGamesService(steam, ownedCache, cfg.SteamID)

	// Setup router
	r := chi.NewRouter()
	r.Use(middlewares.RecoverMiddleware)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.NotFound(handlers.NotFoundHandler())

	// Static pages
	r.Get("/", handlers.NewStaticPageHandler("web/login.html"))
	r.Get("/dashboard", handlers.NewStaticPageHandler("web/dashboard.html"))
	r.Get("/signup", handlers.NewStaticPageHandler("web/signup.html"))

	// Public API
	r.Post("/api/login", handlers.NewLoginHandler(authService))
	r.Post("/api/signup", handlers.NewSignupHandler(authService))
	r.Get("/api/games", handlers.NewGamesListHandler(gamesService))
	r.Get("/api/games/stats", handlers.NewStatsHandler(gamesService))
	r.Get("/api/games/steam/{appid}", handlers.NewGameByAppIDHandler(gamesService))
	r.Get("/api/games/{id}", handlers.NewGameByIDHandler(gamesService))
	r.Get("/api/health", handlers.NewHealthHandler())

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens))
		r.Get("/api/owned-games", handlers.NewOwnedGamesHandler(ownedService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
