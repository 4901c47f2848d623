package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/promptcraft/templates/internal/handlers"
	"github.com/promptcraft/templates/internal/jwt"
	"github.com/promptcraft/templates/internal/logger"
	"github.com/promptcraft/templates/internal/middlewares"
	"github.com/promptcraft/templates/internal/migrations"
	"github.com/promptcraft/templates/internal/repositories"
	"github.com/promptcraft/templates/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/promptcraft/templates/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title prompt-templates API
// @version 1.0.0
// @description Service for managing and sharing prompt templates
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns, migrationsDir,
		redisHost, redisPort, redisDB, redisPassword,
		userCacheExpSecond,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtAccessExpSecond, jwtRefreshExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns, migrationsDir,
		redisHost, redisPort, redisDB, redisPassword,
		userCacheExpSecond,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtAccessExpSecond, jwtRefreshExpSecond,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int, migrationsDir string,
	redisHost string, redisPort, redisDB int, redisPassword string,
	userCacheExpSecond int,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtAccessExpSecond, jwtRefreshExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "templates")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}
	migrationsDir = getEnv("MIGRATIONS_DIR", "migrations")

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if userCacheExpSecond, err = strconv.Atoi(getEnv("USER_CACHE_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Kafka config
	kafkaAddr = getEnv("KAFKA_ADDR", "localhost:9092")
	kafkaTopic = getEnv("KAFKA_TOPIC", "template-usage")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtAccessExpSecond, err = strconv.Atoi(getEnv("JWT_ACCESS_EXP_SECOND", "900")); err != nil {
		return
	}
	if jwtRefreshExpSecond, err = strconv.Atoi(getEnv("JWT_REFRESH_EXP_SECOND", "604800")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int, migrationsDir string,
	redisHost string, redisPort, redisDB int, redisPassword string,
	userCacheExpSecond int,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtAccessExpSecond, jwtRefreshExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply migrations
	if err := migrations.Run(db.DB, migrationsDir); err != nil {
		logger.Log.Fatal("Migrations failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for usage events
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(kafkaAddr),
		Topic:    kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey,
		time.Duration(jwtAccessExpSecond)*time.Second,
		time.Duration(jwtRefreshExpSecond)*time.Second,
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	userCacheRepo := repositories.NewUserCacheRepository(rdb, time.Duration(userCacheExpSecond)*time.Second)
	templateReadRepo := repositories.NewTemplateReadRepository(db, middlewares.GetTxFromContext)
	templateWriteRepo := repositories.NewTemplateWriteRepository(db, middlewares.GetTxFromContext)
	favoriteReadRepo := repositories.NewFavoriteReadRepository(db)
	favoriteWriteRepo := repositories.NewFavoriteWriteRepository(db, middlewares.GetTxFromContext)
	statsWriteRepo := repositories.NewUsageStatsWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	templateService := services.NewTemplateService(
		templateReadRepo, templateWriteRepo, userReadRepo, userCacheRepo, statsWriteRepo, kafkaWriter)
	favoriteService := services.NewFavoriteService(
		favoriteReadRepo, favoriteWriteRepo, templateWriteRepo, templateReadRepo, userReadRepo)
	userService := services.NewUserService(userReadRepo)

	// Initialize handlers
	signupHandler := handlers.NewSignupHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	listPublicHandler := handlers.NewListPublicTemplatesHandler(templateService)
	searchHandler := handlers.NewSearchTemplatesHandler(templateService)
	categoryHandler := handlers.NewListTemplatesByCategoryHandler(templateService)
	forDevsHandler := handlers.NewListTemplatesByForDevsHandler(templateService)
	popularHandler := handlers.NewListPopularTemplatesHandler(templateService)
	getHandler := handlers.NewGetTemplateHandler(templateService)
	createHandler := handlers.NewCreateTemplateHandler(templateService)
	updateHandler := handlers.NewUpdateTemplateHandler(templateService)
	deleteHandler := handlers.NewDeleteTemplateHandler(templateService)
	useHandler := handlers.NewUseTemplateHandler(templateService)
	favoriteHandler := handlers.NewFavoriteTemplateHandler(favoriteService)
	unfavoriteHandler := handlers.NewUnfavoriteTemplateHandler(favoriteService)
	meHandler := handlers.NewMeHandler(userService)
	meFavoritesHandler := handlers.NewMeFavoritesHandler(favoriteService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware())

	// Public routes
	r.Post("/api/auth/signup", signupHandler)
	r.Post("/api/auth/login", loginHandler)

	// Routes that work with or without a token. An attached token
	// annotates listings with isFavorited and feeds usage stats.
	r.Group(func(r chi.Router) {
		r.Use(middlewares.OptionalAuthMiddleware(jwtSvc))
		r.Get("/api/templates/public", listPublicHandler)
		r.Get("/api/templates/public/search", searchHandler)
		r.Get("/api/templates/public/category/{category}", categoryHandler)
		r.Get("/api/templates/public/forDevs/{forDevs}", forDevsHandler)
		r.Get("/api/templates/public/popular", popularHandler)
		r.Get("/api/templates/{id}", getHandler)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))
			r.Post("/api/templates/{id}/use", useHandler)
		})
	})

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtSvc))
		r.Get("/api/users/me", meHandler)
		r.Get("/api/users/me/favorites", meFavoritesHandler)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))
			r.Post("/api/templates", createHandler)
			r.Put("/api/templates/{id}", updateHandler)
			r.Delete("/api/templates/{id}", deleteHandler)
			r.Post("/api/templates/{id}/favorite", favoriteHandler)
			r.Delete("/api/templates/{id}/favorite", unfavoriteHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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
