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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-levelup/internal/docs"
	"github.com/sbilibin2017/gw-levelup/internal/handlers"
	"github.com/sbilibin2017/gw-levelup/internal/jwt"
	"github.com/sbilibin2017/gw-levelup/internal/logger"
	"github.com/sbilibin2017/gw-levelup/internal/metrics"
	"github.com/sbilibin2017/gw-levelup/internal/middlewares"
	"github.com/sbilibin2017/gw-levelup/internal/migrations"
	"github.com/sbilibin2017/gw-levelup/internal/models"
	"github.com/sbilibin2017/gw-levelup/internal/repositories"
	"github.com/sbilibin2017/gw-levelup/internal/services"
	"github.com/sbilibin2017/gw-levelup/internal/transaction"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int
	txTimeout      time.Duration

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int

	kafkaBrokers []string
	kafkaTopic   string

	jwtSecretKey string

	weeklySchedule string
	weeklyLockTTL  time.Duration
}

// @title gw-levelup API
// @version 1.0.0
// @description Progression engine: XP and levels, daily nutrition, activity feed and weekly summaries
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
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

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, JWT and scheduler configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		n, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return n, nil
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}
	txTimeoutSecond, err := getInt("DB_TX_TIMEOUT_SECOND", "5")
	if err != nil {
		return
	}
	cfg.txTimeout = time.Duration(txTimeoutSecond) * time.Second

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.redisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.redisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Kafka config, empty brokers disable event publishing
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.kafkaBrokers = strings.Split(brokers, ",")
	}
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "levelup.xp_granted")

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")

	// Scheduler config
	cfg.weeklySchedule = getEnv("WEEKLY_SUMMARY_SCHEDULE", "0 9 * * 1")
	lockTTLSecond, err := getInt("WEEKLY_SUMMARY_LOCK_TTL_SECOND", "604800")
	if err != nil {
		return
	}
	cfg.weeklyLockTTL = time.Duration(lockTTLSecond) * time.Second

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka writer, scheduler and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.pgHost, "port", cfg.pgPort, "db", cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)

	if err := migrations.Up(db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for xp_granted events
	var kafkaWriter services.KafkaWriter
	if len(cfg.kafkaBrokers) > 0 {
		w := newKafkaWriter(cfg.kafkaBrokers, cfg.kafkaTopic)
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.kafkaBrokers, "topic", cfg.kafkaTopic)
	} else {
		logger.Log.Warn("KAFKA_BROKERS not set, xp events will not be published")
	}

	// Initialize JWT validator
	tokener := jwt.New(cfg.jwtSecretKey)

	// Initialize repositories
	txManager := transaction.NewManager(db, cfg.txTimeout)
	txGetter := transaction.GetTxFromContext

	profileReadRepo := repositories.NewProfileReadRepository(db)
	profileWriteRepo := repositories.NewProfileWriteRepository(db, txGetter)
	xpLogWriteRepo := repositories.NewXPLogWriteRepository(db, txGetter)
	nutritionReadRepo := repositories.NewNutritionReadRepository(db)
	nutritionWriteRepo := repositories.NewNutritionWriteRepository(db, txGetter)
	feedReadRepo := repositories.NewFeedReadRepository(db)
	feedWriteRepo := repositories.NewFeedWriteRepository(db, txGetter)
	scanReadRepo := repositories.NewScanReadRepository(db)
	scanWriteRepo := repositories.NewScanWriteRepository(db, txGetter)
	xpLogReadRepo := repositories.NewXPLogReadRepository(db)
	userReadRepo := repositories.NewUserReadRepository(db)
	jobLockRepo := repositories.NewJobLockRepository(rdb)

	// Initialize services
	levelingService := services.NewLevelingService(txManager, profileWriteRepo, xpLogWriteRepo, feedWriteRepo, kafkaWriter)
	nutritionService := services.NewNutritionService(txManager, nutritionWriteRepo)
	feedService := services.NewFeedService(feedWriteRepo, feedReadRepo)
	scanService := services.NewScanService(txManager, scanWriteRepo, levelingService, nutritionService, feedService)
	planService := services.NewPlanService(txManager, levelingService, feedService)
	dashboardService := services.NewDashboardService(profileReadRepo, nutritionReadRepo, scanReadRepo, feedReadRepo, xpLogReadRepo)
	weeklyService := services.NewWeeklySummaryService(userReadRepo, scanReadRepo, feedService, jobLockRepo, cfg.weeklyLockTTL)

	// Schedule the weekly summary
	scheduler := cron.New()
	if err := scheduleWeeklySummary(ctx, scheduler, cfg.weeklySchedule, weeklyService.Run); err != nil {
		return err
	}
	scheduler.Start()
	defer func() { <-scheduler.Stop().Done() }()

	// Setup router
	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort)

	r := newRouter(routerDeps{
		tokener:   tokener,
		pinger:    db,
		scan:      handlers.NewScanHandler(scanService),
		plan:      handlers.NewPlanHandler(planService),
		feed:      handlers.NewFeedHandler(feedService),
		dashboard: handlers.NewDashboardHandler(dashboardService),
		xpAudit:   handlers.NewXPAuditHandler(dashboardService),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
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

func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchSize:              1,
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
	}
}

type routerDeps struct {
	tokener   middlewares.Tokener
	pinger    handlers.Pinger
	scan      http.HandlerFunc
	plan      http.HandlerFunc
	feed      http.HandlerFunc
	dashboard http.HandlerFunc
	xpAudit   http.HandlerFunc
}

// newRouter mounts public and JWT-protected routes.
func newRouter(d routerDeps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(metrics.InstrumentHandler)

	// Public routes
	r.Get("/api/health", handlers.NewHealthHandler(d.pinger))
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(d.tokener))
		r.Post("/api/scan/{kind}", d.scan)
		r.Post("/api/ai/generate-plan", d.plan)
		r.Get("/api/feed", d.feed)
		r.Get("/api/dashboard", d.dashboard)
		r.Get("/api/xp/audit", d.xpAudit)
	})

	return r
}

// scheduleWeeklySummary registers job on c under the cron spec.
func scheduleWeeklySummary(ctx context.Context, c *cron.Cron, spec string, job func(context.Context) (*models.WeeklyReport, error)) error {
	_, err := c.AddFunc(spec, func() {
		report, err := job(ctx)
		if err != nil {
			logger.Log.Errorw("weekly summary failed", "error", err)
			return
		}
		if report.Skipped {
			return
		}
		logger.Log.Infow("weekly summary finished", "published", report.Published, "failed", report.Failed)
	})
	if err != nil {
		return fmt.Errorf("invalid WEEKLY_SUMMARY_SCHEDULE %q: %w", spec, err)
	}
	return nil
}
