package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"edu-perfil/internal/adapter"
	"edu-perfil/internal/adapter/textgen"
	"edu-perfil/internal/cache"
	"edu-perfil/internal/catalog"
	"edu-perfil/internal/config"
	"edu-perfil/internal/database"
	"edu-perfil/internal/domain"
	"edu-perfil/internal/exercisegen"
	"edu-perfil/internal/handler"
	"edu-perfil/internal/logger"
	"edu-perfil/internal/middleware"
	"edu-perfil/internal/repository"
	"edu-perfil/internal/retry"
	"edu-perfil/internal/service"
	"edu-perfil/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func newCache(cfg *config.Config, appLogger *zap.Logger) domain.Cache {
	switch cfg.Cache.Driver {
	case "redis":
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
		return adapter.NewRedisCacheAdapter(redisClient)
	case "memory", "":
		appLogger.Info("Using in-process profile cache")
		return adapter.NewMemoryCache(nil)
	default:
		appLogger.Fatal("Unsupported cache driver", zap.String("driver", cfg.Cache.Driver))
		return nil
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXDB(cfg.DB, cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	forms, err := catalog.Load()
	if err != nil {
		appLogger.Fatal("Failed to load survey catalog", zap.Error(err))
	}

	// Repositories
	studentRepository := repository.NewStudentRepository(db)
	profileRepository := repository.NewProfileRepository(db)
	exerciseRepository := repository.NewExerciseRepository(db)
	responseRepository := repository.NewResponseRepository(db)
	sessionRepository := repository.NewSessionRepository(db)
	statsRepository := repository.NewStatsRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db, appLogger)

	cacheAdapter := newCache(cfg, appLogger)
	profileCache := service.NewProfileCache(cacheAdapter, cfg.ParseTTLStringOrDefault(cfg.Cache.ProfileTTL, 10*time.Minute), appLogger)

	// Text generation
	textGenerator, err := textgen.New(context.Background(), cfg.LLM, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create text generator", zap.Error(err))
	}
	appLogger.Info("Text generator initialized",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", textGenerator.Model()))

	parser, err := exercisegen.NewParser()
	if err != nil {
		appLogger.Fatal("Failed to compile exercise schema", zap.Error(err))
	}
	generator := exercisegen.NewGenerator(textGenerator, parser, retry.New(cfg.Exercise.MaxAttempts, cfg.Exercise.BackoffStep), appLogger)

	// Services
	profileService := service.NewProfileService(studentRepository, profileRepository, txManager, profileCache, time.Now, appLogger)
	exerciseService := service.NewExerciseService(profileService, generator, exerciseRepository, cfg.Exercise, appLogger)
	answerService := service.NewAnswerService(exerciseRepository, responseRepository, sessionRepository, txManager, time.Now, appLogger)
	sessionService := service.NewSessionService(sessionRepository, time.Now, appLogger)
	statsService := service.NewStatsService(statsRepository, appLogger)

	auth := middleware.Noop()
	if cfg.Auth.JWTSecret != "" {
		authService, err := service.NewAuthService(cfg.Auth.JWTSecret, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to create AuthService", zap.Error(err))
		}
		auth = middleware.Protected(authService)
		appLogger.Info("Bearer token authentication enabled")
	} else {
		appLogger.Warn("auth.jwt_secret is empty, API routes are unauthenticated")
	}

	// Handlers
	validator := validation.NewValidator()
	handlers := handler.Handlers{
		Profile:  handler.NewProfileHandler(profileService, validator),
		Exercise: handler.NewExerciseHandler(exerciseService, validator),
		Answer:   handler.NewAnswerHandler(answerService, sessionService, validator),
		Stats:    handler.NewStatsHandler(statsService),
		Catalog:  handler.NewCatalogHandler(forms),
		Ping:     cacheAdapter.Ping,
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "authorization, x-client-info, apikey, content-type",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	handler.SetupRoutes(app, handlers, auth, middleware.NewValidationMiddleware(validator))

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
