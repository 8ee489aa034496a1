package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	_ "github.com/rafabene/gymdir-backend/docs"
	"github.com/rafabene/gymdir-backend/internal/handlers/dto"
	httphandlers "github.com/rafabene/gymdir-backend/internal/handlers/http"
	"github.com/rafabene/gymdir-backend/internal/handlers/middleware"
	"github.com/rafabene/gymdir-backend/internal/infrastructure/auth"
	"github.com/rafabene/gymdir-backend/internal/infrastructure/config"
	"github.com/rafabene/gymdir-backend/internal/infrastructure/i18n"
	"github.com/rafabene/gymdir-backend/internal/infrastructure/logging"
	"github.com/rafabene/gymdir-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/gymdir-backend/internal/services"
)

//	@title			GymDir API
//	@version		1.0
//	@description	Diretório de academias, máquinas e treinadores

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting gymdir backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewEmbeddedService("en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	gymRepo := postgres.NewGymRepository(db)
	machineRepo := postgres.NewMachineRepository(db)
	trainerRepo := postgres.NewTrainerRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar autenticação
	githubAuth := auth.NewGitHub(&cfg.OAuth)
	tokenService := auth.NewTokenService(&cfg.JWT)
	if !githubAuth.Enabled() {
		logger.Warn("github oauth disabled, no client credentials configured")
	}

	// Inicializar services
	authService := services.NewAuthService(userRepo, tokenService, logger)
	userService := services.NewUserService(userRepo, logger)
	gymService := services.NewGymService(gymRepo, machineRepo, uow, logger)
	machineService := services.NewMachineService(machineRepo, logger)
	trainerService := services.NewTrainerService(trainerRepo, userRepo, uow, logger)

	// Inicializar handlers
	handlers := httphandlers.Handlers{
		Auth:    httphandlers.NewAuthHandler(authService, userService, githubAuth),
		Gym:     httphandlers.NewGymHandler(gymService),
		Machine: httphandlers.NewMachineHandler(machineService),
		Trainer: httphandlers.NewTrainerHandler(trainerService),
		User:    httphandlers.NewUserHandler(userService),
	}
	authMiddleware := middleware.NewAuthMiddleware(userRepo, tokenService)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	dto.RegisterCustomValidators()

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Sessão por cookie
	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(cfg.Session.CookieName, store))

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Rotas
	httphandlers.RegisterRoutes(router, handlers, authMiddleware)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
