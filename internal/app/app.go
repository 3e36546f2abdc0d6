package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pylearn_backend/internal/config"
	"pylearn_backend/internal/controller"
	"pylearn_backend/internal/repository"
	"pylearn_backend/internal/service"
	"pylearn_backend/pkg/database"
	"pylearn_backend/pkg/logger"
	"pylearn_backend/pkg/monitoring"
	"pylearn_backend/pkg/security"
	"pylearn_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
}

type repositories struct {
	exercise   *repository.ExerciseRepository
	submission *repository.SubmissionRepository
}

type services struct {
	assistant *service.AssistantClient
	lesson    *service.LessonService
	answer    *service.AnswerCheckingService
	exercise  *service.ExerciseService
}

type controllers struct {
	health   *controller.HealthController
	lesson   *controller.LessonController
	exercise *controller.ExerciseController
	debug    *controller.DebugController
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	if cfg.Assistant.AssistantID == "" {
		// Generation and answer checking will fail fast until an assistant
		// ID is configured; the exercise catalog still works.
		logger.Log.Warn("no assistant ID configured")
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	svcs := app.initServices(repos, cfg)
	ctrls := app.initControllers(svcs)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("pylearn-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, ctrls)

	return app
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		exercise:   repository.NewExerciseRepository(db),
		submission: repository.NewSubmissionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.assistant = service.NewAssistantClient(cfg.Assistant)
	s.lesson = service.NewLessonService(s.assistant)
	s.answer = service.NewAnswerCheckingService(s.assistant)
	s.exercise = service.NewExerciseService(repos.exercise, repos.submission)

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		health:   controller.NewHealthController(),
		lesson:   controller.NewLessonController(s.lesson, s.answer),
		exercise: controller.NewExerciseController(s.exercise),
		debug:    controller.NewDebugController(s.assistant),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
