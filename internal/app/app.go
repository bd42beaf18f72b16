package app

import (
	"coursecraft_backend/internal/config"
	"coursecraft_backend/internal/controller"
	"coursecraft_backend/internal/repository"
	"coursecraft_backend/internal/service"
	"coursecraft_backend/internal/util"
	"coursecraft_backend/pkg/database"
	"coursecraft_backend/pkg/logger"
	"coursecraft_backend/pkg/monitoring"
	"coursecraft_backend/pkg/security"
	"coursecraft_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user       *repository.UserRepository
	course     *repository.CourseRepository
	section    *repository.SectionRepository
	page       *repository.PageRepository
	block      *repository.BlockRepository
	enrollment *repository.EnrollmentRepository
	answer     *repository.AnswerRepository
	videoPost  *repository.VideoPostRepository
}

type services struct {
	auth       *service.AuthService
	user       *service.UserService
	storage    *service.StorageService
	course     *service.CourseService
	outline    *service.OutlineService
	enrollment *service.EnrollmentService
	answer     *service.AnswerService
	media      *service.MediaService
}

type controllers struct {
	auth       *controller.AuthController
	user       *controller.UserController
	course     *controller.CourseController
	section    *controller.SectionController
	page       *controller.PageController
	block      *controller.BlockController
	enrollment *controller.EnrollmentController
	answer     *controller.AnswerController
	videoPost  *controller.VideoPostController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		course:     repository.NewCourseRepository(db),
		section:    repository.NewSectionRepository(db),
		page:       repository.NewPageRepository(db),
		block:      repository.NewBlockRepository(db),
		enrollment: repository.NewEnrollmentRepository(db),
		answer:     repository.NewAnswerRepository(db),
		videoPost:  repository.NewVideoPostRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.course = service.NewCourseService(repos.course, repos.enrollment, rdb)
	s.outline = service.NewOutlineService(repos.section, repos.page, repos.block, repos.course, repos.answer, repos.enrollment, rdb)
	s.enrollment = service.NewEnrollmentService(repos.enrollment, repos.course)
	s.answer = service.NewAnswerService(repos.answer, repos.block)
	s.media = service.NewMediaService(repos.videoPost, repos.block, s.storage)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth, s.user),
		user:       controller.NewUserController(s.user),
		course:     controller.NewCourseController(s.course, s.outline),
		section:    controller.NewSectionController(s.outline),
		page:       controller.NewPageController(s.outline),
		block:      controller.NewBlockController(s.outline),
		enrollment: controller.NewEnrollmentController(s.enrollment),
		answer:     controller.NewAnswerController(s.answer),
		videoPost:  controller.NewVideoPostController(s.media),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
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

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// The outline cache is an optimization; the service runs without it.
		logger.Log.Warn("Redis unavailable, outline cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("coursecraft", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	}
	return gin.DebugMode
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
