package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hamzahq/turath/config"
	"github.com/hamzahq/turath/database"
	_ "github.com/hamzahq/turath/docs" // Swagger docs - auto-generated
	"github.com/hamzahq/turath/internal/controller"
	"github.com/hamzahq/turath/internal/logger"
	"github.com/hamzahq/turath/internal/middleware"
	"github.com/hamzahq/turath/internal/model"
	"github.com/hamzahq/turath/internal/repository"
	"github.com/hamzahq/turath/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Turath API
// @version 1.0
// @description REST API for Saudi cultural trivia content, quiz scoring and per-user performance statistics.
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewSubmissionRepository,
			repository.NewUserRepository,
		),

		fx.Provide(
			service.NewQuestionService,
			service.NewSubmissionService,
			service.NewStatsService,
			service.NewUserService,
			service.NewLoaderService,
		),

		fx.Provide(
			controller.NewQuestionController,
			controller.NewUserController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(LoadQuestionBank),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	questionCtrl *controller.QuestionController,
	userCtrl *controller.UserController,
) {
	api := router.Group("/api")
	{
		api.GET("/info", questionCtrl.GetInfo)
		api.GET("/quiz", questionCtrl.GetQuizzes)

		authed := api.Group("")
		authed.Use(middleware.RequireIdentity(cfg.Auth.JWTSecret))
		{
			authed.POST("/quiz-submissions", questionCtrl.SubmitQuiz)
			authed.GET("/quiz-submissions", questionCtrl.GetSubmissions)
			authed.GET("/users/me", userCtrl.GetCurrentUser)
			authed.GET("/users/me/stats", userCtrl.GetUserStats)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Turath API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Question{},
		&model.Submission{},
		&model.SubmissionAnswer{},
		&model.User{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

func LoadQuestionBank(cfg *config.Config, loader service.LoaderService) error {
	if !cfg.Loader.Enabled {
		log.Info().Msg("CSV loading disabled, skipping question bank import")
		return nil
	}
	_, err := loader.LoadDirectory(cfg.Loader.Dir)
	if err != nil {
		// Startup should not fail because seed files are absent.
		log.Error().Err(err).Msg("Question bank import failed")
	}
	return nil
}
