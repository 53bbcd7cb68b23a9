package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/foodandtravelmag/mag-backend/internal/config"
	"github.com/foodandtravelmag/mag-backend/internal/handler"
	"github.com/foodandtravelmag/mag-backend/internal/middleware"
	"github.com/foodandtravelmag/mag-backend/internal/migration"
	"github.com/foodandtravelmag/mag-backend/internal/repository"
	"github.com/foodandtravelmag/mag-backend/internal/routes"
	"github.com/foodandtravelmag/mag-backend/internal/service"
	pkgcache "github.com/foodandtravelmag/mag-backend/pkg/cache"
	"github.com/foodandtravelmag/mag-backend/pkg/jwt"
	pkglogger "github.com/foodandtravelmag/mag-backend/pkg/logger"
	"github.com/foodandtravelmag/mag-backend/pkg/mailer"
	pkgredis "github.com/foodandtravelmag/mag-backend/pkg/redis"
	pkgstorage "github.com/foodandtravelmag/mag-backend/pkg/storage"

	_ "github.com/foodandtravelmag/mag-backend/docs"
)

// @title Food & Travel Magazine API
// @version 1.0
// @description Community backend: categories, posts, votes, magazine issues
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.Init(env)
	log := pkglogger.GetLogger()

	cfg, err := config.Load(fmt.Sprintf("configs/config.%s.yaml", env))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := openDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := migration.Run(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	redisClient, err := pkgredis.NewClient(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PoolSize)
	if err != nil {
		// Redis is an accelerator here, not a dependency
		log.Warn().Err(err).Msg("redis unavailable, running without cache and rate limiting")
		redisClient = nil
	}
	cacheService := pkgcache.NewService(redisClient)

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	uploader := buildUploader(cfg)
	mail := buildMailer(cfg)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	moderatorRepo := repository.NewModeratorRepository(db)
	followRepo := repository.NewFollowRepository(db)
	postRepo := repository.NewPostRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	savedPostRepo := repository.NewSavedPostRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	magazineRepo := repository.NewMagazineRepository(db)

	// Services
	settingsService := service.NewSettingsService(settingRepo, cacheService)
	authService := service.NewAuthService(userRepo, sessionRepo, moderatorRepo, cacheService, jwtManager, cfg.App.OwnerEmail)
	postService := service.NewPostService(postRepo, categoryRepo, userRepo, moderatorRepo, followRepo,
		settingsService, uploader, mail, cfg.App.OwnerEmail, cfg.App.SiteURL, nil)
	voteService := service.NewVoteService(voteRepo, postRepo, userRepo, settingsService)
	categoryService := service.NewCategoryService(categoryRepo, sectionRepo)
	announcementService := service.NewAnnouncementService(announcementRepo)
	saveService := service.NewSaveService(savedPostRepo, postRepo, userRepo)
	followService := service.NewFollowService(followRepo, categoryRepo)
	magazineService := service.NewMagazineService(magazineRepo, uploader)
	adminService := service.NewAdminService(userRepo, sessionRepo, moderatorRepo, postRepo, userRepo,
		sectionRepo, categoryRepo, announcementRepo)

	// Router
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(cors.New(corsConfig(cfg)))

	routes.Setup(router, routes.Handlers{
		Auth:         handler.NewAuthHandler(authService, !cfg.IsDevelopment()),
		Post:         handler.NewPostHandler(postService),
		Vote:         handler.NewVoteHandler(voteService),
		Category:     handler.NewCategoryHandler(categoryService),
		Announcement: handler.NewAnnouncementHandler(announcementService),
		Save:         handler.NewSaveHandler(saveService),
		Follow:       handler.NewFollowHandler(followService),
		Magazine:     handler.NewMagazineHandler(magazineService),
		Admin:        handler.NewAdminHandler(adminService, settingsService),
	}, authService, jwtManager, redisClient, cfg)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Str("env", cfg.App.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	gormLog := gormlogger.Default.LogMode(gormlogger.Warn)
	if cfg.IsDevelopment() {
		gormLog = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return db, nil
}

// buildUploader assembles the storage chain: S3 first when enabled, FTP as a
// fallback when configured, local disk always last.
func buildUploader(cfg *config.Config) pkgstorage.Uploader {
	log := pkglogger.GetLogger()
	var chain pkgstorage.Chain

	if cfg.Storage.S3Enabled {
		s3Client, err := pkgstorage.NewS3Client(cfg.Storage.S3)
		if err != nil {
			log.Warn().Err(err).Msg("s3 client init failed, skipping backend")
		} else {
			chain = append(chain, s3Client)
		}
	}
	if cfg.Storage.FTP.Configured() {
		chain = append(chain, pkgstorage.NewFTPUploader(cfg.Storage.FTP))
	}
	chain = append(chain, pkgstorage.NewLocalUploader(cfg.Storage.LocalDir, cfg.App.SiteURL))

	return chain
}

func buildMailer(cfg *config.Config) *mailer.Mailer {
	m := mailer.New(cfg.SMTP)
	if m == nil {
		pkglogger.GetLogger().Info().Msg("smtp not configured, follower notifications disabled")
	}
	return m
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	if cfg.CORS.AllowOrigins == "" {
		corsCfg.AllowOrigins = []string{cfg.App.SiteURL}
	} else {
		corsCfg.AllowOrigins = strings.Split(cfg.CORS.AllowOrigins, ",")
	}
	corsCfg.AllowCredentials = true
	corsCfg.AddAllowHeaders("Authorization")
	return corsCfg
}
