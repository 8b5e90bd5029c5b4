package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"

	"github.com/mfrancor/characters-api/auth"
	"github.com/mfrancor/characters-api/config"
	"github.com/mfrancor/characters-api/database"
	"github.com/mfrancor/characters-api/logger"
	"github.com/mfrancor/characters-api/server"
	"github.com/mfrancor/characters-api/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewDefault("characters-api").Fatal("Failed to load configuration", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Init(cfg.Logging)
	log := logger.New(&cfg.Logging, cfg.Base.Name)
	logger.SetGlobalLogger(log)

	if err := run(cfg, log); err != nil {
		log.Fatal("Service exited with error", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewWithContext(ctx, cfg.Database, log, sqlite.Open(cfg.Database.Path))
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.AutoMigrate(&user.User{}); err != nil {
		return err
	}

	hasher := auth.NewBcryptHasher(auth.WithCost(cfg.Auth.BcryptCost))
	codec, err := auth.NewTokenCodec(cfg.Auth)
	if err != nil {
		return err
	}

	users := user.NewService(user.NewRepository(db), hasher, log)
	authSvc := auth.NewService(users, hasher, codec, log)
	guard := auth.NewGuard(codec, log)

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()

	engine := srv.GinEngine()
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": cfg.Base.Version})
	})

	api := engine.Group("/api")
	auth.NewHandler(authSvc).Register(api)
	user.NewHandler(users).Register(api, guard.Run())

	if err := srv.Start(ctx); err != nil {
		return err
	}

	log.Info("characters-api is ready", map[string]interface{}{
		"addr":        srv.Addr(),
		"environment": cfg.Base.Environment,
	})

	<-ctx.Done()
	return srv.Stop(context.Background())
}
