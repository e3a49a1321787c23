package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"contra-api/internal/app"
	"contra-api/internal/config"
	"contra-api/internal/database"
	"contra-api/internal/logger"
	"contra-api/internal/users/cache"
	"contra-api/internal/users/db"
	users "contra-api/internal/users/service"
	"contra-api/internal/users/user_api"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()

	log := logger.NewLogger(cfg.LogDir, cfg.ServiceName)
	log.SetLevel(logger.ParseLevel(cfg.LogLevel))

	if envErr != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		log.Info("CONFIG", "Loaded environment variables from .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	if err := run(ctx, cfg, log); err != nil {
		stop()
		log.Fatal("APP", err.Error())
	}
	stop()
	log.Close()
}

// run wires the service together and serves until ctx is cancelled. Every
// resource it opens is released before it returns.
func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	log.Info("APP", "Starting Contra API initialization")

	bunDB, err := database.Connect(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer bunDB.Close()

	userDB := &db.DB{Bun: bunDB}
	var store users.UserDBLayer = userDB

	if cfg.Redis.Enabled() {
		redisClient, err := cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn("REDIS", fmt.Sprintf("User cache disabled: %v", err))
		} else {
			defer redisClient.Close()
			store = cache.NewCachedUserDB(userDB, cache.NewRedisUserCache(redisClient, cfg.Redis.TTL), log)
			log.Info("REDIS", fmt.Sprintf("✅ User cache enabled at %s (ttl %s)", cfg.Redis.Addr, cfg.Redis.TTL))
		}
	}

	userHandler := user_api.NewHandler(users.NewUserService(store), log)

	log.Info("HTTP", "Setting up router and middleware")
	router := app.NewRouter(app.Dependencies{
		Logger:         log,
		UserHandler:    userHandler,
		Store:          userDB,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})
	log.Info("ROUTER", "User routes registered under /api/users")

	server := app.NewServer(cfg.Server, router)
	return app.Run(ctx, server, cfg.Server, log)
}
