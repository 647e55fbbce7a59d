package di

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"todo-user-service/cmd/api/infrastructure"
	"todo-user-service/internal/adapter/cache"
	"todo-user-service/internal/adapter/db/postgres"
	ginhandler "todo-user-service/internal/adapter/gin/handler"
	ginrouter "todo-user-service/internal/adapter/gin/router"
	"todo-user-service/internal/adapter/repository/cached"
	"todo-user-service/internal/config"
	"todo-user-service/internal/usecase/todo"
	"todo-user-service/internal/usecase/user"
	redisclient "todo-user-service/pkg/redis"
	"todo-user-service/pkg/security"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client
	UserUC      user.Usecase
	TodoUC      todo.Usecase
	Router      *gin.Engine
}

// NewContainer creates and initializes all application dependencies
func NewContainer(ctx context.Context, cfg *config.Config, l *zap.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	rdb, err := infrastructure.NewRedisClient(ctx, cfg, l)
	if err != nil {
		_ = infrastructure.CloseDatabase(db)
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	return Build(cfg, l, db, rdb), nil
}

// Build wires repositories, use cases and the router on top of an open
// database and an optional Redis client.
func Build(cfg *config.Config, l *zap.Logger, db *gorm.DB, rdb *redisclient.Client) *Container {
	var userRepo user.Repository = postgres.NewUserRepoPG(db, l)
	if rdb != nil {
		userCache := cache.NewRedisUserCache(rdb.Client, time.Duration(cfg.Redis.CacheTTL)*time.Second, l)
		userRepo = cached.NewCachedUserRepository(userRepo, userCache, l)
	}

	userUC := user.New(userRepo, security.NewPasswordHasher(cfg.Security.BcryptCost), l)
	todoUC := todo.New(postgres.NewTodoRepoPG(db, l), l)

	router := ginrouter.SetupRouter(
		ginhandler.NewUserHandler(userUC, l),
		ginhandler.NewTodoHandler(todoUC, l),
		ginhandler.NewSystemHandler(cfg.Logger.ServiceName),
		l,
	)

	return &Container{
		Config:      cfg,
		Logger:      l,
		DB:          db,
		RedisClient: rdb,
		UserUC:      userUC,
		TodoUC:      todoUC,
		Router:      router,
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	return errors.Join(errs...)
}
