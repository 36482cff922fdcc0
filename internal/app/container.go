package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Alexs779/bot-flow-vercel/domain"
	"github.com/Alexs779/bot-flow-vercel/internal/config"
	httpx "github.com/Alexs779/bot-flow-vercel/internal/http"
	"github.com/Alexs779/bot-flow-vercel/internal/http/handlers"
	"github.com/Alexs779/bot-flow-vercel/internal/infrastructure/auth"
	"github.com/Alexs779/bot-flow-vercel/internal/infrastructure/database"
	"github.com/Alexs779/bot-flow-vercel/internal/infrastructure/repositories"
	"github.com/Alexs779/bot-flow-vercel/internal/infrastructure/telegram"
	"github.com/Alexs779/bot-flow-vercel/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	// Infrastructure, set only for the matching user store driver
	DB          *gorm.DB
	RedisClient *redis.Client

	UserRepo   domain.UserRepository
	Verifier   domain.InitDataVerifier
	Sessions   domain.SessionIssuer
	AuthSvc    domain.AuthService
	PaymentSvc domain.PaymentService
}

// NewContainer creates and initializes all dependencies
func NewContainer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Container{Config: cfg, Logger: logger}

	if err := c.initUserStore(ctx); err != nil {
		return nil, err
	}
	c.initServices()
	return c, nil
}

func (c *Container) initUserStore(ctx context.Context) error {
	switch c.Config.UserStore {
	case config.StoreMemory, "":
		c.UserRepo = repositories.NewMemoryUserRepository()
	case config.StoreGorm:
		db, err := database.Open(c.Config.DBDialect, c.Config.DSN)
		if err != nil {
			return err
		}
		if err := database.AutoMigrate(db); err != nil {
			return err
		}
		c.DB = db
		c.UserRepo = repositories.NewUserRepository(db)
	case config.StoreRedis:
		rdb, err := database.NewRedis(ctx, c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
		if err != nil {
			return err
		}
		c.RedisClient = rdb
		c.UserRepo = repositories.NewRedisUserRepository(rdb)
	default:
		return fmt.Errorf("unknown user store driver %q", c.Config.UserStore)
	}
	c.Logger.Info("user store ready", zap.String("driver", c.Config.UserStore))
	return nil
}

func (c *Container) initServices() {
	c.Verifier = telegram.NewVerifier(c.Logger)
	c.Sessions = auth.NewSessionService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.SessionTTL, c.Config.Now)
	c.AuthSvc = services.NewAuthService(
		c.Verifier,
		c.UserRepo,
		c.Sessions,
		services.AuthConfig{
			BotToken:      c.Config.BotToken,
			SessionSecret: c.Config.JWTSecret,
			MaxAge:        c.Config.AuthMaxAge,
			Now:           c.Config.Now,
		},
		c.Logger,
	)
	c.PaymentSvc = services.NewPaymentService(c.Sessions, c.Config.InvoiceStubURL, c.Logger)
}

// Router builds the HTTP router over the container's services
func (c *Container) Router() *gin.Engine {
	return httpx.BuildRouter(
		handlers.NewAuthHandlers(c.AuthSvc, c.Logger),
		handlers.NewPaymentHandlers(c.PaymentSvc, c.Logger),
		c.Logger,
	)
}

// Close closes all connections
func (c *Container) Close() error {
	var errs []error
	if c.RedisClient != nil {
		errs = append(errs, c.RedisClient.Close())
	}
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			errs = append(errs, err)
		} else {
			errs = append(errs, sqlDB.Close())
		}
	}
	return errors.Join(errs...)
}
