package app

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Grelo-LLC/Grelo-Corporate-API/domain"
	"github.com/Grelo-LLC/Grelo-Corporate-API/internal/config"
	"github.com/Grelo-LLC/Grelo-Corporate-API/internal/infrastructure/auth"
	"github.com/Grelo-LLC/Grelo-Corporate-API/internal/infrastructure/database"
	"github.com/Grelo-LLC/Grelo-Corporate-API/internal/infrastructure/gateway"
	"github.com/Grelo-LLC/Grelo-Corporate-API/internal/infrastructure/notifications"
	"github.com/Grelo-LLC/Grelo-Corporate-API/internal/infrastructure/repositories"
	"github.com/Grelo-LLC/Grelo-Corporate-API/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client

	AccountRepo domain.AccountRepository
	OTPRepo     domain.OTPRepository
	TokenCache  domain.TokenCache
	Transactor  domain.Transactor

	PasswordSvc     domain.PasswordService
	NotificationSvc domain.NotificationService
	TokenGateway    domain.TokenGateway
	AccountSvc      domain.AccountService
	ResetSvc        domain.ResetService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initRedis(); err != nil {
		return nil, err
	}
	if err := container.initServices(); err != nil {
		return nil, err
	}

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initRedis() error {
	c.RedisClient = redis.NewClient(&redis.Options{
		Addr:     c.Config.RedisAddr,
		Password: c.Config.RedisPassword,
		DB:       c.Config.RedisDB,
	})
	return c.RedisClient.Ping(context.Background()).Err()
}

func (c *Container) initServices() error {
	c.AccountRepo = repositories.NewAccountRepository(c.DB)
	c.OTPRepo = repositories.NewOTPRepository(c.DB)
	c.TokenCache = repositories.NewTokenCache(c.RedisClient)
	c.Transactor = repositories.NewTransactor(c.DB)

	c.PasswordSvc = auth.NewPasswordService()

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(c.Config.EmailRegion))
	if err != nil {
		return err
	}
	c.NotificationSvc = notifications.NewSESService(ses.NewFromConfig(awsCfg), c.Config.EmailFrom)

	c.TokenGateway = gateway.NewOAuthGateway(gateway.Options{
		BaseURL:      c.Config.OAuthBaseURL,
		TokenPath:    c.Config.OAuthTokenPath,
		RevokePath:   c.Config.OAuthRevokePath,
		ClientID:     c.Config.OAuthClientID,
		ClientSecret: c.Config.OAuthClientSecret,
		Timeout:      c.Config.OAuthTimeout,
	})

	c.AccountSvc = services.NewAccountService(c.AccountRepo, c.PasswordSvc, c.TokenGateway, c.TokenCache)
	c.ResetSvc = services.NewResetService(
		c.AccountRepo,
		c.OTPRepo,
		c.PasswordSvc,
		c.NotificationSvc,
		c.Transactor,
		services.ResetConfig{TTL: c.Config.OTPTTL},
	)

	return nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
