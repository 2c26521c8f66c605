//go:build wireinject
// +build wireinject

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	appauth "bookshop/internal/application/auth"
	apporder "bookshop/internal/application/order"
	"bookshop/internal/domain/book"
	"bookshop/internal/domain/cart"
	"bookshop/internal/domain/category"
	"bookshop/internal/domain/tx"
	"bookshop/internal/domain/user"
	"bookshop/internal/infrastructure/config"
	"bookshop/internal/infrastructure/persistence/mysql"
	"bookshop/internal/infrastructure/persistence/redis"
	"bookshop/internal/interface/http/handler"
	"bookshop/internal/interface/http/middleware"
	"bookshop/internal/interface/http/router"
	"bookshop/pkg/jwt"
)

var infrastructureSet = wire.NewSet(
	config.Load,
	provideRedisConfig,
	mysql.NewDB,
	redis.NewClient,
)

var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewBookRepository,
	mysql.NewCategoryRepository,
	mysql.NewCartRepository,
	mysql.NewOrderRepository,
	mysql.NewTxManager,
	wire.Bind(new(tx.Manager), new(*mysql.TxManager)),
)

var domainSet = wire.NewSet(
	user.NewService,
	book.NewService,
	category.NewService,
	cart.NewService,
)

var applicationSet = wire.NewSet(
	appauth.NewUseCase,
	apporder.NewUseCase,
)

var securitySet = wire.NewSet(
	provideJWTManager,
	redis.NewTokenBlacklist,
	wire.Bind(new(appauth.TokenBlacklist), new(*redis.TokenBlacklist)),
	middleware.NewAuthMiddleware,
)

var handlerSet = wire.NewSet(
	handler.NewAuthHandler,
	handler.NewBookHandler,
	handler.NewCategoryHandler,
	handler.NewCartHandler,
	handler.NewOrderHandler,
)

func provideRedisConfig(cfg *config.Config) *config.RedisConfig {
	return &cfg.Redis
}

func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.TTL)
}

func provideEngine(
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	bookHandler *handler.BookHandler,
	categoryHandler *handler.CategoryHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	authn *middleware.AuthMiddleware,
) *gin.Engine {
	return router.New(cfg.Server.Mode, cfg.Server.RequestTimeout, router.Handlers{
		Auth:     authHandler,
		Book:     bookHandler,
		Category: categoryHandler,
		Cart:     cartHandler,
		Order:    orderHandler,
	}, authn)
}

// InitializeApp wires the full dependency graph and returns the engine.
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		securitySet,
		handlerSet,
		provideEngine,
	)
	return nil, nil
}
