//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 运行 `wire gen ./cmd/api` 生成wire_gen.go,与main.go中的手动组装等价
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	appcart "github.com/xiebiao/campus-bookstore/internal/application/cart"
	appcatalog "github.com/xiebiao/campus-bookstore/internal/application/catalog"
	apporder "github.com/xiebiao/campus-bookstore/internal/application/order"
	appreplenishment "github.com/xiebiao/campus-bookstore/internal/application/replenishment"
	appreport "github.com/xiebiao/campus-bookstore/internal/application/report"
	appuser "github.com/xiebiao/campus-bookstore/internal/application/user"
	"github.com/xiebiao/campus-bookstore/internal/domain/cart"
	"github.com/xiebiao/campus-bookstore/internal/domain/catalog"
	"github.com/xiebiao/campus-bookstore/internal/domain/user"
	"github.com/xiebiao/campus-bookstore/internal/infrastructure/config"
	"github.com/xiebiao/campus-bookstore/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/campus-bookstore/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/campus-bookstore/internal/interface/http/handler"
	"github.com/xiebiao/campus-bookstore/internal/interface/http/middleware"
	"github.com/xiebiao/campus-bookstore/pkg/jwt"
	"github.com/xiebiao/campus-bookstore/pkg/metrics"
	"github.com/xiebiao/campus-bookstore/pkg/mq"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
	redis.NewSessionStore,
	provideJWTManager,
	provideEventPublisher,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewCatalogRepository,
	mysql.NewCartRepository,
	mysql.NewOrderRepository,
	mysql.NewReplenishmentRepository,
	mysql.NewReportRepository,
	mysql.NewTxManager,
	wire.Bind(new(appuser.TxManager), new(*mysql.TxManager)),
	wire.Bind(new(apporder.TxManager), new(*mysql.TxManager)),
	wire.Bind(new(appreplenishment.TxManager), new(*mysql.TxManager)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService,
	catalog.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewSignupUseCase,
	provideLoginUseCase,
	provideLogoutUseCase,
	appuser.NewGetProfileUseCase,
	appuser.NewUpdateProfileUseCase,
	appuser.NewListUsersUseCase,
	appuser.NewPromoteUserUseCase,
	appcatalog.NewSearchBooksUseCase,
	appcatalog.NewGetBookUseCase,
	appcatalog.NewAddBookUseCase,
	appcatalog.NewUpdateBookUseCase,
	appcatalog.NewCreateAuthorUseCase,
	appcatalog.NewListAuthorsUseCase,
	appcatalog.NewCreatePublisherUseCase,
	appcatalog.NewListPublishersUseCase,
	appcart.NewAddItemUseCase,
	appcart.NewViewCartUseCase,
	appcart.NewRemoveItemUseCase,
	apporder.NewCheckoutUseCase,
	apporder.NewListOrdersUseCase,
	apporder.NewGetOrderUseCase,
	appreplenishment.NewCreateUseCase,
	appreplenishment.NewConfirmUseCase,
	appreplenishment.NewListUseCase,
	appreport.NewUseCase,
)

// interfaceSet 接口层依赖
var interfaceSet = wire.NewSet(
	handler.NewUserHandler,
	handler.NewBookHandler,
	handler.NewCartHandler,
	handler.NewOrderHandler,
	handler.NewReplenishmentHandler,
	handler.NewReportHandler,
	middleware.NewAuthMiddleware,
)

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideEventPublisher 从配置创建消息发布者
// MQ未启用时返回Nop实现,API可在无RabbitMQ环境下运行
func provideEventPublisher(cfg *config.Config) (mq.EventPublisher, error) {
	if !cfg.MQ.Enabled {
		return mq.NopPublisher{}, nil
	}
	return mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
}

// provideLoginUseCase 登录用例需要从配置提取会话TTL
func provideLoginUseCase(
	cfg *config.Config,
	userService user.Service,
	jwtManager *jwt.Manager,
	sessionStore *redis.SessionStore,
) *appuser.LoginUseCase {
	return appuser.NewLoginUseCase(userService, jwtManager, sessionStore, cfg.JWT.RefreshTokenExpire)
}

// provideLogoutUseCase 登出用例需要从配置提取黑名单TTL
func provideLogoutUseCase(
	cfg *config.Config,
	cartRepo cart.Repository,
	sessionStore *redis.SessionStore,
) *appuser.LogoutUseCase {
	return appuser.NewLogoutUseCase(cartRepo, sessionStore, cfg.JWT.AccessTokenExpire)
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	replHandler *handler.ReplenishmentHandler,
	reportHandler *handler.ReportHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())
	r.Use(metrics.GinMiddleware())
	if cfg.CORS.Enabled {
		r.Use(middleware.CORS(cfg.CORS))
	}

	registerRoutes(r, userHandler, bookHandler, cartHandler, orderHandler, replHandler, reportHandler, authMiddleware)
	return r
}

// InitializeApp 初始化整个应用(Wire Injector)
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		interfaceSet,
		provideGinEngine,
	)
	return nil, nil
}
