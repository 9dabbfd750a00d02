package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	appcart "github.com/xiebiao/campus-bookstore/internal/application/cart"
	appcatalog "github.com/xiebiao/campus-bookstore/internal/application/catalog"
	apporder "github.com/xiebiao/campus-bookstore/internal/application/order"
	appreplenishment "github.com/xiebiao/campus-bookstore/internal/application/replenishment"
	appreport "github.com/xiebiao/campus-bookstore/internal/application/report"
	appuser "github.com/xiebiao/campus-bookstore/internal/application/user"
	"github.com/xiebiao/campus-bookstore/internal/domain/catalog"
	"github.com/xiebiao/campus-bookstore/internal/domain/user"
	"github.com/xiebiao/campus-bookstore/internal/infrastructure/config"
	"github.com/xiebiao/campus-bookstore/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/campus-bookstore/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/campus-bookstore/internal/interface/http/handler"
	"github.com/xiebiao/campus-bookstore/internal/interface/http/middleware"
	"github.com/xiebiao/campus-bookstore/pkg/jwt"
	"github.com/xiebiao/campus-bookstore/pkg/logger"
	"github.com/xiebiao/campus-bookstore/pkg/metrics"
	"github.com/xiebiao/campus-bookstore/pkg/mq"
	"github.com/xiebiao/campus-bookstore/pkg/response"
)

// main 主程序入口
// 依赖注入链:Repository ← Service ← UseCase ← Handler
// (cmd/api/wire.go提供Wire自动生成的等价组装)
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	zapLogger, err := logger.Init(logger.Config{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	zap.L().Info("配置加载成功",
		zap.Int("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("database", fmt.Sprintf("%s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
		zap.String("redis", cfg.Redis.Addr()))

	// 3. 初始化Prometheus指标
	metrics.Init()

	// 4. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 5. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 6. 初始化消息发布者(未启用时使用Nop实现,API可独立运行)
	var publisher mq.EventPublisher = mq.NopPublisher{}
	if cfg.MQ.Enabled {
		p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
		if err != nil {
			log.Fatalf("初始化消息队列失败: %v", err)
		}
		defer p.Close() //nolint:errcheck
		publisher = p
	}

	// 7. 依赖注入(手动组装)

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	catalogRepo := mysql.NewCatalogRepository(db)
	cartRepo := mysql.NewCartRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	replRepo := mysql.NewReplenishmentRepository(db)
	reportRepo := mysql.NewReportRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo)
	catalogService := catalog.NewService(catalogRepo)

	// 应用层
	signupUseCase := appuser.NewSignupUseCase(userService, cartRepo, txManager)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore, cfg.JWT.RefreshTokenExpire)
	logoutUseCase := appuser.NewLogoutUseCase(cartRepo, sessionStore, cfg.JWT.AccessTokenExpire)
	getProfileUseCase := appuser.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := appuser.NewUpdateProfileUseCase(userService)
	listUsersUseCase := appuser.NewListUsersUseCase(userRepo)
	promoteUserUseCase := appuser.NewPromoteUserUseCase(userRepo)

	searchBooksUseCase := appcatalog.NewSearchBooksUseCase(catalogService)
	getBookUseCase := appcatalog.NewGetBookUseCase(catalogService)
	addBookUseCase := appcatalog.NewAddBookUseCase(catalogService)
	updateBookUseCase := appcatalog.NewUpdateBookUseCase(catalogService)
	createAuthorUseCase := appcatalog.NewCreateAuthorUseCase(catalogService)
	listAuthorsUseCase := appcatalog.NewListAuthorsUseCase(catalogService)
	createPublisherUseCase := appcatalog.NewCreatePublisherUseCase(catalogService)
	listPublishersUseCase := appcatalog.NewListPublishersUseCase(catalogService)

	addItemUseCase := appcart.NewAddItemUseCase(cartRepo, catalogRepo)
	viewCartUseCase := appcart.NewViewCartUseCase(cartRepo)
	removeItemUseCase := appcart.NewRemoveItemUseCase(cartRepo)

	checkoutUseCase := apporder.NewCheckoutUseCase(orderRepo, cartRepo, catalogRepo, txManager, publisher)
	listOrdersUseCase := apporder.NewListOrdersUseCase(orderRepo)
	getOrderUseCase := apporder.NewGetOrderUseCase(orderRepo)

	createReplUseCase := appreplenishment.NewCreateUseCase(replRepo, catalogRepo)
	confirmReplUseCase := appreplenishment.NewConfirmUseCase(replRepo, catalogRepo, txManager, publisher)
	listReplUseCase := appreplenishment.NewListUseCase(replRepo)

	reportUseCase := appreport.NewUseCase(reportRepo)

	// 接口层
	userHandler := handler.NewUserHandler(
		signupUseCase, loginUseCase, logoutUseCase,
		getProfileUseCase, updateProfileUseCase,
		listUsersUseCase, promoteUserUseCase,
	)
	bookHandler := handler.NewBookHandler(
		searchBooksUseCase, getBookUseCase, addBookUseCase, updateBookUseCase,
		createAuthorUseCase, listAuthorsUseCase,
		createPublisherUseCase, listPublishersUseCase,
	)
	cartHandler := handler.NewCartHandler(addItemUseCase, viewCartUseCase, removeItemUseCase)
	orderHandler := handler.NewOrderHandler(checkoutUseCase, listOrdersUseCase, getOrderUseCase)
	replHandler := handler.NewReplenishmentHandler(createReplUseCase, confirmReplUseCase, listReplUseCase)
	reportHandler := handler.NewReportHandler(reportUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 8. 初始化Gin引擎
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

	// 9. 注册路由
	registerRoutes(r, userHandler, bookHandler, cartHandler, orderHandler, replHandler, reportHandler, authMiddleware)

	// 10. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	zap.L().Info("服务启动", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
// 三个访问层级:公开、登录、管理员
func registerRoutes(
	r *gin.Engine,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	replHandler *handler.ReplenishmentHandler,
	reportHandler *handler.ReportHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", metrics.Handler())

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 公开接口
		users := v1.Group("/users")
		{
			users.POST("/signup", userHandler.Signup)
			users.POST("/login", userHandler.Login)
		}
		books := v1.Group("/books")
		{
			books.GET("/search", bookHandler.Search)
			books.GET("/:isbn", bookHandler.Get)
		}

		// 需要登录
		authorized := v1.Group("")
		authorized.Use(authMiddleware.RequireAuth())
		{
			authorized.POST("/users/logout", userHandler.Logout)
			authorized.GET("/users/profile", userHandler.GetProfile)
			authorized.PUT("/users/profile", userHandler.UpdateProfile)

			authorized.GET("/cart", cartHandler.View)
			authorized.POST("/cart/items", cartHandler.AddItem)
			authorized.DELETE("/cart/items/:isbn", cartHandler.RemoveItem)

			authorized.POST("/orders/checkout", orderHandler.Checkout)
			authorized.GET("/orders", orderHandler.List)
			authorized.GET("/orders/:id", orderHandler.Get)
		}

		// 管理员接口
		admin := v1.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			admin.POST("/books", bookHandler.Add)
			admin.PUT("/books/:isbn", bookHandler.Update)

			admin.GET("/authors", bookHandler.ListAuthors)
			admin.POST("/authors", bookHandler.CreateAuthor)
			admin.GET("/publishers", bookHandler.ListPublishers)
			admin.POST("/publishers", bookHandler.CreatePublisher)

			admin.GET("/publisher-orders", replHandler.List)
			admin.POST("/publisher-orders", replHandler.Create)
			admin.PUT("/publisher-orders/:id/confirm", replHandler.Confirm)

			admin.GET("/users", userHandler.ListUsers)
			admin.PUT("/users/:id/promote", userHandler.PromoteUser)

			reports := admin.Group("/reports")
			{
				reports.GET("/sales-prev-month", reportHandler.SalesPrevMonth)
				reports.GET("/sales-daily", reportHandler.SalesDaily)
				reports.GET("/top-customers", reportHandler.TopCustomers)
				reports.GET("/top-selling-books", reportHandler.TopSellingBooks)
				reports.GET("/replenishments", reportHandler.Replenishments)
			}
		}
	}
}
