package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"inkwell"
	"inkwell/config"
	"inkwell/internal/application/usecase"
	"inkwell/internal/infrastructure/broker"
	"inkwell/internal/infrastructure/database"
	"inkwell/internal/infrastructure/minio"
	"inkwell/internal/infrastructure/session"
	"inkwell/internal/presentation/handler"
	"inkwell/internal/presentation/middleware"
	"inkwell/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running inkwell", "version", inkwell.StringVersion())

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}

	brokerPublisher := broker.NewPublisher(brokerClient, cfg.PublisherConfig)
	sessionStore := session.NewStore(brokerClient, cfg.SessionConfig)

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	adminWriter := database.NewAdminWriter(db)
	adminRetriever := database.NewAdminRetriever(db)
	blogWriter := database.NewBlogWriter(db)
	blogRetriever := database.NewBlogRetriever(db)
	blogLister := database.NewBlogLister(db)
	blogRemover := database.NewBlogRemover(db)
	categoryWriter := database.NewCategoryWriter(db)
	categoryRetriever := database.NewCategoryRetriever(db)
	categoryRemover := database.NewCategoryRemover(db)

	minIOClient, err := minio.New(&cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}
	minIOUploader := minio.NewUploader(minIOClient, &cfg.MinIOUploader)
	minIORemover := minio.NewRemover(minIOClient, &cfg.MinIORemover)

	secret := []byte(cfg.Auth.Secret)
	tokenTTL := time.Duration(cfg.Auth.TokenTTLInMinutes) * time.Minute

	auth := usecase.NewAuth(adminWriter, adminRetriever, sessionStore, secret, tokenTTL)
	taxonomy := usecase.NewTaxonomy(categoryWriter, categoryRetriever, categoryRemover,
		blogLister, adminRetriever, minIOUploader, minIORemover, brokerPublisher)
	blogs := usecase.NewBlogs(blogWriter, blogRetriever, blogLister, blogRemover,
		taxonomy, minIOUploader, minIORemover, brokerPublisher)

	adminHandler := handler.NewAdminHandler(auth)
	blogHandler := handler.NewBlogHandler(blogs)
	categoryHandler := handler.NewCategoryHandler(taxonomy)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(cfg.HTTPServer.BodyLimit))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	authRequired := middleware.AuthMiddleware(secret, sessionStore, adminRetriever)

	v1 := e.Group("/api/v1")

	admin := v1.Group("/admin")
	admin.POST("/register", adminHandler.Register)
	admin.POST("/login", adminHandler.Login)
	admin.GET("/logout", adminHandler.Logout, authRequired)

	blog := v1.Group("/blog")
	blog.POST("/create", blogHandler.Create, authRequired)
	blog.GET("", blogHandler.List)
	blog.GET("/:id", blogHandler.Get)
	blog.PUT("/:id", blogHandler.Update, authRequired)
	blog.DELETE("/:id", blogHandler.Delete, authRequired)

	category := v1.Group("/category")
	category.GET("", categoryHandler.List)
	category.POST("", categoryHandler.Create, authRequired)
	category.PUT("/:id", categoryHandler.Update, authRequired)
	category.DELETE("/:id", categoryHandler.Delete, authRequired)
	category.DELETE("/:id/subcategory/:name", categoryHandler.DeleteSubcategory, authRequired)
	category.GET("/blogs/:name", categoryHandler.BlogsByCategory)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.HTTPServer.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}

	if err := db.Stop(); err != nil {
		logger.Error("failed to disconnect database", "err", err)
	}
	if err := brokerClient.Close(); err != nil {
		logger.Error("failed to close broker client", "err", err)
	}
}
