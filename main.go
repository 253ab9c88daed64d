package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"directory-service/auth"
	"directory-service/db/mongo"
	"directory-service/handlers"
	authroutes "directory-service/routes/v1/auth"
	"directory-service/routes/v1/blog"
	"directory-service/routes/v1/civic"
	"directory-service/routes/v1/directory"
	"directory-service/routes/v1/disaster_report"
	"directory-service/routes/v1/emergency"
	"directory-service/routes/v1/media"
	"directory-service/routes/v1/site"
	"directory-service/routes/v1/transport"
	"directory-service/utils"
	"directory-service/utils/consts"
	"directory-service/utils/log"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	config := utils.GetConfig()
	logger, err := log.InitLogger(config.LoggerConfig)
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer logger.Sync()

	if err := mongo.Connect(config.Mongo); err != nil {
		logger.Fatal("mongo connection failed", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongo.Disconnect(ctx); err != nil {
			logger.Error("mongo disconnect failed", zap.Error(err))
		}
	}()

	handlers.UseTokenService(auth.NewTokenService(config.Auth.Secret, consts.TokenExpiry))

	engine := buildEngine(config, logger)

	server := &http.Server{
		Addr:    ":" + config.Port,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errGroup, ctx := errgroup.WithContext(ctx)
	errGroup.Go(func() error {
		logger.Info("server listening", zap.String("port", config.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	errGroup.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	if err := errGroup.Wait(); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func buildEngine(config utils.Configuration, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	engine.Use(ginzap.RecoveryWithZap(logger, true))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = config.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	engine.Use(cors.New(corsConfig))

	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "server is running and connected to the database"})
	})

	authroutes.AddRoutes(engine)
	emergency.AddRoutes(engine)
	transport.AddRoutes(engine)
	civic.AddRoutes(engine)
	media.AddRoutes(engine)
	directory.AddRoutes(engine)
	site.AddRoutes(engine)
	blog.AddRoutes(engine)
	disaster_report.AddRoutes(engine)

	return engine
}
