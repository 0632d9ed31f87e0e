package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sandwich-service/cache"
	"sandwich-service/controllers"
	"sandwich-service/database"
	"sandwich-service/events"
	"sandwich-service/middleware"
	"sandwich-service/models"
	aws_pkg "sandwich-service/pkg/aws"
	"sandwich-service/pkg/logger"
	"sandwich-service/pkg/validation"
	"sandwich-service/repository"
	"sandwich-service/routes"
	"sandwich-service/services"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const serviceName = "sandwich-service"

func main() {
	cfg, err := LoadConfig(context.Background())
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	// --- AWS setup (only when something needs it) ---
	var awsCfg *aws.Config
	if cfg.SNSTopicARN != "" || cfg.SQSQueueURL != "" || cfg.CloudWatchEnabled {
		c, err := aws_pkg.LoadAWSConfig(context.Background())
		if err != nil {
			log.Printf("AWS config load failed, SNS, SQS and CloudWatch disabled: %v", err)
		} else {
			awsCfg = &c
		}
	}

	// --- Logger, tee'd to CloudWatch Logs when enabled ---
	var logSink io.Writer
	if cfg.CloudWatchEnabled && awsCfg != nil {
		cwLogs, err := aws_pkg.NewCloudWatchLogsWriter(context.Background(), *awsCfg, cfg.CloudWatchLogGroup, serviceName)
		if err != nil {
			log.Printf("CloudWatch Logs init failed (non-fatal): %v", err)
		} else {
			logSink = cwLogs
		}
	}
	zlog, err := logger.NewWithWriter(cfg.AppEnv, logSink)
	if err != nil {
		log.Fatalf("Logger init failed: %v", err)
	}
	defer zlog.Sync()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := validation.Register(); err != nil {
		zlog.Fatal("Validator registration failed", zap.Error(err))
	}

	// --- Database ---
	db, err := database.ConnectPostgres(zlog, cfg.DB, models.AllModels()...)
	if err != nil {
		zlog.Fatal("DB connection failed", zap.Error(err))
	}

	// --- Redis menu cache (optional) ---
	var (
		redisClient *redis.Client
		menuCache   services.MenuCache
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			zlog.Warn("Redis unavailable, menu cache disabled", zap.String("addr", cfg.RedisAddr), zap.Error(err))
			_ = redisClient.Close()
			redisClient = nil
		} else {
			menuCache = cache.NewMenuCache(redisClient, cfg.MenuCacheTTL)
			zlog.Info("Menu cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.MenuCacheTTL))
		}
	}

	// --- Event publishers ---
	var (
		publishers events.Multi
		kafkaPub   *events.KafkaPublisher
	)
	if cfg.SNSTopicARN != "" && awsCfg != nil {
		publishers = append(publishers, events.NewSNSPublisher(aws_pkg.NewSNSClient(*awsCfg), cfg.SNSTopicARN))
	}
	if cfg.SQSQueueURL != "" && awsCfg != nil {
		publishers = append(publishers, events.NewSQSPublisher(aws_pkg.NewSQSSender(*awsCfg, cfg.SQSQueueURL)))
	}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPub = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaEventsTopic)
		publishers = append(publishers, kafkaPub)
	}
	var publisher events.Publisher = events.Nop{}
	if len(publishers) > 0 {
		publisher = publishers
	}

	// --- CloudWatch metrics (non-fatal) ---
	var metricsClient *aws_pkg.MetricsClient
	if awsCfg != nil {
		metricsClient = aws_pkg.NewMetricsClient(*awsCfg, "SandwichShop", cfg.CloudWatchEnabled)
	}

	// --- HTTP router ---
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics(metricsClient, serviceName))
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	var limiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 5*time.Minute)
		r.Use(limiter.Middleware())
	}
	r.Use(middleware.Timeout(middleware.DefaultRequestTimeout))

	// --- Dependency injection ---
	customerService := services.NewCustomerService(repository.NewGormCustomerRepository(db), publisher, zlog)
	orderService := services.NewOrderService(repository.NewGormOrderRepository(db), publisher, zlog)
	orderDetailService := services.NewOrderDetailService(repository.NewGormOrderDetailRepository(db), publisher, zlog)
	sandwichService := services.NewSandwichService(repository.NewGormSandwichRepository(db), menuCache, publisher, zlog)
	resourceService := services.NewResourceService(repository.NewGormResourceRepository(db), publisher, zlog)
	recipeService := services.NewRecipeService(repository.NewGormRecipeRepository(db), publisher, zlog)
	reviewService := services.NewReviewService(repository.NewGormReviewRepository(db), publisher, zlog)
	paymentService := services.NewPaymentService(repository.NewGormPaymentRepository(db), publisher, zlog)
	promotionService := services.NewPromotionService(repository.NewGormPromotionRepository(db), publisher, zlog)

	routes.RegisterRoutes(r, routes.Controllers{
		Customers:    controllers.NewCustomerController(customerService),
		Orders:       controllers.NewOrderController(orderService),
		OrderDetails: controllers.NewOrderDetailController(orderDetailService),
		Sandwiches:   controllers.NewSandwichController(sandwichService),
		Resources:    controllers.NewResourceController(resourceService),
		Recipes:      controllers.NewRecipeController(recipeService),
		Reviews:      controllers.NewReviewController(reviewService),
		Payments:     controllers.NewPaymentController(paymentService),
		Promotions:   controllers.NewPromotionController(promotionService),
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "service": serviceName})
	})

	// --- HTTP server ---
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		zlog.Info("Sandwich Service started", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("Initiating graceful shutdown...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("Server shutdown error", zap.Error(err))
	}
	if limiter != nil {
		limiter.Close()
	}
	if kafkaPub != nil {
		if err := kafkaPub.Close(); err != nil {
			zlog.Error("Kafka writer close error", zap.Error(err))
		}
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			zlog.Error("Redis close error", zap.Error(err))
		}
	}
	if err := database.Close(db); err != nil {
		zlog.Error("Database close error", zap.Error(err))
	}

	zlog.Info("Sandwich Service stopped gracefully")
}
