package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"go-gin-event-commerce/config"
	"go-gin-event-commerce/internal/cache"
	"go-gin-event-commerce/internal/clock"
	"go-gin-event-commerce/internal/database"
	"go-gin-event-commerce/internal/gateway"
	"go-gin-event-commerce/internal/handler"
	"go-gin-event-commerce/internal/metrics"
	"go-gin-event-commerce/internal/middleware"
	"go-gin-event-commerce/internal/notify"
	"go-gin-event-commerce/internal/pricing"
	"go-gin-event-commerce/internal/queue"
	"go-gin-event-commerce/internal/repository"
	"go-gin-event-commerce/internal/service"
	"go-gin-event-commerce/internal/worker"
	"go-gin-event-commerce/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.WithComponent("fx")}
		}),
		fx.Provide(
			loadConfig,
			newPool,
			newRedis,
			newNotificationQueue,
			metrics.NewRegistry,
			metrics.New,
			clock.New,
			database.NewTxRunner,
			func(cfg *config.Config) gateway.PaymentGateway { return gateway.NewStripeGateway(&cfg.Stripe) },
			func(cfg *config.Config) notify.Provider { return notify.NewFromConfig(&cfg.SMTP) },
			func(cfg *config.Config) *middleware.Authenticator { return middleware.NewAuthenticator(&cfg.Auth) },
			cache.NewRedisEventLocker,

			repository.NewUserRepository,
			repository.NewEventRepository,
			repository.NewBookingRepository,
			repository.NewTransactionRepository,
			repository.NewWaitlistRepository,
			repository.NewReminderRepository,
			repository.NewGatewayEventRepository,

			newServiceDeps,
			service.NewEventService,
			service.NewWaitlistService,
			func(w service.WaitlistService) service.WaitlistPromoter { return w },
			service.NewBookingService,
			service.NewRefundOrchestrator,
			service.NewReminderService,
			service.NewRiskService,
			service.NewWebhookReconciler,
			worker.NewNotificationWorker,

			handler.NewEventHandler,
			handler.NewBookingHandler,
			handler.NewWaitlistHandler,
			handler.NewHostHandler,
			handler.NewWebhookHandler,
			handler.NewInternalHandler,
			newRouter,
		),
		fx.Invoke(startNotificationWorker, runHTTP),
	).Run()
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.App.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newPool(lc fx.Lifecycle, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return nil, err
	}
	if cfg.Database.RunMigrations {
		if err := database.RunMigrations(pool); err != nil {
			pool.Close()
			return nil, err
		}
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

func newRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return rdb.Close()
		},
	})
	return rdb, nil
}

func newNotificationQueue(cfg *config.Config, rdb *redis.Client) (queue.NotificationQueue, error) {
	if cfg.Engine.QueueBackend == "redis" {
		return queue.NewRedisStreamNotificationQueue(rdb, cfg.Engine.NotificationConsumerID, nil)
	}
	return queue.NewMemoryNotificationQueue(cfg.Engine.QueueBufferSize), nil
}

type serviceDepsParams struct {
	fx.In

	Config       *config.Config
	Tx           database.TxRunner
	Events       repository.EventRepository
	Users        repository.UserRepository
	Bookings     repository.BookingRepository
	Transactions repository.TransactionRepository
	Waitlist     repository.WaitlistRepository
	Reminders    repository.ReminderRepository
	Gateway      gateway.PaymentGateway
	Queue        queue.NotificationQueue
	Clock        clock.Clock
	Metrics      *metrics.Metrics
}

func newServiceDeps(p serviceDepsParams) service.Deps {
	return service.Deps{
		Tx:           p.Tx,
		Events:       p.Events,
		Users:        p.Users,
		Bookings:     p.Bookings,
		Transactions: p.Transactions,
		Waitlist:     p.Waitlist,
		Reminders:    p.Reminders,
		Gateway:      p.Gateway,
		Queue:        p.Queue,
		Clock:        p.Clock,
		Metrics:      p.Metrics,
		Calculator:   pricing.NewCalculator(p.Config.Engine.FeeRateBps),
		Settings:     service.SettingsFromConfig(p.Config),
	}
}

type routerParams struct {
	fx.In

	Config   *config.Config
	Auth     *middleware.Authenticator
	Metrics  *metrics.Metrics
	Events   *handler.EventHandler
	Bookings *handler.BookingHandler
	Waitlist *handler.WaitlistHandler
	Host     *handler.HostHandler
	Webhooks *handler.WebhookHandler
	Internal *handler.InternalHandler
}

func newRouter(p routerParams) *gin.Engine {
	if p.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	api := router.Group("/api/v1", p.Auth.OptionalActor())
	p.Events.RegisterRoutes(api, p.Auth)
	p.Bookings.RegisterRoutes(api, p.Auth)
	p.Waitlist.RegisterRoutes(api, p.Auth)
	p.Host.RegisterRoutes(api, p.Auth)

	p.Webhooks.RegisterRoutes(router)
	p.Internal.RegisterRoutes(router, p.Config.Auth.InternalToken)
	return router
}

func startNotificationWorker(lc fx.Lifecycle, w worker.NotificationWorker) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return w.Start(ctx)
		},
		OnStop: func(context.Context) error {
			cancel()
			w.Wait()
			return nil
		},
	})
}

func runHTTP(lc fx.Lifecycle, cfg *config.Config, router *gin.Engine) {
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	log := logger.WithComponent("server")

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				log.Info("HTTP server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			err := srv.Shutdown(ctx)
			_ = logger.L.Sync()
			return err
		},
	})
}
