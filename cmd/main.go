package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/merch-fulfillment/internal/app"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/config"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/handler"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/lock"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/postgres"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/printful"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/repo"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/service"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/tracing"
	"github.com/SergeyBogomolovv/merch-fulfillment/pkg/cache"
	"github.com/SergeyBogomolovv/merch-fulfillment/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Merch Fulfillment API
// @version         1.0
// @description     Админское HTTP API отправки заказов в Printful и синхронизации каталога
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, logger, conf.Tracing)
	panicIfErr("failed to init tracing", err)
	defer shutdownTracing(context.Background())

	store, txManager, storeLocker, closeStore := newStorage(ctx, logger, conf)
	defer closeStore()

	locker := newLocker(ctx, logger, conf.Redis, storeLocker)

	if conf.Printful.Sandbox {
		logger.Warn("printful sandbox mode: orders are not sent to production and not confirmed")
	}
	provider := printful.NewClient(logger, conf.Printful)
	providerCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	orderService := service.NewOrderService(logger, txManager, store)
	fulfillmentService := service.NewFulfillmentService(logger, conf.Fulfillment, conf.Printful, store, provider, locker, providerCache)
	catalogService := service.NewCatalogService(logger, conf.Catalog, txManager, store, provider)
	paymentService := service.NewPaymentService(logger, orderService, fulfillmentService, locker, conf.Fulfillment.LockTTL, conf.Fulfillment.AutoFulfill)

	handler.RegisterMetrics()
	httpHandler := handler.NewHTTPHandler(logger, orderService, fulfillmentService, catalogService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(providerCache)
	if conf.Kafka.Enabled {
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, paymentService))
	} else {
		logger.Info("kafka consumer disabled")
	}

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

// storage - общее хранилище заказов и товаров; реализации в internal/repo.
type storage interface {
	service.OrderRepo
	service.OrderStore
	service.ProductRepo
}

// newStorage возвращает хранилище вместе с блокировками заказов в нём же:
// реплики, которые делят базу, делят и блокировки.
func newStorage(ctx context.Context, logger *slog.Logger, conf config.Config) (storage, trm.Manager, service.Locker, func()) {
	if conf.Storage == config.StorageMemory {
		logger.Warn("using in-memory storage, data is lost on restart")
		store := repo.NewMemoryRepo()
		return store, trm.NewNopManager(), store, func() {}
	}

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	logger.Info("postgres connected")

	txManager := trm.NewManager(db, trm.WithIsolation(sql.LevelReadCommitted))
	return repo.NewPostgresRepo(db), txManager, lock.NewPostgres(logger, db), func() { db.Close() }
}

func newLocker(ctx context.Context, logger *slog.Logger, conf config.Redis, storeLocker service.Locker) service.Locker {
	if conf.Addr == "" {
		logger.Info("using storage-backed order locks")
		return storeLocker
	}

	rdb, err := lock.Connect(ctx, conf.Addr, conf.Password, conf.DB)
	panicIfErr("failed to connect to redis", err)
	logger.Info("redis connected")
	return lock.NewRedis(logger, rdb)
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
