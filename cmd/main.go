package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/storefront-order-service/docs"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/app"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/config"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/handler"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/notifier"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/postgres"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/repo"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/service"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/cache"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/trm"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// @title           Storefront Order Service API
// @version         1.0
// @description     Жизненный цикл заказов витрины: оформление из корзины, одобрение, изменение и выдача
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	if conf.Postgres.MigrateOnStart {
		panicIfErr("failed to migrate db", postgres.Migrate(logger, db, conf.Postgres.DBName))
	}

	storeRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	imageCache := cache.NewLRUCache[uuid.UUID, string](conf.Cache.Capacity, conf.Cache.TTL)
	orderNotifier := notifier.NewKafkaNotifier(conf.Kafka)

	orderService := service.NewOrderService(
		logger,
		txManager,
		storeRepo,
		storeRepo,
		storeRepo,
		orderNotifier,
		imageCache,
	)

	handler.RegisterMetrics()
	service.RegisterMetrics()
	checkoutConsumer := handler.NewCheckoutConsumer(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, orderService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(checkoutConsumer)
	app.SetStarters(imageCache)
	app.SetClosers(orderNotifier)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
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
