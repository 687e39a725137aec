package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/eshop-service/docs"
	"github.com/SergeyBogomolovv/eshop-service/internal/app"
	"github.com/SergeyBogomolovv/eshop-service/internal/config"
	"github.com/SergeyBogomolovv/eshop-service/internal/handler"
	"github.com/SergeyBogomolovv/eshop-service/internal/middleware"
	"github.com/SergeyBogomolovv/eshop-service/internal/postgres"
	"github.com/SergeyBogomolovv/eshop-service/internal/repo"
	"github.com/SergeyBogomolovv/eshop-service/internal/service"
	"github.com/SergeyBogomolovv/eshop-service/pkg/auth"
	"github.com/SergeyBogomolovv/eshop-service/pkg/cache"
	"github.com/SergeyBogomolovv/eshop-service/pkg/media"
	"github.com/SergeyBogomolovv/eshop-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title                       E-Shop API
// @version                     1.0
// @description                 Документация HTTP API интернет-магазина
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer JWT
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to migrate db", postgres.Migrate(ctx, db))

	images, err := media.NewStore(conf.Media.Dir, conf.API.PublicURL)
	panicIfErr("failed to init media store", err)

	store := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db, trm.WithIsolation(sql.LevelReadCommitted))
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	passwords := auth.NewPasswords(conf.Auth.BcryptCost)
	tokens := auth.NewTokens(conf.Auth.Secret, conf.Auth.TokenTTL)

	orderService := service.NewOrderService(logger, txManager, store, orderCache, conf.Orders.Consistency)
	catalogService := service.NewCatalogService(logger, store, images)
	userService := service.NewUserService(logger, store, passwords, tokens)

	authn := middleware.Auth(tokens)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(
		handler.NewHealthHandler(logger, store),
		handler.NewCategoryHandler(logger, authn, catalogService),
		handler.NewProductHandler(logger, authn, catalogService, conf.Media.MaxUploadSize),
		handler.NewUserHandler(logger, authn, userService),
		handler.NewOrderHandler(logger, authn, orderService),
	)
	if conf.Kafka.Enabled {
		handler.RegisterMetrics()
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}
	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})
	app.SetWaiters(orderService)

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

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
