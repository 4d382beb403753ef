package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"RepairService/internal/app"
	"RepairService/internal/auth"
	"RepairService/internal/config"
	"RepairService/internal/events"
	"RepairService/internal/handler"
	"RepairService/internal/middleware"
	"RepairService/internal/postgres"
	"RepairService/internal/repo"
	"RepairService/internal/service"
	"RepairService/pkg/cache"
	"RepairService/pkg/trm"

	_ "RepairService/docs"
	"github.com/joho/godotenv"
)

// @title           Repair Service API
// @version         1.0
// @description     HTTP API сервиса учёта заказов на ремонт
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to apply migrations", postgres.Migrate(db))

	ordersRepo := repo.NewOrdersRepo(db)
	usersRepo := repo.NewUsersRepo(db)
	txManager := trm.NewManager(db)
	trackCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	tokens := auth.NewTokenManager(conf.JWT.Secret, conf.JWT.TTL)
	producer := events.NewProducer(logger, conf.Kafka)

	orderService := service.NewOrderService(logger, txManager, ordersRepo, trackCache, producer)
	authService := service.NewAuthService(logger, usersRepo, tokens)

	ordersHandler := handler.NewOrdersHandler(logger, orderService, middleware.Auth(tokens))
	authHandler := handler.NewAuthHandler(logger, authService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(ordersHandler, authHandler)
	app.SetStarters(janitorStarter{cache: trackCache})
	app.SetClosers(producer)

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

type janitorStarter struct {
	cache *cache.LRUCache
}

func (s janitorStarter) Start(ctx context.Context) error {
	s.cache.StartJanitor(ctx)
	return nil
}
