package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/agustin-pizzeria/order-service/docs"
	"github.com/agustin-pizzeria/order-service/internal/app"
	"github.com/agustin-pizzeria/order-service/internal/config"
	"github.com/agustin-pizzeria/order-service/internal/handler"
	"github.com/agustin-pizzeria/order-service/internal/notify"
	"github.com/agustin-pizzeria/order-service/internal/postgres"
	"github.com/agustin-pizzeria/order-service/internal/repo"
	"github.com/agustin-pizzeria/order-service/internal/service"
	"github.com/agustin-pizzeria/order-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Pizzeria Order Service API
// @version         1.0
// @description     HTTP API for the Agustin Pizzeria ordering service
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to apply migrations", postgres.Migrate(db))

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	notifier := notify.NewKafkaNotifier(logger, conf.Kafka)

	catalogService := service.NewCatalogService(logger, orderRepo)
	orderService := service.NewOrderService(logger, txManager, orderRepo, orderRepo, notifier)

	httpHandler := handler.NewHTTPHandler(logger, catalogService, orderService)
	handler.RegisterMetrics()

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler)
	app.SetClosers(notifier)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app.Start()
	<-ctx.Done()
	app.Stop()
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
