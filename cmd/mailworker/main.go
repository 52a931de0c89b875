package main

import (
	"context"
	"log/slog"
	"os"

	"storepulse/config"
	"storepulse/internal/delivery"
	"storepulse/internal/delivery/worker"
	logs "storepulse/internal/infra/log"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type startWorkerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	_ = godotenv.Load()

	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(
			startWorker,
		),
	).Run()
}

func startWorker(ctx context.Context, params startWorkerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
