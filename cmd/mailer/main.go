// Command mailer consumes password.reset messages and delivers them.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/iliyamo/timekeeper/internal/config"
	"github.com/iliyamo/timekeeper/internal/logger"
	"github.com/iliyamo/timekeeper/internal/queue"
)

func main() {
	cfg := config.Load()
	lg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := &queue.Consumer{
		URL:    cfg.AMQPURL,
		Sender: queue.LogSender{Log: lg.Named("sender")},
		Log:    lg.Named("consumer"),
	}
	lg.Info("consuming", zap.String("queue", queue.PasswordResetQueue))
	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("consumer stopped", zap.Error(err))
	}
}
