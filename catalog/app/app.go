package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/library-catalog/catalog/config"
	"github.com/Astemirdum/library-catalog/catalog/internal/audit"
	"github.com/Astemirdum/library-catalog/catalog/internal/handler"
	"github.com/Astemirdum/library-catalog/catalog/internal/notify"
	"github.com/Astemirdum/library-catalog/catalog/internal/repository"
	"github.com/Astemirdum/library-catalog/catalog/internal/server"
	"github.com/Astemirdum/library-catalog/catalog/internal/service"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
	"github.com/Astemirdum/library-catalog/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "catalog")
	defer log.Sync() //nolint:errcheck

	// collections live exactly as long as the process
	repo := repository.NewRepository(log)
	rec := audit.NewRecorder(repo, log)

	var notifyOpts []notify.Option
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return errors.Wrap(err, "kafka.NewProducer")
		}
		notifyOpts = append(notifyOpts, notify.WithProducer(producer, cfg.Kafka.CirculationTopic))
		log.Info("circulation events published", zap.Strings("brokers", cfg.Kafka.Addrs),
			zap.String("topic", cfg.Kafka.CirculationTopic))
	}
	notifier := notify.New(log, notifyOpts...)

	catalogSvc := service.NewCatalog(repo, rec, log)
	circulationSvc := service.NewCirculation(repo, rec, notifier, log)

	h := handler.New(catalogSvc, circulationSvc, rec, log, handler.WithRateLimit(cfg.Server.RateLimitRPS))
	srv := server.NewServer(cfg.Server, h.NewRouter())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr",
				net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		return srv.Run()
	})
	gg.Go(func() error {
		<-ctx.Done()
		log.Debug("Graceful shutdown", zap.Error(context.Cause(ctx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		if err := srv.Stop(closeCtx); err != nil {
			log.Error("srv.Stop", zap.Error(err))
		}
		if err := notifier.Close(); err != nil {
			log.Error("notifier.Close", zap.Error(err))
		}
		return nil
	})

	if err := gg.Wait(); err != nil {
		return errors.Wrap(err, "server run")
	}
	log.Info("Graceful shutdown finished")
	return nil
}
