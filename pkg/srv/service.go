package srv

import (
	"context"
	"errors"

	"github.com/rmmentors/alicia/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Run starts every service, waits until the context is cancelled or any
// service returns, then shuts all of them down in order.
func Run(ctx context.Context, services []Service) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := log.FromCtx(ctx)
	for _, service := range services {
		go func(service Service) {
			if err := service.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error().Err(err).Msgf("%T stopped", service)
			}
			cancel()
		}(service)
	}

	<-ctx.Done()
	for _, service := range services {
		if err := service.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msgf("%T failed to shutdown", service)
		}
	}
}
