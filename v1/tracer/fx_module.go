package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/needle-ai/needle-go/v1/logger"
)

// FXModule provides *Tracer from a tracer.Config in the container and shuts
// the provider down, flushing pending spans, when the application stops.
//
//	app := fx.New(
//	    fx.Supply(tracer.Config{ServiceName: "indexer", EnableExport: true}),
//	    logger.FXModule,
//	    tracer.FXModule,
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClientWithDI,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// TracerParams groups the dependencies of NewClientWithDI.
type TracerParams struct {
	fx.In

	Config Config
	Logger *logger.Logger `optional:"true"`
}

// NewClientWithDI adapts NewClient to fx.
func NewClientWithDI(p TracerParams) (*Tracer, error) {
	var l Logger
	if p.Logger != nil {
		l = p.Logger
	}
	return NewClient(p.Config, l)
}

// RegisterTracerLifecycle shuts the provider down on application stop.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if tracer.logger != nil {
				tracer.logger.Info("shutting down tracer", nil, nil)
			}
			return tracer.Shutdown(ctx)
		},
	})
}
