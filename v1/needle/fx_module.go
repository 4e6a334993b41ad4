package needle

import (
	"context"

	"go.uber.org/fx"

	"github.com/needle-ai/needle-go/v1/logger"
	"github.com/needle-ai/needle-go/v1/observability"
	"github.com/needle-ai/needle-go/v1/tracer"
)

// FXModule provides *Client, plus the Collections, CollectionFiles and Files
// interfaces, from a needle.Config in the container. A *logger.Logger,
// observability.Observer and *tracer.Tracer are picked up when present.
//
//	app := fx.New(
//	    fx.Provide(needle.NewConfig),
//	    logger.FXModule,
//	    fx.Supply(logger.Config{Level: logger.Info}),
//	    needle.FXModule,
//	    fx.Invoke(func(c needle.Collections) { ... }),
//	)
var FXModule = fx.Module("needle",
	fx.Provide(
		NewClientWithDI,
		func(c *Client) Collections { return c.Collections },
		func(c *Client) CollectionFiles { return c.Collections.Files },
		func(c *Client) Files { return c.Files },
	),
	fx.Invoke(RegisterNeedleLifecycle),
)

// NeedleParams groups the dependencies of NewClientWithDI.
type NeedleParams struct {
	fx.In

	Config   Config
	Logger   *logger.Logger         `optional:"true"`
	Observer observability.Observer `optional:"true"`
	Tracer   *tracer.Tracer         `optional:"true"`
}

// NewClientWithDI adapts NewClient to fx.
func NewClientWithDI(p NeedleParams) (*Client, error) {
	if p.Logger != nil {
		p.Config.Logger = p.Logger
	}

	client, err := NewClient(p.Config)
	if err != nil {
		return nil, err
	}
	if p.Observer != nil {
		client.WithObserver(p.Observer)
	}
	if p.Tracer != nil {
		client.WithTracer(p.Tracer)
	}
	return client, nil
}

// RegisterNeedleLifecycle closes idle connections when the application stops.
func RegisterNeedleLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
