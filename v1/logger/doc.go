// Package logger provides the zap-backed structured logger used across this
// module.
//
// # Direct Usage
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:         logger.Info,
//		EnableTracing: true,
//	})
//
//	log.Info("collection created", nil, map[string]interface{}{
//		"collection_id": "clt_01",
//	})
//
//	// trace_id and span_id are added when ctx carries a span
//	log.ErrorWithContext(ctx, "search failed", err, map[string]interface{}{
//		"collection_id": "clt_01",
//	})
//
// A *Logger satisfies needle.Logger and can be handed to the Needle client
// through needle.Config.Logger or the fx container.
//
// # FX Module Integration
//
//	app := fx.New(
//		fx.Supply(logger.Config{Level: logger.Debug}),
//		logger.FXModule,
//		needle.FXModule,
//	)
//
// # Configuration
//
//	ZAP_LOGGER_LEVEL=debug          # debug, info, warning, error
//	LOGGER_ENABLE_TRACING=true      # add trace_id/span_id in *WithContext methods
//	LOGGER_SERVICE_NAME=indexer     # "service" field, default needle-client
//
// All methods are safe for concurrent use.
package logger
