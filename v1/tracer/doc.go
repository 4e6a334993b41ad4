// Package tracer sets up OpenTelemetry tracing for applications using the
// Needle client.
//
// NewClient installs an SDK TracerProvider (optionally exporting over
// OTLP/HTTP) as the global provider. Handing the resulting *Tracer to
// needle.Client.WithTracer wraps every API call in a span named
// "needle.<operation>"; the HTTP transport adds a child client span and
// propagates the trace context to the Needle API.
//
//	tr, err := tracer.NewClient(tracer.Config{
//		ServiceName:  "indexer",
//		AppEnv:       "production",
//		EnableExport: true,
//	}, log)
//	if err != nil {
//		return err
//	}
//	defer tr.Shutdown(ctx)
//
//	client = client.WithTracer(tr)
//
// Carrier helpers (GetCarrier, SetCarrierOnContext) move the trace context
// across process boundaries that are not HTTP, such as message headers.
package tracer
