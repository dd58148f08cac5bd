// Package tracer provides distributed tracing for the Pinecone client using
// OpenTelemetry.
//
// It wraps the OpenTelemetry TracerProvider behind a small API for creating
// spans, recording errors, and attaching attributes. The pinecone client
// accepts a *Tracer via WithTracer and opens one span per outbound request,
// named "pinecone.<operation>" and annotated with the HTTP method and URL.
//
// Basic usage:
//
//	log := logger.NewLoggerClient(logger.DefaultConfig())
//
//	tracerClient := tracer.NewClient(tracer.Config{
//	    ServiceName:  "my-service",
//	    AppEnv:       "development",
//	    EnableExport: true,
//	}, log)
//
//	client = client.WithTracer(tracerClient)
//
// Export goes through the OTLP HTTP exporter and honors the standard
// OTEL_EXPORTER_OTLP_* environment variables.
package tracer
