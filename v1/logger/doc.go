// Package logger provides structured logging for this module, backed by
// Uber's Zap.
//
// The wrapper exposes a small field-map calling convention shared by every
// client package here:
//
//	log := logger.NewLoggerClient(logger.DefaultConfig())
//	log.Info("query finished", nil, map[string]interface{}{
//	    "index": "documents",
//	    "top_k": 10,
//	})
//
// The pinecone client accepts any implementation of its Logger interface;
// *Logger satisfies it directly:
//
//	client, _ := pinecone.NewClient(pinecone.Params{
//	    Config: cfg,
//	    Logger: log,
//	})
//
// For Fx applications, FXModule provides the logger and registers a shutdown
// hook that flushes buffered entries.
package logger
