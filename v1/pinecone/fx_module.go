package pinecone

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the Pinecone client into Fx.
//
// It provides:
//   - *Config                (NewConfigFromEnv)
//   - *Client                (NewClient)
//   - Lifecycle hook         (RegisterClientLifecycle)
//
// Usage:
//
//	app := fx.New(
//	    pinecone.FXModule,
//	    // other modules...
//	)
//
// Supply a pinecone.Params with a custom Config or HTTP client to override
// the environment-based defaults.
var FXModule = fx.Module("pinecone",
	fx.Provide(
		NewConfigFromEnv, // -> *Config
		NewClient,        // -> *Client
	),
	fx.Invoke(RegisterClientLifecycle),
)

// RegisterClientLifecycle ensures the client is released on application
// shutdown.
func RegisterClientLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
