package pinecone_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/MikaAK/pinecone/v1/pinecone"
)

func TestFXModule(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"indexes":[]}`))
	}))
	t.Cleanup(server.Close)

	t.Setenv("PINECONE_API_KEY", "test-key")
	t.Setenv("PINECONE_CONTROLLER_HOST", server.URL)

	var client *pinecone.Client
	app := fxtest.New(t,
		pinecone.FXModule,
		fx.Populate(&client),
	)

	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, client)

	result, err := client.ListIndexes(context.Background())
	require.NoError(t, err)
	require.True(t, result.Success)
}

func TestFXModuleInvalidConfig(t *testing.T) {
	t.Setenv("PINECONE_API_KEY", "")

	var client *pinecone.Client
	app := fx.New(
		pinecone.FXModule,
		fx.Populate(&client),
		fx.NopLogger,
	)

	require.Error(t, app.Err())
}
