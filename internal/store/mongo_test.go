package store

import (
	"context"
	"testing"
	"time"

	"github.com/lamijafatic/blog-website-api/internal/config"
	"github.com/lamijafatic/blog-website-api/internal/logger"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmongodb "github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// testMongo starts a disposable MongoDB container and returns its URI.
func testMongo(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping MongoDB container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tcmongodb.Run(ctx, "mongo:6")
	if err != nil {
		t.Fatalf("could not start mongodb container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Fatalf("could not terminate container: %v", err)
		}
	})

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %s", err)
	}
	return uri
}

func TestMongoStorages(t *testing.T) {
	uri := testMongo(t)
	ctx := context.Background()

	s, err := NewStorages(ctx, config.DB{URI: uri, Name: "blog-test", ConnectTimeout: 10 * time.Second}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(ctx) })

	testRepositories(t, s)
}

// TestMongoStorages_MigrateTwice reopens the same database, which must
// leave the already applied migrations untouched.
func TestMongoStorages_MigrateTwice(t *testing.T) {
	uri := testMongo(t)
	ctx := context.Background()
	cfg := config.DB{URI: uri, Name: "blog-migrate", ConnectTimeout: 10 * time.Second}

	first, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Close(ctx))

	second, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, second.Close(ctx))
}

func TestNewConnectMongo_Unreachable(t *testing.T) {
	_, err := NewConnectMongo(context.Background(), config.DB{
		URI:            "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200",
		Name:           "none",
		ConnectTimeout: time.Second,
	}, logger.Nop())
	require.ErrorIs(t, err, ErrConnecting)
}
