package integration_test

import (
	"os"
	"sync"
	"testing"

	"mentorhub_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer returns the shared test server, skipping the test when
// no test database is configured.
func GetTestServer(t *testing.T) *helpers.TestServer {
	t.Helper()

	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration tests")
	}

	serverOnce.Do(func() {
		if os.Getenv("JWT_SECRET") == "" {
			os.Setenv("JWT_SECRET", "integration-test-secret")
		}
		os.Setenv("SERVER_ENV", "test")
		globalTestServer = helpers.NewTestServer(t)
	})
	return globalTestServer
}
