// cmd/fx/session_fx/init.go
package session_fx

import (
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"tripscout/internal/repositories"
)

const sessionTTL = 30 * time.Minute

var Module = fx.Provide(
	ProvideSessionStore)

// ProvideSessionStore picks the session backend. SESSION_STORE=redis enables
// the shared Redis store (multi-instance deployments); anything else falls
// back to the in-process store.
func ProvideSessionStore() repositories.SessionStore {
	if os.Getenv("SESSION_STORE") != "redis" {
		return repositories.NewMemorySessionStore(sessionTTL)
	}

	opts, err := redis.ParseURL(getEnvWithDefault("REDIS_URL", "redis://localhost:6379"))
	if err != nil {
		log.Fatalf("Invalid REDIS_URL: %v", err)
	}

	log.Printf("Using Redis session store at %s", opts.Addr)
	return repositories.NewRedisSessionStore(redis.NewClient(opts), sessionTTL)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
