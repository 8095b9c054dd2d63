package integration

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func mustConnectDB(t *testing.T, parent context.Context, candidates []string) (*pgxpool.Pool, string) {
	t.Helper()

	var errs []string
	for _, dsn := range uniqueNonEmpty(candidates...) {
		ctx, cancel := context.WithTimeout(parent, 5*time.Second)
		db, err := pgxpool.New(ctx, dsn)
		if err != nil {
			cancel()
			errs = append(errs, fmt.Sprintf("%s -> new pool: %v", redactedDSN(dsn), err))
			continue
		}
		if err := db.Ping(ctx); err != nil {
			cancel()
			db.Close()
			errs = append(errs, fmt.Sprintf("%s -> ping: %v", redactedDSN(dsn), err))
			continue
		}
		cancel()
		return db, dsn
	}

	t.Fatalf(
		"cannot connect to postgres. tried DSNs:\n- %s\nhint: run `docker compose up -d postgres` and ensure host port 5432 is exposed",
		strings.Join(errs, "\n- "),
	)
	return nil, ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func uniqueNonEmpty(values ...string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func redactedDSN(dsn string) string {
	at := strings.LastIndex(dsn, "@")
	scheme := strings.Index(dsn, "://")
	if at == -1 || scheme == -1 || at <= scheme+3 {
		return dsn
	}
	return dsn[:scheme+3] + "***:***" + dsn[at:]
}

func waitForAPIReady(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()

	deadline := time.Now().Add(20 * time.Second)
	for time.Now().Before(deadline) {
		req, err := http.NewRequest(http.MethodGet, baseURL+"/health", nil)
		if err == nil {
			resp, err := client.Do(req)
			if err == nil {
				_ = resp.Body.Close()
				if resp.StatusCode == http.StatusOK {
					return
				}
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("api not ready: GET %s/health did not return 200 in time", baseURL)
}

// loadDotEnv walks up from the working directory and loads the first .env found.
// Variables already set in the environment win.
func loadDotEnv(t *testing.T) {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		return
	}
	for i := 0; i < 8; i++ {
		candidate := filepath.Join(dir, ".env")
		if _, err := os.Stat(candidate); err == nil {
			if err := godotenv.Load(candidate); err != nil {
				t.Logf("ignoring %s: %v", candidate, err)
			}
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
