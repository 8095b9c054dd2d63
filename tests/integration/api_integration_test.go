package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAPI_ProjectionFlow runs against a live server, e.g. one started with docker compose.
func TestAPI_ProjectionFlow(t *testing.T) {
	loadDotEnv(t)
	baseURL := strings.TrimRight(os.Getenv("VIABILITY_API_BASE_URL"), "/")
	if baseURL == "" {
		t.Skip("VIABILITY_API_BASE_URL not set; skipping integration test")
	}

	client := &http.Client{Timeout: 30 * time.Second}
	waitForAPIReady(t, client, baseURL)

	body, _ := json.Marshal(map[string]any{"scenario": "realistic", "variant": "logistic"})
	resp, err := client.Post(baseURL+"/api/projections", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report struct {
		Months []json.RawMessage `json:"months"`
		Audits []json.RawMessage `json:"audits"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Len(t, report.Months, 36)
	assert.Len(t, report.Audits, 3)

	csvResp, err := client.Get(baseURL + "/api/audits/export.csv?scenario=pessimistic")
	require.NoError(t, err)
	defer csvResp.Body.Close()
	require.Equal(t, http.StatusOK, csvResp.StatusCode)
	raw, err := io.ReadAll(csvResp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("\ufeffAno;GMV;")))
}
