package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/starkdipesh/portfolio-api/internal/config"
	"github.com/starkdipesh/portfolio-api/internal/portfolio"
	"github.com/starkdipesh/portfolio-api/internal/tokens"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:     "test-secret",
			AdminPassword: "admin123",
			TokenTTL:      24 * time.Hour,
		},
	}
}

// newTestRouter wires every handler onto an in-memory store, mirroring the
// route registration in main.
func newTestRouter(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	cfg := testConfig()
	svc := portfolio.NewService(portfolio.NewMemoryStore())

	r := gin.New()
	api := r.Group("/api")
	NewAuthHandler(cfg).Register(api)
	NewPersonalInfoHandler(cfg, svc).Register(api)
	NewProjectsHandler(cfg, svc).Register(api)
	NewWorkExperienceHandler(cfg, svc).Register(api)
	NewTestimonialsHandler(cfg, svc).Register(api)
	NewSingletonHandler(cfg, svc).Register(api)
	NewContactHandler(cfg, svc).Register(api)
	return r, cfg
}

func adminToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := tokens.GenerateAdminToken(cfg)
	require.NoError(t, err)
	return token
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
