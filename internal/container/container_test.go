package container

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"catalog/admin/internal/apitest"
	"catalog/admin/internal/config"
	"catalog/admin/internal/notify"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 3000, ShutdownTimeout: 1},
		API:    config.APIConfig{BaseURL: baseURL, Timeout: 5},
		Notify: config.NotifyConfig{Store: config.StoreMemory},
		Redis:  config.RedisConfig{TTL: 60},
		UI:     config.UIConfig{Timezone: "America/Sao_Paulo"},
	}
}

func TestNew_MemoryStore(t *testing.T) {
	api := apitest.NewServer()
	defer api.Close()
	logger, _ := test.NewNullLogger()

	c, err := New(testConfig(api.BaseURL()), logger)
	require.NoError(t, err)
	defer c.Close()

	assert.IsType(t, &notify.MemoryStore{}, c.Flash)

	ts := httptest.NewServer(c.Web.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestNew_RedisStore(t *testing.T) {
	api := apitest.NewServer()
	defer api.Close()
	mr := miniredis.RunT(t)
	logger, _ := test.NewNullLogger()

	cfg := testConfig(api.BaseURL())
	cfg.Notify.Store = config.StoreRedis
	cfg.Redis.Host = mr.Host()
	cfg.Redis.Port = atoi(t, mr.Port())

	c, err := New(cfg, logger)
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Flash.Push(context.Background(), "s", notify.Info("ok")))
	assert.True(t, mr.Exists("catalog_admin:flash:s"))
}

func TestNew_RedisUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port := mr.Host(), mr.Port()
	mr.Close()
	logger, _ := test.NewNullLogger()

	cfg := testConfig("http://localhost/api")
	cfg.Notify.Store = config.StoreRedis
	cfg.Redis.Host = host
	cfg.Redis.Port = atoi(t, port)

	_, err := New(cfg, logger)
	assert.ErrorContains(t, err, "failed to connect to Redis")
}

func TestCheck(t *testing.T) {
	api := apitest.NewServer()
	defer api.Close()
	cat := api.SeedCategory("Livros", "")
	api.SeedProduct("Duna", 59.9, 12, cat.ID)
	logger, _ := test.NewNullLogger()

	c, err := New(testConfig(api.BaseURL()), logger)
	require.NoError(t, err)
	defer c.Close()

	stats, err := c.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Categories)
	assert.Equal(t, 1, stats.Products)

	api.Fail(http.MethodGet, "/products", http.StatusInternalServerError, `{"error":"boom"}`)
	_, err = c.Check(context.Background())
	assert.ErrorContains(t, err, "products")
}

func TestRun_StopsOnCancel(t *testing.T) {
	api := apitest.NewServer()
	defer api.Close()
	logger, _ := test.NewNullLogger()

	cfg := testConfig(api.BaseURL())
	cfg.Server.Port = 0

	c, err := New(cfg, logger)
	require.NoError(t, err)
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	cancel()
	assert.NoError(t, <-done)
}

func atoi(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(s)
	require.NoError(t, err)
	return n
}
