package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/property-browser/internal/apiclient"
	"github.com/tair/property-browser/internal/config"
)

func newAPI(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckAllHealthy(t *testing.T) {
	api := newAPI(t, http.StatusOK)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	client := apiclient.New(config.APIConfig{BaseURLs: []string{api.URL}, Timeout: time.Second})
	checker := NewChecker("property-browser", client, config.PropertiesPath, rdb)

	report := checker.CheckAll(context.Background())

	assert.Equal(t, StatusHealthy, report.Status)
	require.Len(t, report.Components, 2)
	assert.Equal(t, StatusHealthy, report.Components["redis"].Status)
	assert.Equal(t, apiclient.StateClosed, report.Breaker["state"])
}

func TestCheckAllDegraded(t *testing.T) {
	up := newAPI(t, http.StatusOK)
	down := newAPI(t, http.StatusServiceUnavailable)

	client := apiclient.New(config.APIConfig{BaseURLs: []string{up.URL, down.URL}, Timeout: time.Second})
	checker := NewChecker("property-browser", client, config.PropertiesPath, nil)

	report := checker.CheckAll(context.Background())

	assert.Equal(t, StatusDegraded, report.Status)
	assert.Equal(t, StatusUnhealthy, report.Components["api:"+down.URL].Status)
	assert.NotEmpty(t, report.Components["api:"+down.URL].Error)
}

func TestCheckAllUnhealthy(t *testing.T) {
	api := newAPI(t, http.StatusOK)
	api.Close()

	client := apiclient.New(config.APIConfig{BaseURLs: []string{api.URL}, Timeout: time.Second})
	checker := NewChecker("property-browser", client, config.PropertiesPath, nil)

	report := checker.CheckAll(context.Background())

	assert.Equal(t, StatusUnhealthy, report.Status)
}
