package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSON(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "ok", status: http.StatusOK, body: `{"title":"Dune"}`},
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: ErrRateLimited},
		{name: "server error", status: http.StatusBadGateway, wantErr: ErrServer},
		{name: "other status", status: http.StatusForbidden, wantErr: ErrStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := New(Options{}, zerolog.Nop())
			var got struct {
				Title string `json:"title"`
			}
			err := c.GetJSON(context.Background(), server.URL, &got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Dune", got.Title)
		})
	}
}

func TestGetJSON_InvalidBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	var dest map[string]any
	err := New(Options{}, zerolog.Nop()).GetJSON(context.Background(), server.URL, &dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse response")
}

func TestGetJSON_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	var dest map[string]any
	err := New(Options{Timeout: 20 * time.Millisecond}, zerolog.Nop()).GetJSON(context.Background(), server.URL, &dest)
	assert.Error(t, err)
}

func TestGetJSON_CanceledWhileWaitingForLimiter(t *testing.T) {
	c := New(Options{RequestsPerMinute: 1, Burst: 1}, zerolog.Nop())
	require.True(t, c.limiter.Allow())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var dest map[string]any
	err := c.GetJSON(ctx, "http://127.0.0.1:1", &dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
}
