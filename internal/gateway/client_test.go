package gateway

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saikothasan/neno/internal/config"
	"github.com/saikothasan/neno/internal/models"
)

func intPtr(i int) *int { return &i }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, url string, timeout time.Duration) *Client {
	t.Helper()
	c, err := NewClient(discardLogger(), config.UpstreamConfig{URL: url, Timeout: timeout})
	require.NoError(t, err)
	return c
}

type failingTransport struct {
	calls atomic.Int32
}

func (f *failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	f.calls.Add(1)
	return nil, errors.New("unexpected network call")
}

func TestFetch_QueryParameters(t *testing.T) {
	tests := []struct {
		name      string
		req       models.GenerationRequest
		wantQuery string
	}{
		{
			name:      "required only",
			req:       models.GenerationRequest{Type: models.KindUsername, Count: intPtr(3), Platform: "twitter"},
			wantQuery: "type=username&count=3&platform=twitter",
		},
		{
			name:      "empty optionals omitted",
			req:       models.GenerationRequest{Type: models.KindName, Count: intPtr(1), Platform: "github", Theme: "", Purpose: ""},
			wantQuery: "type=name&count=1&platform=github",
		},
		{
			name:      "theme and purpose appended in order",
			req:       models.GenerationRequest{Type: models.KindBoth, Count: intPtr(10), Platform: "twitch", Theme: "sci-fi", Purpose: "gaming channel"},
			wantQuery: "type=both&count=10&platform=twitch&theme=sci-fi&purpose=gaming+channel",
		},
		{
			name:      "purpose without theme",
			req:       models.GenerationRequest{Type: models.KindBoth, Count: intPtr(2), Platform: "reddit", Purpose: "alt"},
			wantQuery: "type=both&count=2&platform=reddit&purpose=alt",
		},
		{
			name:      "custom platform resolved",
			req:       models.GenerationRequest{Type: models.KindUsername, Count: intPtr(2), Platform: models.CustomPlatform, CustomPlatform: "bluesky"},
			wantQuery: "type=username&count=2&platform=bluesky",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			var gotQuery, gotAccept, gotMethod string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				gotQuery = r.URL.RawQuery
				gotAccept = r.Header.Get("Accept")
				gotMethod = r.Method
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[]`))
			}))
			defer srv.Close()

			c := newTestClient(t, srv.URL+"/", time.Second)
			body, err := c.Fetch(context.Background(), &tt.req)
			require.NoError(t, err)

			assert.Equal(t, `[]`, string(body))
			assert.Equal(t, int32(1), calls.Load())
			assert.Equal(t, tt.wantQuery, gotQuery)
			assert.Equal(t, "application/json", gotAccept)
			assert.Equal(t, http.MethodGet, gotMethod)
		})
	}
}

func TestFetch_ReturnsBodyUnmodified(t *testing.T) {
	payload := `{"warning":true,"rawResponse":{"response":"[{\"username\":\"x\"}]"}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Cache-Control"), "no-store")
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, time.Second)
	body, err := c.Fetch(context.Background(), &models.GenerationRequest{Type: models.KindUsername, Count: intPtr(1), Platform: "x"})
	require.NoError(t, err)
	assert.Equal(t, payload, string(body))
}

func TestFetch_ValidationErrorMakesNoCall(t *testing.T) {
	tests := []struct {
		name string
		req  models.GenerationRequest
	}{
		{"missing type", models.GenerationRequest{Count: intPtr(3), Platform: "twitter"}},
		{"missing platform", models.GenerationRequest{Type: models.KindBoth, Count: intPtr(3)}},
		{"missing count", models.GenerationRequest{Type: models.KindBoth, Platform: "twitter"}},
		{"bad type", models.GenerationRequest{Type: "alias", Count: intPtr(3), Platform: "twitter"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := &failingTransport{}
			c, err := NewClient(discardLogger(),
				config.UpstreamConfig{URL: "http://upstream.invalid/", Timeout: time.Second},
				WithHTTPClient(&http.Client{Transport: transport}),
			)
			require.NoError(t, err)

			body, err := c.Fetch(context.Background(), &tt.req)
			assert.Nil(t, body)
			assert.ErrorIs(t, err, models.ErrValidation)
			assert.Equal(t, int32(0), transport.calls.Load())
		})
	}
}

func TestFetch_Timeout(t *testing.T) {
	released := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
			close(released)
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 50*time.Millisecond)

	start := time.Now()
	_, err := c.Fetch(context.Background(), &models.GenerationRequest{Type: models.KindName, Count: intPtr(2), Platform: "twitter"})

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrTimeout)
	assert.NotErrorIs(t, err, models.ErrConnection)
	assert.Equal(t, models.ErrTimeout.Error(), err.Error())
	assert.Less(t, time.Since(start), 2*time.Second)

	select {
	case <-released:
	case <-time.After(2 * time.Second):
		t.Fatal("upstream request was not cancelled after the deadline")
	}
}

func TestFetch_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url, time.Second)
	_, err := c.Fetch(context.Background(), &models.GenerationRequest{Type: models.KindName, Count: intPtr(2), Platform: "twitter"})

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrConnection)
	assert.Equal(t, http.StatusInternalServerError, models.StatusCode(err))
}

func TestFetch_UpstreamStatusPassedThrough(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusServiceUnavailable} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				http.Error(w, "nope", status)
			}))
			defer srv.Close()

			c := newTestClient(t, srv.URL, time.Second)
			_, err := c.Fetch(context.Background(), &models.GenerationRequest{Type: models.KindName, Count: intPtr(2), Platform: "twitter"})

			var upstreamErr *models.UpstreamError
			require.ErrorAs(t, err, &upstreamErr)
			assert.Equal(t, status, upstreamErr.StatusCode)
			assert.Equal(t, status, models.StatusCode(err))
			assert.Equal(t, int32(1), calls.Load(), "no retry expected")
		})
	}
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient(discardLogger(), config.UpstreamConfig{URL: "not a url", Timeout: time.Second})
	assert.Error(t, err)

	_, err = NewClient(discardLogger(), config.UpstreamConfig{URL: "http://ok/", Timeout: 0})
	assert.Error(t, err)
}
