// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paperscout/pkg/types"
)

func testCfg() types.HTTPConfig {
	return types.HTTPConfig{
		Timeout:   10 * time.Second,
		UserAgent: "test/0.1",
	}
}

func TestGet_Success(t *testing.T) {
	var gotUA, gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotQuery = r.URL.Query().Get("term")
		io.WriteString(w, "hello")
	}))
	defer ts.Close()

	params := url.Values{"term": {"cancer immunotherapy"}}
	body, err := Get(context.Background(), ts.Client(), ts.URL, params, testCfg())
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.Equal(t, "test/0.1", gotUA)
	assert.Equal(t, "cancer immunotherapy", gotQuery)
}

func TestGet_NoParams(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	body, err := Get(context.Background(), ts.Client(), ts.URL, nil, testCfg())
	require.NoError(t, err)
	body.Close()
}

func TestGet_NonSuccessStatus(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError} {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		}))

		_, err := Get(context.Background(), ts.Client(), ts.URL, nil, testCfg())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP")
		ts.Close()
	}
}

func TestGet_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(time.Second)
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := Get(ctx, ts.Client(), ts.URL, nil, testCfg())
	assert.Error(t, err)
}
