package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"library-api/internal/config"
	"library-api/pkg/container"
)

// newTestAPI builds a router backed by an isolated in-memory store
// loaded with the seed fixture (9 authors, 15 books).
func newTestAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App: config.AppConfig{
			Name:        "Library Catalog API",
			Environment: "test",
			Port:        "8080",
		},
		Database: config.DatabaseConfig{TestMode: true},
	}

	c, err := container.NewContainerWithConfig(cfg)
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)

	require.NoError(t, c.DB.Reset(context.Background()))

	return SetupRouter(c)
}

// doRequest performs a request against the router and returns the
// recorded response.
func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals the recorded JSON body into dst.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst))
}

func getJSON(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	return doRequest(t, router, http.MethodGet, path, nil)
}
