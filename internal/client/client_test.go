package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockspiral/internal/core"
	"github.com/vovakirdan/blockspiral/internal/placement"
	"github.com/vovakirdan/blockspiral/internal/server"
	"github.com/vovakirdan/blockspiral/internal/spiral"
	"github.com/vovakirdan/blockspiral/internal/storage"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
		want    string
	}{
		{"http", "http://localhost:8080", false, "http://localhost:8080/blocks"},
		{"trailing slash", "https://example.com/api/", false, "https://example.com/api/blocks"},
		{"surrounding spaces", "  http://127.0.0.1:9000  ", false, "http://127.0.0.1:9000/blocks"},
		{"empty", "", true, ""},
		{"no scheme", "localhost:8080", true, ""},
		{"ftp", "ftp://example.com", true, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := New(Config{BaseURL: tc.baseURL})
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.Endpoint())
		})
	}
}

func TestRequests(t *testing.T) {
	var gotMethod, gotPath, gotAgent, gotType string
	var gotBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		gotType = r.Header.Get("Content-Type")
		gotBody = nil
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
		}

		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`[{"id":"a","position":{"x":0,"y":0},"color":"#ff0000"},{"position":{"x":1,"y":0},"color":"#00ff00"}]`))
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"new","position":{"x":1,"y":1},"color":"#abcdef"}`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer ts.Close()

	c, err := New(Config{BaseURL: ts.URL, UserAgent: "blockspiral-test"})
	require.NoError(t, err)
	ctx := context.Background()

	blocks, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/blocks", gotPath)
	assert.Equal(t, "blockspiral-test", gotAgent)
	require.Len(t, blocks, 2)
	assert.Equal(t, "a", blocks[0].ID)
	assert.Empty(t, blocks[1].ID)
	assert.Equal(t, core.RGB(0, 0xff, 0), blocks[1].Color)

	saved, err := c.Create(ctx, core.Block{ID: "ignored", Position: core.Pos(1, 1), Color: 0xabcdef})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, map[string]any{
		"position": map[string]any{"x": float64(1), "y": float64(1)},
		"color":    "#abcdef",
	}, gotBody)
	assert.Equal(t, "new", saved.ID)

	require.NoError(t, c.Clear(ctx))
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestStatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(strings.Repeat("x", 2*maxErrorBody)))
	}))
	defer ts.Close()

	c, err := New(Config{BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = c.List(context.Background())
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadGateway, se.Code)
	assert.Equal(t, http.MethodGet, se.Method)
	assert.Len(t, se.Body, maxErrorBody)
	assert.Contains(t, se.Error(), "502 Bad Gateway")
}

func TestMalformedResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"`))
	}))
	defer ts.Close()

	c, err := New(Config{BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = c.List(context.Background())
	assert.ErrorContains(t, err, "decode")
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	c, err := New(Config{BaseURL: ts.URL, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	err = c.Clear(context.Background())
	require.Error(t, err)
	var se *StatusError
	assert.False(t, errors.As(err, &se))
}

func TestControllerAgainstServer(t *testing.T) {
	store, err := storage.Open(storage.MemoryPath)
	require.NoError(t, err)
	defer store.Close()

	ts := httptest.NewServer(server.New(store, server.DefaultConfig()).Handler())
	defer ts.Close()

	c, err := New(Config{BaseURL: ts.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	ctx := context.Background()

	ctrl := placement.NewController(c, placement.WithColors(placement.NewRandomColors(7)))
	require.NoError(t, ctrl.Load(ctx))
	for range 7 {
		_, err := ctrl.Place(ctx)
		require.NoError(t, err)
	}

	// A fresh controller over the same store resumes where the first stopped.
	resumed := placement.NewController(c, placement.WithColors(placement.NewRandomColors(8)))
	require.NoError(t, resumed.Load(ctx))
	assert.Equal(t, ctrl.Blocks(), resumed.Blocks())
	for range 5 {
		_, err := resumed.Place(ctx)
		require.NoError(t, err)
	}

	blocks := resumed.Blocks()
	want := spiral.Sequence(12)
	require.Len(t, blocks, len(want))
	for i, b := range blocks {
		assert.Equal(t, want[i], b.Position, "block %d", i)
		assert.NotEmpty(t, b.ID)
		if i > 0 {
			assert.NotEqual(t, blocks[i-1].Color, b.Color, "block %d", i)
		}
	}

	require.NoError(t, resumed.Clear(ctx))
	listed, err := c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestControllerReportsStoreRejection(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Write([]byte(`[]`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"disk full"}`))
	}))
	defer ts.Close()

	c, err := New(Config{BaseURL: ts.URL})
	require.NoError(t, err)
	ctx := context.Background()

	ctrl := placement.NewController(c)
	require.NoError(t, ctrl.Load(ctx))

	_, err = ctrl.Place(ctx)
	require.ErrorIs(t, err, placement.ErrPlace)
	assert.Empty(t, ctrl.Blocks())
	assert.Equal(t, spiral.Initial(), ctrl.Cursor())
	assert.Contains(t, placement.UserMessage(err), "Could not add block")
	assert.Contains(t, placement.UserMessage(err), "disk full")
}
