package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st := store.NewMemoryStore()
	require.NoError(t, st.Put(context.Background(), "2021-06-19", "cigar"))
	require.NoError(t, st.Put(context.Background(), "2024-03-01", "fable"))
	srv := httptest.NewServer(New(st, words.New([]string{"fable", "cable"})).Router())
	t.Cleanup(srv.Close)
	return srv
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
}

func TestPuzzle_Cached(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/svc/wordle/v2/2021-06-19.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var p daily.Puzzle
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.Equal(t, "cigar", p.Solution)
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, 0, p.DaysSinceLaunch)
	assert.Equal(t, "2021-06-19", p.PrintDate)
}

func TestPuzzle_Errors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"uncached", "/svc/wordle/v2/2099-01-01.json", http.StatusNotFound},
		{"bad date", "/svc/wordle/v2/yesterday.json", http.StatusBadRequest},
		{"no extension", "/svc/wordle/v2/2024-03-01", http.StatusNotFound},
		{"unknown route", "/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			var f daily.Failure
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&f))
			assert.Equal(t, "ERROR", f.Status)
		})
	}
}

func TestDictionary(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/dictionary")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "cable\nfable\n", string(body))
}

func TestMirrorServesDailyClient(t *testing.T) {
	srv := newTestServer(t)
	c := daily.NewClient(srv.URL+"/svc/wordle/v2", time.Second)

	p, err := c.Puzzle(context.Background(), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "fable", p.Solution)

	_, err = c.Puzzle(context.Background(), time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, daily.ErrNotPublished)
}

func TestServe_StopsWhenContextDone(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	s := New(store.NewMemoryStore(), words.New([]string{"fable"}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server still running after cancel")
	}
}

func TestStart_BadAddress(t *testing.T) {
	s := New(store.NewMemoryStore(), words.New(nil))

	err := s.Start(context.Background(), "127.0.0.1:-1")
	assert.Error(t, err)
}
