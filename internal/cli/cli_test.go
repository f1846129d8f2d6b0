package cli

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// upstream fakes both the puzzle endpoint and the dictionary download.
func upstream(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/svc/2024-03-01.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":1000,"solution":"fable","print_date":"2024-03-01","days_since_launch":985,"editor":"x"}`)
	})
	mux.HandleFunc("/svc/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"status":"ERROR","errors":["Not Found"],"results":[]}`)
	})
	mux.HandleFunc("/words.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "cable\ntable\ncrane\n")
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// setup points the environment at srv and a temp cache dir and resets flag globals.
func setup(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("WORDLE_CACHE_DIR", dir)
	t.Setenv("WORDLE_CACHE_BACKEND", "file")
	t.Setenv("WORDLE_API_BASE", srv.URL+"/svc")
	t.Setenv("WORDLE_DICTIONARY_URL", srv.URL+"/words.txt")
	t.Setenv("WORDLE_HTTP_TIMEOUT", "2s")
	t.Cleanup(func() {
		cacheDir, cacheBackend = "", ""
		dayFlag, fetchDay = "", ""
		updateDictionary, fetchShow, offline, strict = false, false, false, false
		maxTries = game.DefaultMaxTries
		cfg = nil
	})
	return dir
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := Execute(context.Background())
	return out.String(), errOut.String(), err
}

func TestResolveDay(t *testing.T) {
	now := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)

	d, err := resolveDay("", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", daily.DateKey(d))

	d, err = resolveDay("2022-01-10", now)
	require.NoError(t, err)
	assert.Equal(t, "2022-01-10", daily.DateKey(d))

	_, err = resolveDay("10/01/2022", now)
	assert.ErrorContains(t, err, "YYYY-MM-DD")
}

func TestFetch_CachesWord(t *testing.T) {
	srv := upstream(t)
	dir := setup(t, srv)

	out, _, err := run(t, "fetch", "--day", "2024-03-01", "--show")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-03-01: fable")
	assert.Contains(t, out, "cached days: 1")

	b, err := os.ReadFile(filepath.Join(dir, "2024-03-01"))
	require.NoError(t, err)
	assert.Equal(t, "fable\n", string(b))
}

func TestFetch_NotPublished(t *testing.T) {
	srv := upstream(t)
	setup(t, srv)

	_, errOut, err := run(t, "fetch", "--day", "2099-01-01")
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Contains(t, errOut, "no word for this date yet")
}

func TestUpdateDictionary(t *testing.T) {
	srv := upstream(t)
	dir := setup(t, srv)

	out, _, err := run(t, "--update-dictionary")
	require.NoError(t, err)
	assert.Contains(t, out, "dictionary updated: 3 words")

	d, err := words.Load(filepath.Join(dir, words.FileName))
	require.NoError(t, err)
	assert.True(t, d.Contains("crane"))
}

func TestNewSession_AddsAnswerToDictionary(t *testing.T) {
	srv := upstream(t)
	dir := setup(t, srv)
	cfg = &config.Config{
		CacheDir:      dir,
		CacheBackend:  "sqlite",
		APIBase:       srv.URL + "/svc",
		DictionaryURL: srv.URL + "/words.txt",
		MaxTries:      6,
		HTTPTimeout:   2 * time.Second,
	}

	var errOut bytes.Buffer
	s, err := newSession(context.Background(), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), &errOut)
	require.NoError(t, err)

	assert.Equal(t, 6, s.MaxTries())
	assert.Equal(t, game.OutcomeContinue, s.SubmitGuess("cable").Kind)
	assert.Equal(t, game.OutcomeWin, s.SubmitGuess("fable").Kind)
}

func TestNewSession_NotPublished(t *testing.T) {
	srv := upstream(t)
	dir := setup(t, srv)
	cfg = &config.Config{
		CacheDir:      dir,
		CacheBackend:  "memory",
		APIBase:       srv.URL + "/svc",
		DictionaryURL: srv.URL + "/words.txt",
		MaxTries:      5,
		HTTPTimeout:   2 * time.Second,
	}

	var errOut bytes.Buffer
	_, err := newSession(context.Background(), time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC), &errOut)
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Contains(t, errOut.String(), "no wordle for 2099-01-01 yet")
}

func TestNewSession_OfflineWithEmbeddedDictionary(t *testing.T) {
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer dead.Close()
	setup(t, dead)
	offline = true
	cfg = &config.Config{
		CacheDir:      t.TempDir(),
		CacheBackend:  "memory",
		DictionaryURL: dead.URL,
		MaxTries:      5,
		HTTPTimeout:   time.Second,
		DailySalt:     "salt",
	}

	var errOut bytes.Buffer
	s, err := newSession(context.Background(), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), &errOut)
	require.NoError(t, err)

	answers, err := words.Answers()
	require.NoError(t, err)
	assert.Contains(t, answers, s.Answer())
}

func TestNewSession_RejectsMalformedCache(t *testing.T) {
	srv := upstream(t)
	dir := setup(t, srv)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2024-03-01"), []byte("FAB1E\n"), 0o644))
	cfg = &config.Config{
		CacheDir:      dir,
		CacheBackend:  "file",
		APIBase:       srv.URL + "/svc",
		DictionaryURL: srv.URL + "/words.txt",
		MaxTries:      5,
		HTTPTimeout:   time.Second,
	}

	var errOut bytes.Buffer
	_, err := newSession(context.Background(), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), &errOut)
	assert.ErrorContains(t, err, "malformed")
}

func TestServe_ReturnsOnCancel(t *testing.T) {
	srv := upstream(t)
	setup(t, srv)
	t.Cleanup(func() { serveAddr = "" })

	ctx, cancel := context.WithCancel(context.Background())
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"serve", "--addr", "127.0.0.1:0", "--cache-backend", "memory"})

	done := make(chan error, 1)
	go func() { done <- Execute(ctx) }()
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}
