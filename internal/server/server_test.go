package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/deidaraiorek/ptstem/internal/server"
	"github.com/deidaraiorek/ptstem/internal/stemmer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h := server.New(stemmer.New(), ":0").Handler()

	rec := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestStemWord(t *testing.T) {
	h := server.New(stemmer.New(), ":0").Handler()

	rec := do(t, h, http.MethodGet, "/stem/Casas", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, map[string]string{"word": "Casas", "stem": "cas"}, got)
}

func TestStemBatch(t *testing.T) {
	h := server.New(stemmer.New(), ":0").Handler()

	rec := do(t, h, http.MethodPost, "/stem", `{"words":["correr","bonito"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Results []struct {
			Word  string `json:"word"`
			Stem  string `json:"stem"`
			Error string `json:"error"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Results, 2)
	assert.Equal(t, "corr", got.Results[0].Stem)
	assert.Equal(t, "bonit", got.Results[1].Stem)
	assert.Empty(t, got.Results[0].Error)

	rec = do(t, h, http.MethodPost, "/stem", `{"words":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStemReportsListLoadFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.txt")
	require.NoError(t, os.WriteFile(path, []byte("\xff\n"), 0o644))

	s := stemmer.New()
	s.SetStopwords(path)
	h := server.New(s, ":0").Handler()

	rec := do(t, h, http.MethodGet, "/stem/casas", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "list_load")
}

func TestOptions(t *testing.T) {
	s := stemmer.New()
	h := server.New(s, ":0").Handler()

	rec := do(t, h, http.MethodGet, "/options", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"options":["-S","ORENGO","-C","1000"]}`, rec.Body.String())

	rec = do(t, h, http.MethodPut, "/options", `{"options":["-S","PORTER","-C","10"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"options":["-S","PORTER","-C","10"]}`, rec.Body.String())
	assert.Equal(t, 10, s.Config().CacheSize)

	rec = do(t, h, http.MethodPut, "/options", `{"options":["-S","KROVETZ"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "PORTER", s.Config().Algorithm.String())
}

func TestStats(t *testing.T) {
	s := stemmer.New()
	h := server.New(s, ":0").Handler()

	do(t, h, http.MethodGet, "/stem/casas", "")
	do(t, h, http.MethodGet, "/stem/casas", "")

	rec := do(t, h, http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats stemmer.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.True(t, stats.Built)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.CacheLen)
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := server.New(stemmer.New(), "127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
