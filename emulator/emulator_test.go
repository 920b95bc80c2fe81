package emulator

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/cloudresume/visitors/counter"
	"github.com/cloudresume/visitors/models"
	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(e *Emulator) *httptest.Server {
	r := chi.NewRouter()
	r.Mount("/api/http_trigger", e.Routes())
	r.Handle("/metrics", e.Metrics())
	return httptest.NewServer(r)
}

func post(t *testing.T, url string) (int, models.IncrementResponse) {
	res, err := http.Post(url, "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	defer res.Body.Close()

	var body models.IncrementResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return res.StatusCode, body
}

func TestIncrementCreatesThenIncrements(t *testing.T) {
	srv := newServer(New())
	defer srv.Close()

	status, body := post(t, srv.URL+"/api/http_trigger")
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, 1, body.NewCount)
	assert.Equal(t, "Visitor record created", body.Message)

	status, body = post(t, srv.URL+"/api/http_trigger")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, body.NewCount)
	assert.Equal(t, "Visitor count incremented", body.Message)
}

func TestStatusBeforeAndAfterIncrement(t *testing.T) {
	srv := newServer(New())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/api/http_trigger")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	post(t, srv.URL+"/api/http_trigger")

	res, err = http.Get(srv.URL + "/api/http_trigger")
	require.NoError(t, err)
	defer res.Body.Close()

	var body models.StatusResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 1, body.Count)
}

func TestUnsupportedMethod(t *testing.T) {
	srv := newServer(New())
	defer srv.Close()

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/http_trigger", nil)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
	assert.Equal(t, "Method not allowed. Use GET or POST.", body.Error)
}

func TestConcurrentIncrements(t *testing.T) {
	e := New()
	srv := newServer(e)
	defer srv.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := http.Post(srv.URL+"/api/http_trigger", "application/json", strings.NewReader("{}"))
			if assert.NoError(t, err) {
				res.Body.Close()
			}
		}()
	}
	wg.Wait()

	_, body := post(t, srv.URL+"/api/http_trigger")
	assert.Equal(t, 21, body.NewCount)
}

func TestMetricsCountsIncrements(t *testing.T) {
	srv := newServer(New())
	defer srv.Close()

	post(t, srv.URL+"/api/http_trigger")
	post(t, srv.URL+"/api/http_trigger")

	res, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	b, err := ioutil.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Contains(t, string(b), "visitors_emulator_increments_total 2")
}

func TestClientAgainstEmulator(t *testing.T) {
	srv := newServer(New())
	defer srv.Close()

	c := counter.New(srv.URL + "/api/http_trigger")

	first, err := c.Increment(context.Background())
	require.NoError(t, err)
	second, err := c.Increment(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "1", first.String())
	assert.Equal(t, "2", second.String())
}

func TestPreflightAllowed(t *testing.T) {
	srv := newServer(New())
	defer srv.Close()

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/http_trigger", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://resume.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	res.Body.Close()

	assert.NotEmpty(t, res.Header.Get("Access-Control-Allow-Origin"))
}
