package chucknorris

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testClient(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

func TestRandomJoke(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jokes/random", r.URL.Path)
		_, _ = w.Write([]byte(`{"value":"Chuck Norris counted to infinity. Twice."}`))
	}))
	defer srv.Close()

	joke := testClient(srv.URL).RandomJoke(context.Background())
	assert.Equal(t, "Chuck Norris counted to infinity. Twice.", joke)
}

func TestRandomJokeNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	assert.Equal(t, loadingJoke, testClient(srv.URL).RandomJoke(context.Background()))
}

func TestRandomJokeEmptyValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	assert.Equal(t, fallbackJoke, testClient(srv.URL).RandomJoke(context.Background()))
}

func TestRandomJokeMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	assert.Equal(t, fallbackJoke, testClient(srv.URL).RandomJoke(context.Background()))
}

func TestRandomJokeNetworkFailureStillReturnsText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	joke := testClient(srv.URL).RandomJoke(context.Background())
	assert.Contains(t, joke, "Chuck Norris error:")
}
