package restcountries

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/countries-cli/internal/core/domain"
)

const sampleListing = `[
  {
    "name": {"common": "Chad", "official": "Republic of Chad"},
    "capital": ["N'Djamena"],
    "population": 16425859,
    "area": 1284000,
    "continents": ["Africa"],
    "region": "Africa",
    "subregion": "Middle Africa",
    "flag": "🇹🇩",
    "flags": {"png": "https://flagcdn.com/w320/td.png", "svg": "https://flagcdn.com/td.svg", "alt": "Blue, gold and red"},
    "cca2": "TD"
  },
  {
    "name": {"common": "Antarctica", "official": "Antarctica"},
    "continents": ["Antarctica"],
    "area": 14000000,
    "region": "Antarctic"
  }
]`

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{})

	assert.Equal(t, DefaultURL, client.URL())
	assert.Equal(t, DefaultUserAgent, client.userAgent)
	assert.NotNil(t, client.client)
}

func TestClient_FetchAll_Success(t *testing.T) {
	var gotMethod, gotQuery, gotAgent string
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleListing))
	})

	client := NewClient(Config{URL: server.URL + "/v3.1/all"})
	countries, err := client.FetchAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Empty(t, gotQuery)
	assert.Equal(t, DefaultUserAgent, gotAgent)
	require.Len(t, countries, 2)

	chad := countries[0]
	assert.Equal(t, "Chad", chad.Name)
	assert.Equal(t, "Republic of Chad", chad.OfficialName)
	assert.Equal(t, []string{"N'Djamena"}, chad.Capitals)
	assert.Equal(t, int64(16425859), chad.Population)
	assert.Equal(t, 1284000.0, chad.Area)
	assert.Equal(t, []string{"Africa"}, chad.Continents)
	assert.Equal(t, "Middle Africa", chad.Subregion)
	assert.Equal(t, "🇹🇩", chad.FlagEmoji)
	assert.Equal(t, "https://flagcdn.com/td.svg", chad.Flag.URI())

	antarctica := countries[1]
	assert.Zero(t, antarctica.Population, "missing population decodes to zero")
	assert.Empty(t, antarctica.Capitals)
	assert.Empty(t, antarctica.Subregion)
	assert.Empty(t, antarctica.Flag.URI())
}

func TestClient_FetchAll_BadStatus(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":400,"message":"Bad Request"}`))
	})

	client := NewClient(Config{URL: server.URL})
	countries, err := client.FetchAll(context.Background())

	assert.Nil(t, countries)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetch)

	var fe *domain.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "status", fe.Op)
	assert.Equal(t, http.StatusBadRequest, fe.Status)
	assert.Contains(t, err.Error(), "Bad Request")
}

func TestClient_FetchAll_MalformedPayload(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"name": {"common": "Chad"}, "population": "lots"}]`))
	})

	client := NewClient(Config{URL: server.URL})
	_, err := client.FetchAll(context.Background())

	var fe *domain.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "decode", fe.Op)
}

func TestClient_FetchAll_NotAnArray(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"countries": []}`))
	})

	client := NewClient(Config{URL: server.URL})
	_, err := client.FetchAll(context.Background())

	assert.ErrorIs(t, err, domain.ErrFetch)
}

func TestClient_FetchAll_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(Config{URL: url})
	_, err := client.FetchAll(context.Background())

	var fe *domain.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "request", fe.Op)
}

func TestClient_FetchAll_CancelledContext(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleListing))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(Config{URL: server.URL})
	_, err := client.FetchAll(ctx)

	assert.ErrorIs(t, err, domain.ErrFetch)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_FetchAll_EmptyListing(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	client := NewClient(Config{URL: server.URL})
	countries, err := client.FetchAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, countries)
	assert.Empty(t, countries)
}
