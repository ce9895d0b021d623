package restcountries_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rrhh-console/internal/infrastructure/restcountries"
)

const chileJSON = `[{
	"name": {"common": "Chile", "official": "República de Chile"},
	"cca2": "CL",
	"cca3": "CHL",
	"region": "Americas",
	"subregion": "South America",
	"capital": ["Santiago"],
	"population": 19116209,
	"area": 756102,
	"currencies": {"CLP": {"name": "Chilean peso", "symbol": "$"}},
	"languages": {"spa": "Spanish"},
	"timezones": ["UTC-06:00", "UTC-04:00"],
	"flags": {"png": "https://flagcdn.com/w320/cl.png"},
	"flag": "🇨🇱",
	"maps": {"googleMaps": "https://goo.gl/maps/cl"}
}]`

func newTestServer(t *testing.T, wantPath, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantPath, r.URL.Path)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestByName_NormalizesResponse(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, "/name/chile", chileJSON, http.StatusOK)
	client := restcountries.NewClient(srv.URL, 2*time.Second)

	list, err := client.ByName(context.Background(), "chile", false)
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, "Chile", got.CommonName)
	assert.Equal(t, "República de Chile", got.OfficialName)
	assert.Equal(t, "CL", got.CCA2)
	assert.Equal(t, "CHL", got.CCA3)
	assert.Equal(t, []string{"Santiago"}, got.Capital)
	assert.Equal(t, int64(19116209), got.Population)
	assert.Equal(t, []string{"Chilean peso (CLP, $)"}, got.Currencies)
	assert.Equal(t, []string{"Spanish"}, got.Languages)
	assert.Equal(t, "https://flagcdn.com/w320/cl.png", got.FlagPNG)
	assert.Equal(t, "https://goo.gl/maps/cl", got.MapsURL)
}

func TestByName_FullTextSetsQueryParam(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("fullText"))
		_, _ = w.Write([]byte(chileJSON))
	}))
	t.Cleanup(srv.Close)

	client := restcountries.NewClient(srv.URL, 2*time.Second)
	list, err := client.ByName(context.Background(), "Chile", true)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestByName_NotFoundIsNotAnError(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, "/name/atlantida", `{"status": 404, "message": "Not Found"}`, http.StatusNotFound)
	client := restcountries.NewClient(srv.URL, 2*time.Second)

	list, err := client.ByName(context.Background(), "atlantida", false)
	require.NoError(t, err)
	assert.Nil(t, list)
}

func TestByCode(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, "/alpha/CL", chileJSON, http.StatusOK)
	client := restcountries.NewClient(srv.URL, 2*time.Second)

	got, err := client.ByCode(context.Background(), " CL ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Chile", got.CommonName)
}

func TestByCode_UnknownReturnsNil(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, "/alpha/XX", "", http.StatusNotFound)
	client := restcountries.NewClient(srv.URL, 2*time.Second)

	got, err := client.ByCode(context.Background(), "XX")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestByRegion_ServerError(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, "/region/americas", "boom", http.StatusInternalServerError)
	client := restcountries.NewClient(srv.URL, 2*time.Second)

	_, err := client.ByRegion(context.Background(), "americas")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "estado inesperado 500")
}
