package nominatim_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/odor-source-service/internal/config"
	"github.com/odor-source-service/internal/infrastructure/nominatim"
)

func newClient(baseURL string, timeout time.Duration) *config.GeocoderConfig {
	return &config.GeocoderConfig{
		BaseURL:        baseURL,
		UserAgent:      "test-agent/1.0",
		RequestTimeout: timeout,
	}
}

func TestGeocode_Success(t *testing.T) {
	var gotQuery, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"23.0225","lon":"72.5714","display_name":"Navrangpura"}]`))
	}))
	defer srv.Close()

	c := nominatim.NewClient(newClient(srv.URL, 5*time.Second), zap.NewNop())
	point, err := c.Geocode(context.Background(), "Navrangpura", "Ahmedabad")

	require.NoError(t, err)
	require.NotNil(t, point)
	assert.InDelta(t, 23.0225, point.Latitude, 1e-9)
	assert.InDelta(t, 72.5714, point.Longitude, 1e-9)
	assert.Equal(t, "Navrangpura, Ahmedabad, India", gotQuery)
	assert.Equal(t, "test-agent/1.0", gotUA)
}

func TestGeocode_NoMatchIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := nominatim.NewClient(newClient(srv.URL, 5*time.Second), zap.NewNop())
	point, err := c.Geocode(context.Background(), "Nowhere", "Ahmedabad")

	require.NoError(t, err)
	assert.Nil(t, point)
}

func TestGeocode_ServerErrorIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := nominatim.NewClient(newClient(srv.URL, 5*time.Second), zap.NewNop())
	_, err := c.Geocode(context.Background(), "Navrangpura", "Ahmedabad")

	assert.Error(t, err)
}

func TestGeocode_TimeoutIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := nominatim.NewClient(newClient(srv.URL, 20*time.Millisecond), zap.NewNop())
	_, err := c.Geocode(context.Background(), "Navrangpura", "Ahmedabad")

	assert.Error(t, err)
}

func TestGeocode_EmptyNameRejected(t *testing.T) {
	c := nominatim.NewClient(newClient("http://unused", time.Second), zap.NewNop())
	_, err := c.Geocode(context.Background(), "", "Ahmedabad")

	assert.Error(t, err)
}
