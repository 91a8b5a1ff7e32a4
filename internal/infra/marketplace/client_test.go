package marketplace

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bikeshare/config"
	deliverycontext "bikeshare/internal/delivery/context"
	"bikeshare/internal/domain/entity"
	domainerrors "bikeshare/internal/domain/errors"
	"bikeshare/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Params{
		Config: &config.Config{
			Marketplace: &config.MarketplaceConfig{
				BaseURL: server.URL + "/",
				Timeout: 2 * time.Second,
				Headers: map[string]string{"ngrok-skip-browser-warning": "true"},
			},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Params{Config: &config.Config{}, Logger: slog.Default()})
	assert.Error(t, err)

	_, err = NewClient(Params{Config: &config.Config{Marketplace: &config.MarketplaceConfig{}}, Logger: slog.Default()})
	assert.Error(t, err)
}

func TestClient_SendsConfiguredHeadersAndRequestID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.Header.Get("ngrok-skip-browser-warning"))
		assert.Equal(t, "req-123", r.Header.Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "/api/bikes", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("ownerId"))
		assert.Equal(t, "AVAILABLE", r.URL.Query().Get("status"))
		writeJSON(t, w, http.StatusOK, []any{})
	})

	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")
	bikes, err := NewCatalogRepository(client).ListBikes(ctx, repository.BikeFilter{OwnerID: 7, Status: entity.BikeStatusAvailable})

	require.NoError(t, err)
	assert.Empty(t, bikes)
}

func TestCatalog_ListBikesDecodesPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []map[string]any{
			{"id": 1, "ownerId": 7, "model": "Trek FX", "type": "urban", "costPerMinute": 0.5, "latitude": -12.09, "longitude": -77.05, "status": "RENTED"},
			nil,
			{"id": 2, "ownerId": 7, "model": "Giant", "type": "mountain", "costPerMinute": 0.8},
		})
	})

	bikes, err := NewCatalogRepository(client).ListBikes(context.Background(), repository.BikeFilter{})

	require.NoError(t, err)
	require.Len(t, bikes, 2)
	assert.Equal(t, int64(1), bikes[0].ID)
	assert.Equal(t, "Trek FX", bikes[0].Model)
	assert.Equal(t, entity.BikeStatusRented, bikes[0].Status)
	assert.InDelta(t, -12.09, bikes[0].Position.Lat(), 1e-9)
	assert.InDelta(t, -77.05, bikes[0].Position.Lon(), 1e-9)
	assert.Equal(t, entity.BikeStatusAvailable, bikes[1].Status)
	assert.False(t, bikes[1].Located())
}

func TestCatalog_GetBikeNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bikes/99", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := NewCatalogRepository(client).GetBike(context.Background(), 99)

	assert.ErrorIs(t, err, repository.ErrBikeNotFound)
}

func TestClient_InvalidPayloadIsRejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []map[string]any{{"id": 1, "costPerMinute": -3}})
	})

	_, err := NewCatalogRepository(client).ListBikes(context.Background(), repository.BikeFilter{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidUpstreamPayload)
}

func TestClient_MalformedJSONIsRejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>ngrok</html>"))
	})

	_, err := NewBookingRepository(client).ListReservations(context.Background(), repository.ReservationFilter{BikeID: 1})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidUpstreamPayload)
}

func TestClient_ServerErrorBecomesUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := NewReviewRepository(client).ListReviews(context.Background(), repository.ReviewFilter{OwnerID: 1})

	var upstream *domainerrors.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, "list reviews", upstream.Operation)
	assert.Equal(t, http.StatusInternalServerError, upstream.StatusCode)
	assert.Equal(t, http.StatusBadGateway, upstream.HTTPCode())
	assert.Contains(t, upstream.Body, "boom")
}

func TestClient_TransportErrorBecomesUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	client.baseURL.Host = "127.0.0.1:1"

	_, err := NewSupportRepository(client).ListTickets(context.Background(), 1)

	var upstream *domainerrors.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, 0, upstream.StatusCode)
	assert.Equal(t, http.StatusBadGateway, upstream.HTTPCode())
}
