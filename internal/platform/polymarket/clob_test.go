package polymarket

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanyoungcy/polytui/internal/domain"
)

func TestGetPricePrimary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/price", r.URL.Path)
		require.Equal(t, "tok1", r.URL.Query().Get("token_id"))
		w.Write([]byte(`{"price":"0.63"}`))
	}))
	defer srv.Close()

	client := NewClobClient(srv.URL, 2*time.Second)
	q, err := client.GetPrice(context.Background(), "tok1")

	require.NoError(t, err)
	assert.Equal(t, domain.Quote{TokenID: "tok1", Price: 0.63, Source: "price"}, q)
}

func TestGetPriceFallsBackToMidpoint(t *testing.T) {
	var midpointCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/price":
			http.Error(w, "no price", http.StatusNotFound)
		case "/midpoint":
			midpointCalls++
			w.Write([]byte(`{"mid":"0.42"}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := NewClobClient(srv.URL, 2*time.Second)
	q, err := client.GetPrice(context.Background(), "tok1")

	require.NoError(t, err)
	assert.Equal(t, 1, midpointCalls)
	assert.Equal(t, "midpoint", q.Source)
	assert.Equal(t, 0.42, q.Price)
}

func TestGetPriceBothSourcesFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClobClient(srv.URL, 2*time.Second)
	_, err := client.GetPrice(context.Background(), "tok1")

	require.Error(t, err)
	var terr *domain.TransportError
	assert.True(t, errors.As(err, &terr))
}

func TestGetOrderBook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/book", r.URL.Path)
		w.Write([]byte(`{
			"asset_id": "tok1",
			"bids": [{"price":"0.60","size":"5"},{"price":"0.55","size":"10"}],
			"asks": [{"price":"0.65","size":"4"}]
		}`))
	}))
	defer srv.Close()

	client := NewClobClient(srv.URL, 2*time.Second)
	book, err := client.GetOrderBook(context.Background(), "tok1")

	require.NoError(t, err)
	assert.Equal(t, "tok1", book.AssetID)
	require.Len(t, book.Bids, 2)
	require.Len(t, book.Asks, 1)

	bid, ok := book.BestBid()
	require.True(t, ok)
	assert.Equal(t, 0.60, bid)
}

func TestGetOrderBookUndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	client := NewClobClient(srv.URL, 2*time.Second)
	book, err := client.GetOrderBook(context.Background(), "tok1")

	require.NoError(t, err)
	assert.Equal(t, "tok1", book.AssetID)
	assert.True(t, book.Empty())
}

func TestCheckHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusUnauthorized, domain.ErrUnauthorized},
		{http.StatusForbidden, domain.ErrUnauthorized},
		{http.StatusTooManyRequests, domain.ErrRateLimited},
	}
	for _, tt := range tests {
		err := checkHTTPStatus("test", tt.status, []byte("body"))
		require.Error(t, err)
		assert.ErrorIs(t, err, tt.want, "status %d", tt.status)

		var terr *domain.TransportError
		require.True(t, errors.As(err, &terr))
		assert.Equal(t, tt.status, terr.StatusCode)
	}

	assert.NoError(t, checkHTTPStatus("test", http.StatusOK, nil))
	assert.Error(t, checkHTTPStatus("test", http.StatusInternalServerError, nil))
}
