package polymarket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanyoungcy/polytui/internal/domain"
)

func TestListMarketsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/markets", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		assert.Equal(t, "false", r.URL.Query().Get("closed"))
		assert.Equal(t, "abc", r.URL.Query().Get("cursor"))
		w.Write([]byte(`[{"id":"m1","question":"A?"}]`))
	}))
	defer srv.Close()

	client := NewGammaClient(srv.URL, 2*time.Second)
	markets, err := client.ListMarkets(context.Background(), domain.ListQuery{
		Limit:      25,
		Cursor:     "abc",
		ActiveOnly: true,
	})

	require.NoError(t, err)
	require.Len(t, markets, 1)
	assert.Equal(t, "m1", markets[0].ID)
}

func TestGetMarketNotFoundIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "0xmissing", r.URL.Query().Get("condition_ids"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewGammaClient(srv.URL, 2*time.Second)
	_, found, err := client.GetMarket(context.Background(), "0xmissing")

	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetMarketTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewGammaClient(srv.URL, 2*time.Second)
	_, found, err := client.GetMarket(context.Background(), "0xcond")

	assert.False(t, found)
	assert.ErrorIs(t, err, domain.ErrRateLimited)
}
