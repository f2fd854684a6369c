package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func setupTestCache() (*Cache, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	return New(db, 5*time.Minute), mock
}

func TestCache_GetMiss(t *testing.T) {
	c, mock := setupTestCache()
	defer mock.ClearExpect()

	mock.ExpectGet("tickets:list:org:10").RedisNil()

	var out []string
	err := c.Get(context.Background(), "tickets:list:org:10", &out)
	assert.ErrorIs(t, err, ErrMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_GetHit(t *testing.T) {
	c, mock := setupTestCache()
	defer mock.ClearExpect()

	raw, _ := json.Marshal([]string{"a", "b"})
	mock.ExpectGet("bids:ticket:1").SetVal(string(raw))

	var out []string
	err := c.Get(context.Background(), "bids:ticket:1", &out)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_SetUsesTTL(t *testing.T) {
	c, mock := setupTestCache()
	defer mock.ClearExpect()

	raw, _ := json.Marshal(map[string]int{"open": 3})
	mock.ExpectSet("tickets:counts", raw, 5*time.Minute).SetVal("OK")

	err := c.Set(context.Background(), "tickets:counts", map[string]int{"open": 3})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_InvalidateDropsNamespace(t *testing.T) {
	c, mock := setupTestCache()
	defer mock.ClearExpect()

	mock.ExpectScan(0, KeyTickets+":*", 0).SetVal([]string{"tickets:list", "tickets:1"}, 0)
	mock.ExpectDel("tickets:list", "tickets:1").SetVal(2)

	c.Invalidate(context.Background(), KeyTickets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_InvalidateEmptyNamespace(t *testing.T) {
	c, mock := setupTestCache()
	defer mock.ClearExpect()

	// No keys under the namespace: no Del issued.
	mock.ExpectScan(0, KeyBids+":*", 0).SetVal([]string{}, 0)

	c.Invalidate(context.Background(), KeyBids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
