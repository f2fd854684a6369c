package events

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

// dialHub spins up a websocket echo endpoint, registers the server side of the
// connection with the hub, and returns the client side for reading.
func dialHub(t *testing.T, h *Hub) *websocket.Conn {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		h.Register(conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestHub_BroadcastReachesClient(t *testing.T) {
	h := NewHub()
	client := dialHub(t, h)
	assert.Equal(t, 1, h.ClientCount())

	h.Broadcast(TicketEvent{TicketID: 1, Action: "accept", From: "pending_confirmation", To: "accepted"})

	client.SetReadDeadline(time.Now().Add(time.Second))
	var got TicketEvent
	assert.NoError(t, client.ReadJSON(&got))
	assert.Equal(t, uint(1), got.TicketID)
	assert.Equal(t, "accepted", got.To)
}

func TestHub_UnregisterIsIdempotent(t *testing.T) {
	h := NewHub()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		h.Register(conn)
		h.Unregister(conn)
		h.Unregister(conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NoError(t, err)
	defer client.Close()

	assert.Eventually(t, func() bool { return h.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_BroadcastWithNoClients(t *testing.T) {
	h := NewHub()
	assert.Zero(t, h.ClientCount())
	h.Broadcast(TicketEvent{TicketID: 1, Action: "close"})
}
