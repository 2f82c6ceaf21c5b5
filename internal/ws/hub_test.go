package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

// mockClient creates a client for testing without a real WebSocket connection
func mockClient(hub *Hub) *Client {
	return &Client{
		id:   uuid.New(),
		hub:  hub,
		send: make(chan []byte, 256),
	}
}

func TestHubRegistration(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := mockClient(hub)

	hub.register <- client

	// Give hub time to process
	time.Sleep(10 * time.Millisecond)

	if hub.ClientCount() != 1 {
		t.Fatal("client not registered")
	}
}

func TestHubUnregistration(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := mockClient(hub)

	hub.register <- client
	time.Sleep(10 * time.Millisecond)

	hub.unregister <- client
	time.Sleep(10 * time.Millisecond)

	if hub.ClientCount() != 0 {
		t.Fatal("client not removed after unregister")
	}
	if _, ok := <-client.send; ok {
		t.Fatal("send channel not closed on unregister")
	}
}

func TestBroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client1 := mockClient(hub)
	client2 := mockClient(hub)

	hub.register <- client1
	hub.register <- client2
	time.Sleep(10 * time.Millisecond)

	hub.Broadcast("order_created", map[string]any{"order_id": 123, "house_name": "小林様邸"})

	for _, c := range []*Client{client1, client2} {
		select {
		case raw := <-c.send:
			var event Event
			if err := json.Unmarshal(raw, &event); err != nil {
				t.Fatalf("unmarshal event: %v", err)
			}
			if event.Type != "order_created" {
				t.Errorf("event type: got %q", event.Type)
			}
			var payload struct {
				OrderID int64 `json:"order_id"`
			}
			if err := json.Unmarshal(event.Payload, &payload); err != nil {
				t.Fatalf("unmarshal payload: %v", err)
			}
			if payload.OrderID != 123 {
				t.Errorf("order id: got %d", payload.OrderID)
			}
		case <-time.After(time.Second):
			t.Fatal("client did not receive broadcast")
		}
	}
}

func TestSlowClientIsDropped(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// A client with a full buffer cannot take another message.
	client := &Client{id: uuid.New(), hub: hub, send: make(chan []byte)}
	hub.register <- client
	time.Sleep(10 * time.Millisecond)

	hub.Broadcast("order_created", map[string]any{"order_id": 1})
	time.Sleep(10 * time.Millisecond)

	if hub.ClientCount() != 0 {
		t.Fatal("slow client was not dropped")
	}
}
