package notify

import (
	"encoding/json"
	"testing"
	"time"

	"campushub/models"
	"campushub/mq"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send:   make(chan []byte, 10),
		UserID: "u1",
	}

	hub.register <- client

	notice := mq.Notice{
		Event: "registration-completed",
		Index: models.Index{EntityType: "event", EntityId: "e1", Method: "POST"},
	}
	data, _ := json.Marshal(notice)
	hub.Broadcast(data)

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for notice")
	}

	hub.unregister <- client
}

func TestHubDropsSlowClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	slow := &Client{Send: make(chan []byte)} // unbuffered, never read
	hub.register <- slow

	hub.Broadcast([]byte("one"))
	hub.Broadcast([]byte("two"))

	select {
	case _, ok := <-slow.Send:
		if ok {
			t.Fatal("expected slow client channel to be closed")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for slow client to be dropped")
	}
}
