package live

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Day:  "martes 14 de octubre",
	}

	hub.register <- client

	update := Update{Action: "moved", EventID: "e123", Room: 7, Block: "08:30 - 10:10"}
	hub.Broadcast("martes 14 de octubre", update)

	select {
	case got := <-client.Send:
		var decoded Update
		if err := json.Unmarshal(got, &decoded); err != nil {
			t.Fatalf("bad payload: %v", err)
		}
		if decoded != update {
			t.Fatalf("expected %+v, got %+v", update, decoded)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.unregister <- client
}

func TestHubBroadcastIsScopedToDay(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	dayOne := &Client{Send: make(chan []byte, 10), Day: "martes 14 de octubre"}
	dayTwo := &Client{Send: make(chan []byte, 10), Day: "miércoles 15 de octubre"}
	hub.register <- dayOne
	hub.register <- dayTwo

	hub.Broadcast("martes 14 de octubre", Update{Action: "assigned", EventID: "e9"})

	select {
	case <-dayOne.Send:
	case <-time.After(1 * time.Second):
		t.Fatal("day-one client never got the update")
	}

	select {
	case msg := <-dayTwo.Send:
		t.Fatalf("day-two client got a day-one update: %s", msg)
	case <-time.After(100 * time.Millisecond):
	}
}
