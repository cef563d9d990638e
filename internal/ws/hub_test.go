package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"
)

func TestPublishRoutesByUser(t *testing.T) {
	h := NewHub()
	a := &Client{UserID: "alice", send: make(chan []byte, 1)}
	b := &Client{UserID: "bob", send: make(chan []byte, 1)}
	h.register(a)
	h.register(b)

	h.Publish(domain.Event{Kind: domain.EventLevelUp, UserID: "alice", Level: 2})

	select {
	case msg := <-a.send:
		var ev domain.Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if ev.Kind != domain.EventLevelUp || ev.Level != 2 {
			t.Fatalf("got %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("alice got nothing")
	}

	select {
	case msg := <-b.send:
		t.Fatalf("bob got %s", msg)
	default:
	}
}

func TestPublishNeverBlocks(t *testing.T) {
	h := NewHub()
	c := &Client{UserID: "alice", send: make(chan []byte)} // unbuffered, no reader
	h.register(c)

	done := make(chan struct{})
	go func() {
		h.Publish(domain.Event{Kind: domain.EventRankUp, UserID: "alice"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a slow client")
	}
}

func TestUnregisterDropsUser(t *testing.T) {
	h := NewHub()
	c := &Client{UserID: "alice", send: make(chan []byte, 1)}
	h.register(c)
	h.unregister(c)

	h.Publish(domain.Event{Kind: domain.EventRankUp, UserID: "alice"})
	if msg, ok := <-c.send; ok {
		t.Fatalf("unregistered client got %s", msg)
	}
}
