package ws

import (
	"testing"
	"time"
)

func waitForClientCount(t *testing.T, h *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d clients, got %d", want, h.ClientCount())
}

func TestHub_BroadcastDeliversToClient(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	client := &Client{hub: h, send: make(chan []byte, 8)}
	h.Register(client)
	waitForClientCount(t, h, 1)

	h.Broadcast([]byte(`{"type":"profile_changed"}`))

	select {
	case msg := <-client.send:
		if string(msg) != `{"type":"profile_changed"}` {
			t.Fatalf("unexpected message: %s", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("broadcast not delivered")
	}
}

func TestHub_DropsSlowClientWithoutBlocking(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	// unbuffered send channel with no reader: the client can never keep up
	slow := &Client{hub: h, send: make(chan []byte)}
	h.Register(slow)
	waitForClientCount(t, h, 1)

	done := make(chan struct{})
	go func() {
		h.Broadcast([]byte("event"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("broadcast blocked on a slow client")
	}

	// the hub unregisters the slow client instead of waiting on it
	waitForClientCount(t, h, 0)

	if _, open := <-slow.send; open {
		t.Fatalf("expected slow client's send channel to be closed")
	}
}

func TestHub_UnregisterTwiceIsSafe(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	client := &Client{hub: h, send: make(chan []byte, 1)}
	h.Register(client)
	waitForClientCount(t, h, 1)

	h.Unregister(client)
	h.Unregister(client)
	waitForClientCount(t, h, 0)
}
