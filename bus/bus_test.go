// bus/bus_test.go
package bus

import (
	"testing"
	"time"
)

func TestBasicPubSub(t *testing.T) {
	b := NewBus(4)
	conn := b.NewConnection("test")

	sub := conn.Subscribe(T("config", "board"))

	conn.Publish(conn.NewMessage(T("config", "board"), "hello", false))

	select {
	case got := <-sub.Channel():
		if got.Payload.(string) != "hello" {
			t.Errorf("expected payload 'hello', got %v", got.Payload)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for message")
	}
}

func TestRetainedMessage(t *testing.T) {
	b := NewBus(2)
	conn := b.NewConnection("test")

	conn.Publish(conn.NewMessage(T("board", "resolved"), "persist", true))

	sub := conn.Subscribe(T("board", "resolved"))

	select {
	case got := <-sub.Channel():
		if got.Payload.(string) != "persist" {
			t.Errorf("expected retained payload 'persist', got %v", got.Payload)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for retained message")
	}
}

func TestRetainedMessageCleared(t *testing.T) {
	b := NewBus(2)
	conn := b.NewConnection("test")

	conn.Publish(conn.NewMessage(T("board", "resolved"), "persist", true))
	// nil payload clears the retained slot
	conn.Publish(conn.NewMessage(T("board", "resolved"), nil, true))

	sub := conn.Subscribe(T("board", "resolved"))
	select {
	case got := <-sub.Channel():
		t.Fatalf("expected no retained delivery, got %v", got.Payload)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNoDeliveryOnOtherTopic(t *testing.T) {
	b := NewBus(2)
	conn := b.NewConnection("test")

	sub := conn.Subscribe(T("board", "conflicts"))
	conn.Publish(conn.NewMessage(T("board", "resolved"), 1, false))

	select {
	case got := <-sub.Channel():
		t.Fatalf("unexpected delivery: %v", got.Payload)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestQueueDropsOldest(t *testing.T) {
	b := NewBus(2)
	conn := b.NewConnection("test")

	sub := conn.Subscribe(T("x"))
	for i := 0; i < 5; i++ {
		conn.Publish(conn.NewMessage(T("x"), i, false))
	}

	// Queue length 2: the two newest survive.
	first := <-sub.Channel()
	second := <-sub.Channel()
	if first.Payload.(int) != 3 || second.Payload.(int) != 4 {
		t.Fatalf("expected 3,4 got %v,%v", first.Payload, second.Payload)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := NewBus(2)
	conn := b.NewConnection("test")

	sub := conn.Subscribe(T("x"))
	sub.Unsubscribe()
	conn.Publish(conn.NewMessage(T("x"), "late", false))

	if _, ok := <-sub.Channel(); ok {
		t.Fatal("expected closed channel after unsubscribe")
	}
}

func TestDisconnectClosesAll(t *testing.T) {
	b := NewBus(2)
	conn := b.NewConnection("test")

	a := conn.Subscribe(T("a"))
	c := conn.Subscribe(T("c"))
	conn.Disconnect()

	if _, ok := <-a.Channel(); ok {
		t.Fatal("sub a still open after disconnect")
	}
	if _, ok := <-c.Channel(); ok {
		t.Fatal("sub c still open after disconnect")
	}
}
