package event

import (
	"sync"
	"testing"
)

func TestQueuePushConsumeFIFO(t *testing.T) {
	q := NewEventQueue()

	q.Push(GameEvent{Type: EventSeedPlanted, Frame: 1})
	q.Push(GameEvent{Type: EventHarvestRequest, Frame: 2})
	q.Push(GameEvent{Type: EventBlockBroken, Frame: 3})

	events := q.Consume()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	if events[0].Type != EventSeedPlanted || events[1].Type != EventHarvestRequest || events[2].Type != EventBlockBroken {
		t.Errorf("Expected FIFO order, got %v %v %v", events[0].Type, events[1].Type, events[2].Type)
	}

	if again := q.Consume(); again != nil {
		t.Errorf("Expected empty queue after consume, got %d events", len(again))
	}
}

func TestQueuePeekDoesNotConsume(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventSeedPlanted})

	if peeked := q.Peek(); len(peeked) != 1 {
		t.Fatalf("Expected 1 peeked event, got %d", len(peeked))
	}
	if q.Len() != 1 {
		t.Errorf("Expected Len 1 after peek, got %d", q.Len())
	}
	if consumed := q.Consume(); len(consumed) != 1 {
		t.Errorf("Expected 1 consumed event, got %d", len(consumed))
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()

	total := queueCapacity + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventSeedPlanted, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != queueCapacity {
		t.Fatalf("Expected %d events after overflow, got %d", queueCapacity, len(events))
	}
	if events[0].Frame != int64(total-queueCapacity) {
		t.Errorf("Expected oldest surviving frame %d, got %d", total-queueCapacity, events[0].Frame)
	}
	if events[len(events)-1].Frame != int64(total-1) {
		t.Errorf("Expected newest frame %d, got %d", total-1, events[len(events)-1].Frame)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()

	const producers = 8
	const perProducer = 16

	var wg sync.WaitGroup
	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				q.Push(GameEvent{Type: EventItemDropped})
			}
		}()
	}
	wg.Wait()

	events := q.Consume()
	if len(events) != producers*perProducer {
		t.Errorf("Expected %d events, got %d", producers*perProducer, len(events))
	}
}
