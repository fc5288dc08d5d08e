package listener

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/omnipos-clinic-service/internal/inventory/usecase"
	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/internal/state/repository"
	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// queueReader hands out the queued messages, then blocks until ctx ends.
type queueReader struct {
	messages chan kafka.Message
}

func (q *queueReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case msg := <-q.messages:
		return msg, nil
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	}
}

func encode(t *testing.T, event model.OrderEvent) kafka.Message {
	t.Helper()
	value, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	return kafka.Message{Key: []byte(event.Payload.ID), Value: value}
}

func TestInventoryListener_RestocksDeliveredOrders(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	uc := usecase.NewInventoryUseCase(repository.NewMemoryRepository(), nil, nil, nil, logger.NewNop())
	if err := uc.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	order := model.Order{
		ID: "order-9",
		Items: []model.OrderItem{
			{ItemID: "2", Quantity: 100},
			{ItemID: "missing", Quantity: 5},
		},
	}
	reader := &queueReader{messages: make(chan kafka.Message, 3)}
	reader.messages <- kafka.Message{Value: []byte("not json")}
	reader.messages <- encode(t, model.OrderEvent{EventType: model.EventOrderSubmitted, Payload: order})
	reader.messages <- encode(t, model.OrderEvent{EventType: model.EventOrderDelivered, Payload: order})

	l := NewInventoryListener(reader, uc, logger.NewNop())
	done := make(chan struct{})
	go func() {
		l.Start(ctx)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for {
		item, _ := uc.GetItemByID(ctx, "2")
		if item.CurrentStock == 135 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("stock not restocked, got %d", item.CurrentStock)
		}
		time.Sleep(10 * time.Millisecond)
	}

	tx := uc.GetRecentTransactions(ctx, 1)[0]
	if tx.Type != model.TransactionRestock || tx.UserID != SystemUser || tx.Quantity != 100 {
		t.Errorf("unexpected transaction: %+v", tx)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("listener did not stop")
	}
}

type failingReader struct{ calls int }

func (f *failingReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	f.calls++
	return kafka.Message{}, errors.New("broker unavailable")
}

func TestInventoryListener_StopsWhileBackingOff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l := NewInventoryListener(&failingReader{}, nil, logger.NewNop())

	done := make(chan struct{})
	go func() {
		l.Start(ctx)
		close(done)
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("listener did not stop")
	}
}
