package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-clinic-service/internal/inventory"
	"github.com/fekuna/omnipos-clinic-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// SystemUser is recorded on stock transactions caused by order events.
const SystemUser = "system"

// MessageReader is satisfied by *broker.KafkaConsumer.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type InventoryListener struct {
	consumer MessageReader
	uc       inventory.UseCase
	logger   logger.ZapLogger
}

func NewInventoryListener(consumer MessageReader, uc inventory.UseCase, logger logger.ZapLogger) *InventoryListener {
	return &InventoryListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
	}
}

func (l *InventoryListener) Start(ctx context.Context) {
	l.logger.Info("Starting Inventory Kafka Listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping Inventory Kafka Listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				select {
				case <-ctx.Done():
					return
				case <-time.After(time.Second):
				}
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

// processMessage restocks every line of a delivered order.
func (l *InventoryListener) processMessage(ctx context.Context, value []byte) {
	var event model.OrderEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != model.EventOrderDelivered {
		return
	}

	order := event.Payload
	l.logger.Info("Processing OrderDelivered event", zap.String("order_id", order.ID))

	for _, item := range order.Items {
		if item.Quantity <= 0 {
			continue
		}
		_, err := l.uc.AdjustItemStock(ctx, &dto.AdjustStockInput{
			ItemID:   item.ItemID,
			Delta:    item.Quantity,
			Type:     model.TransactionRestock,
			UserID:   SystemUser,
			UserName: SystemUser,
			Notes:    "Bestellung " + order.ID,
		})
		if err != nil {
			l.logger.Error("Failed to restock order item",
				zap.String("order_id", order.ID),
				zap.String("item_id", item.ItemID),
				zap.Error(err),
			)
		}
	}
}
