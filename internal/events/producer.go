package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"RepairService/internal/config"
	"RepairService/internal/entities"

	"github.com/segmentio/kafka-go"
)

// Producer пишет события жизненного цикла заказов в kafka.
// Сервис не зависит от доставки: ошибка публикации не откатывает операцию.
type Producer struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewProducer(logger *slog.Logger, cfg config.Kafka) *Producer {
	return &Producer{
		logger: logger.With(slog.String("component", "events")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, event entities.OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	p.logger.Debug("event published",
		slog.String("event", event.Type), slog.String("order_id", event.OrderID))
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
