package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
)

type kafkaDispatcher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaDispatcher sends messages keyed by seller so one farm's events stay ordered.
func NewKafkaDispatcher(producer sarama.SyncProducer, topic string) Dispatcher {
	return &kafkaDispatcher{
		producer: producer,
		topic:    topic,
	}
}

// Dispatch blocks in SendMessage, which has no context; the producer's own
// timeouts bound it. A context that is already done skips the send.
func (d *kafkaDispatcher) Dispatch(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("send %s message for request %s: %w", msg.Event, msg.RequestID, err)
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode %s message: %w", msg.Event, err)
	}

	pm := &sarama.ProducerMessage{
		Topic: d.topic,
		Key:   sarama.StringEncoder(msg.SellerID),
		Value: sarama.ByteEncoder(data),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event"), Value: []byte(msg.Event)},
		},
	}
	if _, _, err := d.producer.SendMessage(pm); err != nil {
		return fmt.Errorf("send %s message for request %s: %w", msg.Event, msg.RequestID, err)
	}
	return nil
}

func (d *kafkaDispatcher) Close() error {
	return d.producer.Close()
}
