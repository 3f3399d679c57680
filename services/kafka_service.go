package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// IEventPublisher defines the interface for outbound event publishing.
type IEventPublisher interface {
	Publish(topic string, key string, payload []byte) error
}

// KafkaPublisher implements IEventPublisher using Sarama.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewKafkaPublisher creates a new KafkaPublisher instance.
func NewKafkaPublisher(brokers []string) (IEventPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to start Sarama producer: %w", err)
	}

	log.Println("Kafka producer connected successfully.")
	return &KafkaPublisher{producer: producer, brokers: brokers}, nil
}

// Publish sends a keyed message to the specified Kafka topic.
func (p *KafkaPublisher) Publish(topic string, key string, payload []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		log.Printf("Failed to send message to Kafka topic '%s': %v", topic, err)
		return err
	}
	log.Printf("Message sent to topic '%s', partition %d, offset %d", topic, partition, offset)
	return nil
}

// StatusChangedEvent is emitted after every successful status transition.
// The chat transport consumes it and tells the customer.
type StatusChangedEvent struct {
	EventID    string `json:"event_id"`
	OrderID    uint   `json:"order_id"`
	UserID     int64  `json:"user_id"`
	OldStatus  string `json:"old_status"`
	NewStatus  string `json:"new_status"`
	OccurredAt string `json:"occurred_at"`
}

// Notification is a user-directed text message delivered by the chat
// transport.
type Notification struct {
	EventID   string `json:"event_id"`
	UserID    int64  `json:"user_id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// INotifier delivers best-effort text messages to chat users. Failures are
// logged by callers and never affect core state.
type INotifier interface {
	Notify(userID int64, text string) error
}

// KafkaNotifier implements INotifier by publishing Notification events.
type KafkaNotifier struct {
	publisher IEventPublisher
	topic     string
}

// NewKafkaNotifier creates a new KafkaNotifier instance.
func NewKafkaNotifier(publisher IEventPublisher, topic string) INotifier {
	return &KafkaNotifier{publisher: publisher, topic: topic}
}

func (n *KafkaNotifier) Notify(userID int64, text string) error {
	payload, err := json.Marshal(Notification{
		EventID:   uuid.NewString(),
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	return n.publisher.Publish(n.topic, fmt.Sprintf("%d", userID), payload)
}
