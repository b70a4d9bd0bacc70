package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"novagen/internal/models"
	"novagen/internal/util"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Event types emitted to the stream.
const (
	EventTypeTransactionRecorded = "transaction.recorded"
	EventTypeSocialPostCaptured  = "social_post.captured"
)

// BaseEvent is the common envelope for all stream events.
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	RunID     string    `json:"run_id"`
	Timestamp time.Time `json:"timestamp"`
}

// TransactionRecordedEvent wraps a generated transaction.
type TransactionRecordedEvent struct {
	BaseEvent
	Transaction models.Transaction `json:"transaction"`
}

// SocialPostCapturedEvent wraps a generated social media post.
type SocialPostCapturedEvent struct {
	BaseEvent
	Post models.SocialPost `json:"post"`
}

// Producer publishes generated records to a Kafka topic.
type Producer struct {
	writer *kafka.Writer
	runID  string
}

// NewProducer creates a new Kafka producer
func NewProducer(brokers []string, topic, runID string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}

	return &Producer{writer: writer, runID: runID}
}

// Close closes the Kafka writer
func (p *Producer) Close() error {
	return p.writer.Close()
}

func (p *Producer) newBase(eventType string) BaseEvent {
	return BaseEvent{
		EventID:   uuid.New().String(),
		EventType: eventType,
		RunID:     p.runID,
		Timestamp: time.Now().UTC(),
	}
}

// PublishTransactions publishes one event per transaction, keyed by
// customer so a consumer sees each customer's purchases in order.
func (p *Producer) PublishTransactions(ctx context.Context, txns []models.Transaction) error {
	msgs := make([]kafka.Message, 0, len(txns))
	for _, txn := range txns {
		event := TransactionRecordedEvent{
			BaseEvent:   p.newBase(EventTypeTransactionRecorded),
			Transaction: txn,
		}
		value, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal transaction event: %w", err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(txn.CustomerID),
			Value: value,
			Time:  time.Now(),
		})
	}

	if err := p.writeBatched(ctx, msgs); err != nil {
		return fmt.Errorf("failed to publish transaction events: %w", err)
	}
	util.SinkRowsLoadedTotal.WithLabelValues("kafka", "fact_transactions").Add(float64(len(txns)))
	return nil
}

// PublishSocialPosts publishes one event per social media post, keyed by
// product.
func (p *Producer) PublishSocialPosts(ctx context.Context, posts []models.SocialPost) error {
	msgs := make([]kafka.Message, 0, len(posts))
	for _, post := range posts {
		event := SocialPostCapturedEvent{
			BaseEvent: p.newBase(EventTypeSocialPostCaptured),
			Post:      post,
		}
		value, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal social post event: %w", err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(post.ProductMentioned),
			Value: value,
			Time:  time.Now(),
		})
	}

	if err := p.writeBatched(ctx, msgs); err != nil {
		return fmt.Errorf("failed to publish social post events: %w", err)
	}
	util.SinkRowsLoadedTotal.WithLabelValues("kafka", "social_media_posts").Add(float64(len(posts)))
	return nil
}

const publishBatchSize = 500

func (p *Producer) writeBatched(ctx context.Context, msgs []kafka.Message) error {
	for lo := 0; lo < len(msgs); lo += publishBatchSize {
		hi := lo + publishBatchSize
		if hi > len(msgs) {
			hi = len(msgs)
		}
		if err := p.writer.WriteMessages(ctx, msgs[lo:hi]...); err != nil {
			return err
		}
	}
	return nil
}
