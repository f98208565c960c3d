package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const loyaltyQueue = "loyalty_events"

// LoyaltyEvent is the message published for every balance change.
type LoyaltyEvent struct {
	EventID    string    `json:"eventId"`
	UserID     int       `json:"userId"`
	Type       string    `json:"type"`
	Points     int       `json:"points"`
	Balance    int       `json:"balance"`
	Tier       string    `json:"tier"`
	Promoted   bool      `json:"promoted,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

const (
	EventPointsEarned   = "points_earned"
	EventPointsRedeemed = "points_redeemed"
)

type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// New dials the broker and declares the durable loyalty queue. An empty URL
// disables publishing: New returns nil and the nil *Publisher is safe to use.
func New(url string) (*Publisher, error) {
	if url == "" {
		return nil, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	_, err = ch.QueueDeclare(
		loyaltyQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: ch}, nil
}

// PublishLoyaltyEvent sends a persistent message to the loyalty queue.
// Publishing is best-effort from the caller's point of view: failures are
// returned for logging but must not fail the originating request.
func (p *Publisher) PublishLoyaltyEvent(ctx context.Context, event LoyaltyEvent) error {
	if p == nil {
		return nil
	}

	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		ContentType:  "application/json",
		MessageId:    event.EventID,
		Body:         body,
	}

	return p.channel.PublishWithContext(ctx, "", loyaltyQueue, false, false, msg)
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			zap.L().Error("failed to close amqp channel", zap.Error(err))
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			zap.L().Error("failed to close amqp connection", zap.Error(err))
		}
	}
}
