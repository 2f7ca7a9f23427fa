// Package events publishes activity events to an AMQP exchange for
// downstream notification consumers. The broker is optional; a nil Publisher
// is safe to call and does nothing.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/streadway/amqp"
)

const exchangeName = "recruit_activities"

// Publisher sends activity events to RabbitMQ. One channel per publish keeps
// the connection usable across concurrent actions.
type Publisher struct {
	conn *amqp.Connection
}

// Connect dials the broker and declares the activity exchange. An empty URL
// returns a nil Publisher, which disables event publishing.
func Connect(url string) (*Publisher, error) {
	if url == "" {
		log.Printf("[events] no broker configured, activity events disabled")
		return nil, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(exchangeName, "topic", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &Publisher{conn: conn}, nil
}

// PublishActivity sends one event with routing key activity.{type}. The
// payload gains a timestamp. Nil receivers are a no-op.
func (p *Publisher) PublishActivity(ctx context.Context, activityType string, payload map[string]any) error {
	if p == nil || p.conn == nil {
		return nil
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if payload == nil {
		payload = map[string]any{}
	}
	payload["occurred_at"] = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return ch.Publish(
		exchangeName,
		RoutingKey(activityType),
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// Close shuts down the broker connection.
func (p *Publisher) Close() error {
	if p == nil || p.conn == nil {
		return nil
	}
	return p.conn.Close()
}

// RoutingKey builds the routing key for an activity type.
func RoutingKey(activityType string) string {
	return "activity." + activityType
}
