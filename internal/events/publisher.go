package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"taskflow/internal/model"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ActivityEvent is the message body published for each appended activity.
type ActivityEvent struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	TaskID      *int64    `json:"taskId"`
	MemberID    *int64    `json:"memberId"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewActivityEvent(a *model.Activity) ActivityEvent {
	return ActivityEvent{
		ID:          a.ID,
		Type:        a.Type,
		TaskID:      a.TaskID,
		MemberID:    a.MemberID,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
	}
}

// Publisher delivers activity events to a broker.
type Publisher interface {
	PublishActivity(ctx context.Context, activity *model.Activity) error
	Close() error
}

// Noop drops every event. It is used when no broker is configured.
type Noop struct{}

func (Noop) PublishActivity(context.Context, *model.Activity) error { return nil }
func (Noop) Close() error                                         { return nil }

// AMQPPublisher publishes persistent JSON messages to a durable queue on
// the default exchange.
type AMQPPublisher struct {
	mu    sync.Mutex
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

var _ Publisher = (*AMQPPublisher)(nil)

func NewAMQPPublisher(url, queue string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel open: %w", err)
	}

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	return &AMQPPublisher{conn: conn, ch: ch, queue: queue}, nil
}

func (p *AMQPPublisher) PublishActivity(ctx context.Context, activity *model.Activity) error {
	body, err := json.Marshal(NewActivityEvent(activity))
	if err != nil {
		return fmt.Errorf("marshal activity event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         "activity." + activity.Type,
		Body:         body,
	}

	// amqp channels are not safe for concurrent publishing.
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}
