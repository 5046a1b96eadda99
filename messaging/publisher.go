package messaging

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/KdbAzizul/rescuemesh-sos-service/schema"
)

const (
	logPrefix      = "messaging"
	publishTimeout = 5 * time.Second

	// DefaultMatchingQueue is the durable queue the matching service consumes.
	DefaultMatchingQueue = "matching.trigger"
)

// Publisher - interface to notify the matching service that a request
// needs attention. The channel is durable with at-least-once delivery;
// this side never observes consumption. Callers must not fail their own
// operation on a publish error: the record is already durable in the
// store and can be re-triggered later.
type Publisher interface {
	PublishMatchingTrigger(event schema.TriggerEvent) error
	Close()
}

// AMQPPublisher publishes trigger events over a single long-lived AMQP
// channel shared by every request.
type AMQPPublisher struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

// NewAMQPPublisher connects to the broker and declares the durable
// matching queue. An empty queue name falls back to DefaultMatchingQueue.
func NewAMQPPublisher(url, queue string) (*AMQPPublisher, error) {
	if queue == "" {
		queue = DefaultMatchingQueue
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &AMQPPublisher{
		conn:    conn,
		channel: channel,
		queue:   queue,
	}, nil
}

// PublishMatchingTrigger enqueues one persistent JSON message per event.
// The channel is not safe for concurrent publish, hence the mutex.
func (p *AMQPPublisher) PublishMatchingTrigger(event schema.TriggerEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	}); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":     logPrefix,
		"queue":      p.queue,
		"request_id": event.Data.RequestID,
	}).Info("published matching trigger")

	return nil
}

// Close - close the channel and connection
func (p *AMQPPublisher) Close() {
	log.WithField("prefix", logPrefix).Info("closing message queue connection")

	p.mu.Lock()
	defer p.mu.Unlock()

	_ = p.channel.Close()
	_ = p.conn.Close()
}
