package relay

import (
	"fmt"

	"github.com/streadway/amqp"
)

// Publisher is the message-queue sink for outbox messages.
type Publisher interface {
	Publish(body []byte) error
	Close() error
}

// RabbitMQPublisher publishes to a durable queue over a single channel.
type RabbitMQPublisher struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queue      string
}

func NewRabbitMQPublisher(uri string, queue string) (*RabbitMQPublisher, error) {
	connection, err := amqp.Dial(uri)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}

	channel, err := connection.Channel()
	if err != nil {
		_ = connection.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}

	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = connection.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	return &RabbitMQPublisher{
		connection: connection,
		channel:    channel,
		queue:      queue,
	}, nil
}

func (p *RabbitMQPublisher) Publish(body []byte) error {
	return p.channel.Publish("", p.queue, true, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

func (p *RabbitMQPublisher) Close() error {
	return p.connection.Close()
}
