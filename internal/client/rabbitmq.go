package client

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/PriyeshRaj231/online-voting-system/internal/dto"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// VotePublisher broadcasts ledger changes so external consumers (a
// results screen, an audit log) can follow the tally without polling.
type VotePublisher interface {
	Publish(event dto.VoteEvent) error
	Close() error
}

type rabbitPublisher struct {
	conn         *amqp.Connection
	channel      *amqp.Channel
	exchangeName string
	mu           sync.RWMutex
}

func NewRabbitPublisher(connectionStr string) (VotePublisher, error) {
	conn, err := amqp.Dial(connectionStr)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	exchangeName := "votes"
	err = ch.ExchangeDeclare(
		exchangeName, // name
		"fanout",     // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	publisher := &rabbitPublisher{
		conn:         conn,
		channel:      ch,
		exchangeName: exchangeName,
	}

	go publisher.monitorConnection(connectionStr)

	return publisher, nil
}

func (p *rabbitPublisher) monitorConnection(connectionStr string) {
	connCloseChan := make(chan *amqp.Error)
	p.conn.NotifyClose(connCloseChan)

	err := <-connCloseChan
	if err == nil {
		// Clean shutdown.
		return
	}
	logrus.Errorf("RabbitMQ connection closed: %v", err)

	for {
		time.Sleep(5 * time.Second) // Wait before reconnecting

		logrus.Info("Attempting to reconnect to RabbitMQ...")
		conn, err := amqp.Dial(connectionStr)
		if err != nil {
			logrus.Errorf("Failed to reconnect to RabbitMQ: %v", err)
			continue
		}

		ch, err := conn.Channel()
		if err != nil {
			logrus.Errorf("Failed to open a channel: %v", err)
			conn.Close()
			continue
		}

		err = ch.ExchangeDeclare(
			p.exchangeName, // name
			"fanout",       // type
			true,           // durable
			false,          // auto-deleted
			false,          // internal
			false,          // no-wait
			nil,            // arguments
		)
		if err != nil {
			logrus.Errorf("Failed to declare an exchange: %v", err)
			ch.Close()
			conn.Close()
			continue
		}

		p.mu.Lock()
		oldConn := p.conn
		oldChannel := p.channel
		p.conn = conn
		p.channel = ch
		p.mu.Unlock()

		if oldChannel != nil {
			oldChannel.Close()
		}
		if oldConn != nil {
			oldConn.Close()
		}

		go p.monitorConnection(connectionStr)
		break
	}
}

func (p *rabbitPublisher) Publish(event dto.VoteEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.channel.PublishWithContext(
		ctx,
		p.exchangeName, // exchange
		"",             // routing key
		false,          // mandatory
		false,          // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		})
}

func (p *rabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// noopPublisher stands in when no broker is configured, so the voting
// flow never depends on RabbitMQ being present.
type noopPublisher struct{}

func (noopPublisher) Publish(dto.VoteEvent) error {
	return nil
}

func (noopPublisher) Close() error {
	return nil
}
