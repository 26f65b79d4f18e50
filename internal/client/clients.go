package client

import (
	"github.com/PriyeshRaj231/online-voting-system/internal/dto"
	"github.com/sirupsen/logrus"
)

type Clients interface {
	VotePublisher() VotePublisher
	Close()
}

type clients struct {
	votePublisher VotePublisher
}

func (c clients) VotePublisher() VotePublisher {
	return c.votePublisher
}

func (c clients) Close() {
	if err := c.votePublisher.Close(); err != nil {
		logrus.Errorf("Error closing vote publisher: %v", err)
	}
}

func NewClients(cfg dto.Config) Clients {
	if cfg.RabbitMQURL == "" {
		logrus.Warn("RABBITMQ_URL not set, vote events will not be published")
		return &clients{votePublisher: noopPublisher{}}
	}

	votePublisher, err := NewRabbitPublisher(cfg.RabbitMQURL)
	if err != nil {
		logrus.Errorf("Failed to connect to RabbitMQ, vote events will not be published: %v", err)
		return &clients{votePublisher: noopPublisher{}}
	}

	return &clients{
		votePublisher: votePublisher,
	}
}
