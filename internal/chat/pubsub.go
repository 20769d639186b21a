package chat

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// PubSub abstracts the fan-out transport for live messages so the channel
// can be exercised in tests without a broker.
type PubSub interface {
	// Publish sends a payload to every active subscriber of the topic.
	Publish(ctx context.Context, topic string, payload []byte) error
	// Subscribe opens a live feed for the topic. The feed is confirmed
	// before Subscribe returns: payloads published afterwards are delivered.
	Subscribe(ctx context.Context, topic string) (Subscriber, error)
}

// Subscriber is a single live feed. Close stops delivery and releases the
// underlying connection; Payloads is closed afterwards.
type Subscriber interface {
	Payloads() <-chan []byte
	Close() error
}

// redisPubSub implements PubSub on Redis pub/sub.
type redisPubSub struct {
	rdb *redis.Client
}

func NewRedisPubSub(rdb *redis.Client) PubSub {
	return &redisPubSub{rdb: rdb}
}

func (p *redisPubSub) Publish(ctx context.Context, topic string, payload []byte) error {
	return p.rdb.Publish(ctx, topic, payload).Err()
}

func (p *redisPubSub) Subscribe(ctx context.Context, topic string) (Subscriber, error) {
	ps := p.rdb.Subscribe(ctx, topic)

	// Wait for confirmation that the subscription is created before
	// reporting success, so no published message slips past the caller.
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, err
	}

	out := make(chan []byte, 16)
	go func() {
		defer close(out)
		for msg := range ps.Channel() {
			out <- []byte(msg.Payload)
		}
	}()

	return &redisSubscriber{ps: ps, out: out}, nil
}

type redisSubscriber struct {
	ps  *redis.PubSub
	out chan []byte
}

func (s *redisSubscriber) Payloads() <-chan []byte { return s.out }

func (s *redisSubscriber) Close() error { return s.ps.Close() }
