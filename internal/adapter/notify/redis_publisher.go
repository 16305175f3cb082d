package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/product-factory/internal/core/domain"
)

const DefaultChannel = "inventory:registrations"

// RedisPublisher broadcasts registration notices over Redis Pub/Sub.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisPublisher{client: client, channel: channel}
}

func (r *RedisPublisher) Channel() string {
	return r.channel
}

func (r *RedisPublisher) Publish(ctx context.Context, notice domain.RegistrationNotice) error {
	payload, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("encode notice: %w", err)
	}

	return r.client.Publish(ctx, r.channel, payload).Err()
}

// Subscribe delivers notices published on the channel until ctx is done or
// the returned close func is called. Payloads that do not decode are skipped.
func (r *RedisPublisher) Subscribe(ctx context.Context) (<-chan domain.RegistrationNotice, func() error, error) {
	sub := r.client.Subscribe(ctx, r.channel)
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, nil, fmt.Errorf("subscribe %s: %w", r.channel, err)
	}

	out := make(chan domain.RegistrationNotice)
	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			notice, err := DecodeNotice(msg.Payload)
			if err != nil {
				continue
			}
			select {
			case out <- notice:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, sub.Close, nil
}

func DecodeNotice(payload string) (domain.RegistrationNotice, error) {
	var notice domain.RegistrationNotice
	if err := json.Unmarshal([]byte(payload), &notice); err != nil {
		return domain.RegistrationNotice{}, fmt.Errorf("decode notice: %w", err)
	}
	return notice, nil
}
