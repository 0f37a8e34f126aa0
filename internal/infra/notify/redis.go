package notify

import (
	"context"
	"encoding/json"

	"turfbook/internal/pkg/config"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const channelPrefix = "turfbook:notifications:"

// RedisSink publishes booking notifications on a per-recipient pub/sub
// channel. Delivery is best effort; subscribers that are offline miss the
// message, which is acceptable for a status ping.
type RedisSink struct {
	client *redis.Client
}

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	cleanup := func() { _ = client.Close() }
	return client, cleanup, nil
}

func NewRedisSink(client *redis.Client) shared.NotificationSink {
	return &RedisSink{client: client}
}

func (s *RedisSink) Publish(ctx context.Context, n shared.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification")
	}
	channel := channelPrefix + n.RecipientID.String()
	if err := s.client.Publish(ctx, channel, payload).Err(); err != nil {
		return errs.Wrap(err, "failed to publish notification")
	}
	return nil
}
