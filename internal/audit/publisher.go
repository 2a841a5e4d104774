package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisPublisher replica os eventos num canal pub/sub do Redis.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisPublisher conecta em url (redis://...) e confere a conexão com PING.
func NewRedisPublisher(ctx context.Context, url, channel string) (*RedisPublisher, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &RedisPublisher{client: client, channel: channel}, nil
}

type wireEvent struct {
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID *uint     `json:"entity_id,omitempty"`
	ActorID  *uint     `json:"actor_id,omitempty"`
	Metadata any       `json:"metadata,omitempty"`
	At       time.Time `json:"at"`
}

func (p *RedisPublisher) Write(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(wireEvent{
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		ActorID:  ev.ActorID,
		Metadata: ev.Metadata,
		At:       ev.At,
	})
	if err != nil {
		return err
	}

	return p.client.Publish(ctx, p.channel, payload).Err()
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
