package ws

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"yolearn/internal/domain/notification"
	"yolearn/internal/infrastructure/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const channelPrefix = "notifications:user:"

type NotificationEvent struct {
	Type      string    `json:"type"`
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

func Channel(userID uuid.UUID) string {
	return channelPrefix + userID.String()
}

func encode(n notification.Notification) ([]byte, error) {
	return json.Marshal(NotificationEvent{
		Type:      "notification",
		ID:        n.ID,
		Text:      n.Text,
		CreatedAt: n.CreatedAt,
		Read:      n.Read,
	})
}

// HubPublisher delivers to connections held by this process only.
type HubPublisher struct {
	hub *Hub
}

func NewHubPublisher(hub *Hub) *HubPublisher {
	return &HubPublisher{hub: hub}
}

func (p *HubPublisher) Publish(_ context.Context, n notification.Notification) error {
	b, err := encode(n)
	if err != nil {
		return err
	}
	p.hub.Deliver(n.RecipientID, b)
	return nil
}

// RedisPublisher fans out through Redis so every instance's hub sees the
// event. It delivers locally while Redis is unreachable or this instance's
// relay is not subscribed.
type RedisPublisher struct {
	redis  *cache.Redis
	relay  *Relay
	local  *HubPublisher
	logger *zap.Logger
}

func NewRedisPublisher(r *cache.Redis, hub *Hub, relay *Relay, logger *zap.Logger) *RedisPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisPublisher{redis: r, relay: relay, local: NewHubPublisher(hub), logger: logger}
}

func (p *RedisPublisher) Publish(ctx context.Context, n notification.Notification) error {
	if !p.redis.Available() || !p.relay.Live() {
		return p.local.Publish(ctx, n)
	}
	b, err := encode(n)
	if err != nil {
		return err
	}
	if err := p.redis.Publish(ctx, Channel(n.RecipientID), b); err != nil {
		p.logger.Warn("[WS] redis publish failed, delivering locally", zap.Error(err))
		return p.local.Publish(ctx, n)
	}
	return nil
}

// Subscribe relays Redis notification events to the hub until ctx is done.
func Subscribe(ctx context.Context, client *redis.Client, hub *Hub, logger *zap.Logger) error {
	return subscribe(ctx, client, hub, logger, nil)
}

// subscribe calls ready once the pattern subscription is confirmed.
func subscribe(ctx context.Context, client *redis.Client, hub *Hub, logger *zap.Logger, ready func()) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	ps := client.PSubscribe(ctx, channelPrefix+"*")
	defer ps.Close()

	if _, err := ps.Receive(ctx); err != nil {
		return err
	}
	logger.Info("[WS] subscribed", zap.String("pattern", channelPrefix+"*"))
	if ready != nil {
		ready()
	}

	ch := ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			userID, err := uuid.Parse(strings.TrimPrefix(msg.Channel, channelPrefix))
			if err != nil {
				logger.Warn("[WS] unexpected channel", zap.String("channel", msg.Channel))
				continue
			}
			hub.Deliver(userID, []byte(msg.Payload))
		}
	}
}
