package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"
)

// ChannelPrefix prefixes the redis channel of every scope
const ChannelPrefix = "dfm:events:"

type relayMessage struct {
	Instance string `json:"instance"`
	Topic    Topic  `json:"topic"`
}

// RedisRelay mirrors bus notifications across service instances over redis pub/sub
type RedisRelay struct {
	client     *redis.Client
	bus        *Bus
	instanceID string
}

// NewRedisRelay attaches a relay to bus. Call Run to start receiving.
func NewRedisRelay(client *redis.Client, bus *Bus) *RedisRelay {
	r := &RedisRelay{
		client:     client,
		bus:        bus,
		instanceID: ulid.Make().String(),
	}
	bus.AddForwarder(r.forward)
	return r
}

func (r *RedisRelay) forward(scope string, topic Topic) {
	payload, err := json.Marshal(relayMessage{Instance: r.instanceID, Topic: topic})
	if err != nil {
		log.Printf("Failed to encode relay message: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.client.Publish(ctx, ChannelPrefix+scope, payload).Err(); err != nil {
		log.Printf("Failed to relay %s/%s: %v", scope, topic, err)
	}
}

// Run receives notifications published by other instances until ctx is done
func (r *RedisRelay) Run(ctx context.Context) error {
	pubsub := r.client.PSubscribe(ctx, ChannelPrefix+"*")
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to relay channels: %w", err)
	}
	log.Printf("Event relay %s listening on %s*", r.instanceID, ChannelPrefix)

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			r.receive(msg.Channel, msg.Payload)
		}
	}
}

func (r *RedisRelay) receive(channel, payload string) {
	var msg relayMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		log.Printf("Ignoring malformed relay message on %s: %v", channel, err)
		return
	}
	if msg.Instance == r.instanceID || !msg.Topic.Valid() {
		return
	}
	r.bus.Dispatch(strings.TrimPrefix(channel, ChannelPrefix), msg.Topic)
}
