package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Notifier - batas pengiriman pesan ke pendaftar yang sudah dipanggil.
// Implementasi transport (bot, push, layar terminal) ada di luar proses.
type Notifier interface {
	NotifyWindow(ctx context.Context, userID int64, windowNumber int) error
}

type windowMessage struct {
	UserID       int64 `json:"user_id"`
	WindowNumber int   `json:"window_number"`
}

/*
|--------------------------------------------------------------------------
| REDIS NOTIFIER
|--------------------------------------------------------------------------
| Publish ke channel notify:user:<id>, consumer pesan subscribe sendiri.
*/
type RedisNotifier struct {
	client *redis.Client
}

func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client}
}

func (n *RedisNotifier) NotifyWindow(ctx context.Context, userID int64, windowNumber int) error {
	payload, err := json.Marshal(windowMessage{
		UserID:       userID,
		WindowNumber: windowNumber,
	})
	if err != nil {
		return fmt.Errorf("marshal window notification: %w", err)
	}

	channel := fmt.Sprintf("notify:user:%d", userID)

	if err := n.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("publish window notification to %s: %w", channel, err)
	}

	return nil
}
