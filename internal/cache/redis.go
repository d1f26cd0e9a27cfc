package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/404DEVR/gym-agent/internal/models"
	"github.com/redis/go-redis/v9"
)

// DraftTTL bounds how long a partial profile survives without a new
// extractable message before the conversation starts over.
const DraftTTL = 24 * time.Hour

// RedisDraftStore keeps per-user profile drafts between chat turns.
type RedisDraftStore struct {
	client *redis.Client
}

func NewRedisDraftStore(redisURL string) (*RedisDraftStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test connection
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisDraftStore{client: client}, nil
}

func (s *RedisDraftStore) Close() error {
	return s.client.Close()
}

func draftKey(userID string) string {
	return fmt.Sprintf("profile:draft:%s", userID)
}

// GetDraft returns the stored draft for the user; found is false when no
// draft exists (a fresh conversation).
func (s *RedisDraftStore) GetDraft(ctx context.Context, userID string) (*models.ProfileDraft, bool, error) {
	data, err := s.client.Get(ctx, draftKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get draft from Redis: %w", err)
	}

	var draft models.ProfileDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &draft, true, nil
}

func (s *RedisDraftStore) SaveDraft(ctx context.Context, userID string, draft *models.ProfileDraft) error {
	jsonData, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKey(userID), jsonData, DraftTTL).Err(); err != nil {
		return fmt.Errorf("failed to store draft in Redis: %w", err)
	}
	return nil
}

func (s *RedisDraftStore) DeleteDraft(ctx context.Context, userID string) error {
	return s.client.Del(ctx, draftKey(userID)).Err()
}

// GetStatus reports pool health for the debug endpoint.
func (s *RedisDraftStore) GetStatus() (map[string]interface{}, error) {
	if err := s.client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	stats := s.client.PoolStats()
	return map[string]interface{}{
		"connected":    true,
		"hits":         stats.Hits,
		"misses":       stats.Misses,
		"active_conns": stats.TotalConns,
	}, nil
}
