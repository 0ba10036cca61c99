package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/property-locator/internal/domain"
	redisRepo "github.com/property-locator/internal/repository/redis"
)

const testStream = "test:stream:resolution:events"

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     "localhost:6379",
		Password: "",
		DB:       1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	client.Del(ctx, testStream)

	return client
}

func sampleEvent(query string, matched domain.MatchedType) domain.ResolutionEvent {
	result := &domain.MatchResult{Type: matched, MatchedCity: "udaipur", Source: domain.CorrectionSourceVocabulary}
	return domain.NewResolutionEvent(query, result, time.Now())
}

// TestStreamRepository_CreateConsumerGroup tests consumer group creation
func TestStreamRepository_CreateConsumerGroup(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()
	defer client.Del(ctx, testStream)

	groupName := "test-group"

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, groupName))

	groups, err := client.XInfoGroups(ctx, testStream).Result()
	require.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, groupName, groups[0].Name)

	// Creating again should not error (BUSYGROUP handled)
	assert.NoError(t, repo.CreateConsumerGroup(ctx, testStream, groupName))
}

// TestStreamRepository_PublishToStream tests message publishing
func TestStreamRepository_PublishToStream(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()
	defer client.Del(ctx, testStream)

	event := sampleEvent("udaipur", domain.MatchedTypeDirectMatch)
	require.NoError(t, repo.PublishToStream(ctx, testStream, event))

	messages, err := client.XRead(ctx, &redis.XReadArgs{
		Streams: []string{testStream, "0"},
		Count:   1,
	}).Result()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Len(t, messages[0].Messages, 1)

	dataStr, ok := messages[0].Messages[0].Values["data"].(string)
	require.True(t, ok)

	var received domain.ResolutionEvent
	require.NoError(t, json.Unmarshal([]byte(dataStr), &received))
	assert.Equal(t, event.ID, received.ID)
	assert.Equal(t, domain.MatchedTypeDirectMatch, received.MatchedType)
	assert.Equal(t, "udaipur", received.Corrected)
}

// TestStreamRepository_ConsumeBatch tests batch reads and batch ack
func TestStreamRepository_ConsumeBatch(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()
	defer client.Del(ctx, testStream)

	groupName := "test-batch-group"
	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, groupName))

	for _, q := range []string{"goa", "delhi", "xqzv"} {
		require.NoError(t, repo.PublishToStream(ctx, testStream, sampleEvent(q, domain.MatchedTypeDirectMatch)))
	}
	// сообщение без поля data пропускается
	require.NoError(t, client.XAdd(ctx, &redis.XAddArgs{
		Stream: testStream,
		Values: map[string]interface{}{"other": "x"},
	}).Err())

	messages, err := repo.ConsumeBatch(ctx, testStream, groupName, "consumer-1", 10)
	require.NoError(t, err)
	require.Len(t, messages, 3)

	ids := make([]string, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}
	require.NoError(t, repo.AckMessages(ctx, testStream, groupName, ids))

	pending, err := client.XPending(ctx, testStream, groupName).Result()
	require.NoError(t, err)
	// остается только сообщение без data
	assert.Equal(t, int64(1), pending.Count)

	messages, err = repo.ConsumeBatch(ctx, testStream, groupName, "consumer-1", 10)
	require.NoError(t, err)
	assert.Empty(t, messages)

	assert.NoError(t, repo.AckMessages(ctx, testStream, groupName, nil))
}
