//go:build ignore
// +build ignore

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/property-locator/internal/domain"
	"github.com/redis/go-redis/v9"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	before, err := client.HGet(ctx, domain.StatsResolutionKey, "total").Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		log.Fatalf("Failed to read stats: %v", err)
	}

	// Тестовые события: по одному на каждый тип результата
	now := time.Now()
	results := []struct {
		query  string
		result *domain.MatchResult
	}{
		{"jaiselmer", &domain.MatchResult{Type: domain.MatchedTypeDirectMatch, MatchedCity: "jaisalmer", Source: domain.CorrectionSourceVocabulary,
			Properties: []domain.NearbyProperty{{Property: domain.Property{Name: "Moustache Jaisalmer"}}}}},
		{"sissu", &domain.MatchResult{Type: domain.MatchedTypeProximityMatch, MatchedCity: "sissu", Source: domain.CorrectionSourceVocabulary,
			Properties: []domain.NearbyProperty{{Property: domain.Property{Name: "Moustache Koksar Luxuria"}, DistanceKm: 12.87}}}},
		{"coimbatore", &domain.MatchResult{Type: domain.MatchedTypeNoMatch, MatchedCity: "coimbatore", Source: domain.CorrectionSourceVocabulary}},
		{"khajuraho", &domain.MatchResult{Type: domain.MatchedTypeLocationNotFound, Source: domain.CorrectionSourceVocabulary}},
		{"xqzv", &domain.MatchResult{Type: domain.MatchedTypeUnrecognized, Source: domain.CorrectionSourcePassthrough}},
	}

	for _, r := range results {
		event := domain.NewResolutionEvent(r.query, r.result, now)
		data, err := json.Marshal(event)
		if err != nil {
			log.Fatalf("Failed to marshal event: %v", err)
		}

		// Публикация в стрим
		id, err := client.XAdd(ctx, &redis.XAddArgs{
			Stream: domain.StreamResolutionEvents,
			Values: map[string]interface{}{
				"data": string(data),
			},
		}).Result()
		if err != nil {
			log.Fatalf("Failed to publish event: %v", err)
		}

		fmt.Printf("✅ Published %-18s query=%q id=%s\n", event.MatchedType, event.Query, id)
	}

	// Ожидание обработки воркером
	fmt.Printf("\n⏳ Waiting for %s to be updated...\n", domain.StatsResolutionKey)

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	want := before + int64(len(results))
	for {
		select {
		case <-timeout:
			fmt.Println("❌ Timeout waiting for worker (is WORKER_ENABLED=true?)")
			return
		case <-ticker.C:
			stats, err := client.HGetAll(ctx, domain.StatsResolutionKey).Result()
			if err != nil {
				continue
			}

			total, _ := client.HGet(ctx, domain.StatsResolutionKey, "total").Int64()
			if total < want {
				continue
			}

			fmt.Printf("\n✅ Stats updated!\n")
			prettyJSON, _ := json.MarshalIndent(stats, "", "  ")
			fmt.Printf("%s\n", prettyJSON)
			return
		}
	}
}
