package spinlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wheelbot/wheelie/internal/models"
)

const (
	// Key prefixes for Redis
	spinKeyPrefix       = "spin:"
	wheelSpinsKeyPrefix = "wheel_spins:"
)

// ErrSpinNotFound is returned when a spin record is not found
var ErrSpinNotFound = errors.New("spin record not found")

// Config holds configuration for the Redis spin log repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed spin log repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// AddSpinRecord appends a spin record to a wheel's history
func (r *redisRepository) AddSpinRecord(ctx context.Context, input *AddSpinRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record

	if record.ID == "" {
		return errors.New("spin record ID cannot be empty")
	}

	if record.WheelID == "" {
		return errors.New("spin record wheel ID cannot be empty")
	}

	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	// Marshal the record to JSON
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal spin record: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Store the spin record
	spinKey := fmt.Sprintf("%s%s", spinKeyPrefix, record.ID)
	pipe.Set(ctx, spinKey, recordJSON, 0) // No expiration for now

	// Add to the wheel's spin history sorted set
	wheelKey := fmt.Sprintf("%s%s", wheelSpinsKeyPrefix, record.WheelID)
	pipe.ZAdd(ctx, wheelKey, redis.Z{
		Score:  float64(record.Timestamp.UnixNano()),
		Member: record.ID,
	})

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to add spin record: %w", err)
	}

	return nil
}

// GetRecentSpins retrieves the most recent spin records for a wheel, newest first
func (r *redisRepository) GetRecentSpins(ctx context.Context, input *GetRecentSpinsInput) (*GetRecentSpinsOutput, error) {
	if input == nil || input.WheelID == "" {
		return nil, errors.New("input and wheel ID cannot be empty")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	// Get the most recent spin IDs for the wheel
	wheelKey := fmt.Sprintf("%s%s", wheelSpinsKeyPrefix, input.WheelID)
	spinIDs, err := r.client.ZRevRange(ctx, wheelKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get spin IDs for wheel: %w", err)
	}

	// If there are no spins, return an empty slice
	if len(spinIDs) == 0 {
		return &GetRecentSpinsOutput{
			Records: []*models.SpinRecord{},
		}, nil
	}

	// Fetch each spin record
	records := make([]*models.SpinRecord, 0, len(spinIDs))
	for _, spinID := range spinIDs {
		spinKey := fmt.Sprintf("%s%s", spinKeyPrefix, spinID)
		recordJSON, err := r.client.Get(ctx, spinKey).Result()
		if err != nil {
			if err == redis.Nil {
				// Index entry without a record; skip it
				continue
			}
			return nil, fmt.Errorf("failed to get spin record: %w", err)
		}

		var record models.SpinRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal spin record: %w", err)
		}

		records = append(records, &record)
	}

	return &GetRecentSpinsOutput{
		Records: records,
	}, nil
}

// CountSpins returns the number of recorded spins for a wheel
func (r *redisRepository) CountSpins(ctx context.Context, input *CountSpinsInput) (*CountSpinsOutput, error) {
	if input == nil || input.WheelID == "" {
		return nil, errors.New("input and wheel ID cannot be empty")
	}

	wheelKey := fmt.Sprintf("%s%s", wheelSpinsKeyPrefix, input.WheelID)
	count, err := r.client.ZCard(ctx, wheelKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to count spins for wheel: %w", err)
	}

	return &CountSpinsOutput{
		Count: count,
	}, nil
}

// DeleteSpinsForWheel removes all spin records for a wheel
func (r *redisRepository) DeleteSpinsForWheel(ctx context.Context, input *DeleteSpinsForWheelInput) error {
	if input == nil || input.WheelID == "" {
		return errors.New("input and wheel ID cannot be empty")
	}

	wheelKey := fmt.Sprintf("%s%s", wheelSpinsKeyPrefix, input.WheelID)
	spinIDs, err := r.client.ZRange(ctx, wheelKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get spin IDs for wheel: %w", err)
	}

	pipe := r.client.Pipeline()

	for _, spinID := range spinIDs {
		spinKey := fmt.Sprintf("%s%s", spinKeyPrefix, spinID)
		pipe.Del(ctx, spinKey)
	}

	pipe.Del(ctx, wheelKey)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete spins for wheel: %w", err)
	}

	return nil
}
