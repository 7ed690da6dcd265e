package wheel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/wheelbot/wheelie/internal/models"
)

const (
	// Key prefixes for Redis
	wheelKeyPrefix   = "wheel:"
	channelKeyPrefix = "wheel_channel:"
)

// ErrWheelNotFound is returned when a wheel is not found
var ErrWheelNotFound = errors.New("wheel not found")

// Config holds configuration for the Redis wheel repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed wheel repository
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

// SaveWheel persists a wheel to Redis
func (r *redisRepository) SaveWheel(ctx context.Context, input *SaveWheelInput) error {
	if input == nil || input.Wheel == nil {
		return errors.New("input and wheel cannot be nil")
	}

	// Marshal the wheel to JSON
	wheelJSON, err := json.Marshal(input.Wheel)
	if err != nil {
		return fmt.Errorf("failed to marshal wheel: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the wheel
	wheelKey := fmt.Sprintf("%s%s", wheelKeyPrefix, input.Wheel.ID)
	pipe.Set(ctx, wheelKey, wheelJSON, 0) // No expiration for now

	// Keep the channel-to-wheel mapping current
	if input.Wheel.ChannelID != "" {
		channelKey := fmt.Sprintf("%s%s", channelKeyPrefix, input.Wheel.ChannelID)
		pipe.Set(ctx, channelKey, input.Wheel.ID, 0)
	}

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save wheel: %w", err)
	}

	return nil
}

// GetWheel retrieves a wheel by ID from Redis
func (r *redisRepository) GetWheel(ctx context.Context, input *GetWheelInput) (*GetWheelOutput, error) {
	if input == nil || input.WheelID == "" {
		return nil, errors.New("input and wheel ID cannot be empty")
	}

	wheelKey := fmt.Sprintf("%s%s", wheelKeyPrefix, input.WheelID)
	wheelJSON, err := r.client.Get(ctx, wheelKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrWheelNotFound
		}
		return nil, fmt.Errorf("failed to get wheel: %w", err)
	}

	var wheel models.Wheel
	if err := json.Unmarshal([]byte(wheelJSON), &wheel); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wheel: %w", err)
	}

	return &GetWheelOutput{
		Wheel: &wheel,
	}, nil
}

// GetWheelByChannel retrieves the wheel owned by a Discord channel
func (r *redisRepository) GetWheelByChannel(ctx context.Context, input *GetWheelByChannelInput) (*GetWheelByChannelOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	channelKey := fmt.Sprintf("%s%s", channelKeyPrefix, input.ChannelID)
	wheelID, err := r.client.Get(ctx, channelKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrWheelNotFound
		}
		return nil, fmt.Errorf("failed to get wheel ID for channel: %w", err)
	}

	output, err := r.GetWheel(ctx, &GetWheelInput{
		WheelID: wheelID,
	})
	if err != nil {
		return nil, err
	}

	return &GetWheelByChannelOutput{
		Wheel: output.Wheel,
	}, nil
}

// DeleteWheel removes a wheel and its channel mapping from Redis
func (r *redisRepository) DeleteWheel(ctx context.Context, input *DeleteWheelInput) error {
	if input == nil || input.WheelID == "" {
		return errors.New("input and wheel ID cannot be empty")
	}

	// Fetch the wheel first so the channel mapping can be cleared too
	output, err := r.GetWheel(ctx, &GetWheelInput{
		WheelID: input.WheelID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()

	wheelKey := fmt.Sprintf("%s%s", wheelKeyPrefix, input.WheelID)
	pipe.Del(ctx, wheelKey)

	if output.Wheel.ChannelID != "" {
		channelKey := fmt.Sprintf("%s%s", channelKeyPrefix, output.Wheel.ChannelID)
		pipe.Del(ctx, channelKey)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete wheel: %w", err)
	}

	return nil
}
