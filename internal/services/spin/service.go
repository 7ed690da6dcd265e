package spin

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/wheelbot/wheelie/internal/common/clock"
	"github.com/wheelbot/wheelie/internal/common/uuid"
	"github.com/wheelbot/wheelie/internal/models"
	spinlogRepo "github.com/wheelbot/wheelie/internal/repositories/spinlog"
	wheelRepo "github.com/wheelbot/wheelie/internal/repositories/wheel"
	"github.com/wheelbot/wheelie/internal/rng"
	"github.com/wheelbot/wheelie/internal/wheel"
)

const (
	defaultMaxOptions   = 12
	defaultHistoryLimit = 10

	// spinStaleAfter bounds how long a persisted spinning status blocks
	// the wheel. A spin completes within a single call, so a spinning
	// status older than this is a leftover from a crash mid-spin.
	spinStaleAfter = time.Minute
)

// defaultOptions is the wheel a channel gets when no labels are supplied
var defaultOptions = []models.Option{
	{Label: "Yes", Color: "#2ecc71", Weight: 1},
	{Label: "No", Color: "#e74c3c", Weight: 1},
}

// service implements the Service interface
type service struct {
	wheelRepo     wheelRepo.Repository
	spinLogRepo   spinlogRepo.Repository
	randomSource  rng.Source
	clock         clock.Clock
	uuidGenerator uuid.UUID
	maxOptions    int
	historyLimit  int
}

// New creates a new spin service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.WheelRepo == nil {
		return nil, ErrNilWheelRepo
	}

	if cfg.SpinLogRepo == nil {
		return nil, ErrNilSpinLogRepo
	}

	if cfg.RandomSource == nil {
		return nil, ErrNilRandomSource
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	maxOptions := cfg.MaxOptions
	if maxOptions <= 0 {
		maxOptions = defaultMaxOptions
	}

	historyLimit := cfg.DefaultHistoryLimit
	if historyLimit <= 0 {
		historyLimit = defaultHistoryLimit
	}

	return &service{
		wheelRepo:     cfg.WheelRepo,
		spinLogRepo:   cfg.SpinLogRepo,
		randomSource:  cfg.RandomSource,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		maxOptions:    maxOptions,
		historyLimit:  historyLimit,
	}, nil
}

// CreateWheel creates a new wheel for a Discord channel
func (s *service) CreateWheel(ctx context.Context, input *CreateWheelInput) (*CreateWheelOutput, error) {
	// Check if a wheel already exists for this channel
	existing, err := s.wheelRepo.GetWheelByChannel(ctx, &wheelRepo.GetWheelByChannelInput{
		ChannelID: input.ChannelID,
	})

	if err == nil && existing != nil && existing.Wheel != nil {
		return nil, ErrWheelAlreadyExists
	}

	// Only proceed if the error is "not found"
	if err != nil && !errors.Is(err, wheelRepo.ErrWheelNotFound) {
		return nil, err
	}

	options := input.Options
	if len(options) == 0 {
		options = defaultOptions
	}

	if len(options) > s.maxOptions {
		return nil, ErrTooManyOptions
	}

	// Reject invalid configurations before anything is persisted
	if _, err := wheel.BuildPartition(options); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	w := &models.Wheel{
		ID:        s.uuidGenerator.NewUUID(),
		ChannelID: input.ChannelID,
		CreatorID: input.CreatorID,
		Status:    models.WheelStatusIdle,
		Options:   options,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.wheelRepo.SaveWheel(ctx, &wheelRepo.SaveWheelInput{
		Wheel: w,
	})
	if err != nil {
		return nil, err
	}

	return &CreateWheelOutput{
		WheelID: w.ID,
		Wheel:   w,
	}, nil
}

// GetWheel retrieves a wheel and its angular partition by ID
func (s *service) GetWheel(ctx context.Context, input *GetWheelInput) (*GetWheelOutput, error) {
	w, err := s.getWheel(ctx, input.WheelID)
	if err != nil {
		return nil, err
	}

	segments, err := wheel.BuildPartition(w.Options)
	if err != nil {
		return nil, err
	}

	return &GetWheelOutput{
		Wheel:    w,
		Segments: segments,
	}, nil
}

// GetWheelByChannel retrieves the wheel owned by a Discord channel
func (s *service) GetWheelByChannel(ctx context.Context, input *GetWheelByChannelInput) (*GetWheelByChannelOutput, error) {
	output, err := s.wheelRepo.GetWheelByChannel(ctx, &wheelRepo.GetWheelByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, wheelRepo.ErrWheelNotFound) {
			return nil, ErrWheelNotFound
		}
		return nil, err
	}

	segments, err := wheel.BuildPartition(output.Wheel.Options)
	if err != nil {
		return nil, err
	}

	return &GetWheelByChannelOutput{
		Wheel:    output.Wheel,
		Segments: segments,
	}, nil
}

// AddOption appends an option to a wheel
func (s *service) AddOption(ctx context.Context, input *AddOptionInput) (*AddOptionOutput, error) {
	w, err := s.getWheel(ctx, input.WheelID)
	if err != nil {
		return nil, err
	}

	if s.spinInProgress(w) {
		return nil, ErrSpinInProgress
	}

	if len(w.Options)+1 > s.maxOptions {
		return nil, ErrTooManyOptions
	}

	candidate := make([]models.Option, 0, len(w.Options)+1)
	candidate = append(candidate, w.Options...)
	candidate = append(candidate, input.Option)

	if _, err := wheel.BuildPartition(candidate); err != nil {
		return nil, err
	}

	w.Options = candidate
	w.UpdatedAt = s.clock.Now()

	err = s.wheelRepo.SaveWheel(ctx, &wheelRepo.SaveWheelInput{
		Wheel: w,
	})
	if err != nil {
		return nil, err
	}

	return &AddOptionOutput{
		Wheel: w,
	}, nil
}

// RemoveOption removes an option from a wheel by label
func (s *service) RemoveOption(ctx context.Context, input *RemoveOptionInput) (*RemoveOptionOutput, error) {
	w, err := s.getWheel(ctx, input.WheelID)
	if err != nil {
		return nil, err
	}

	if s.spinInProgress(w) {
		return nil, ErrSpinInProgress
	}

	remaining := make([]models.Option, 0, len(w.Options))
	found := false

	for _, opt := range w.Options {
		// Remove the first match only; duplicate labels are allowed
		if !found && strings.EqualFold(opt.Label, input.Label) {
			found = true
			continue
		}
		remaining = append(remaining, opt)
	}

	if !found {
		return nil, ErrOptionNotFound
	}

	if len(remaining) < wheel.MinOptions {
		return nil, ErrTooFewOptions
	}

	w.Options = remaining
	w.UpdatedAt = s.clock.Now()

	err = s.wheelRepo.SaveWheel(ctx, &wheelRepo.SaveWheelInput{
		Wheel: w,
	})
	if err != nil {
		return nil, err
	}

	return &RemoveOptionOutput{
		Wheel: w,
	}, nil
}

// ReplaceOptions swaps a wheel's option set wholesale
func (s *service) ReplaceOptions(ctx context.Context, input *ReplaceOptionsInput) (*ReplaceOptionsOutput, error) {
	w, err := s.getWheel(ctx, input.WheelID)
	if err != nil {
		return nil, err
	}

	if s.spinInProgress(w) {
		return nil, ErrSpinInProgress
	}

	if len(input.Options) > s.maxOptions {
		return nil, ErrTooManyOptions
	}

	if _, err := wheel.BuildPartition(input.Options); err != nil {
		return nil, err
	}

	w.Options = input.Options
	w.UpdatedAt = s.clock.Now()

	err = s.wheelRepo.SaveWheel(ctx, &wheelRepo.SaveWheelInput{
		Wheel: w,
	})
	if err != nil {
		return nil, err
	}

	return &ReplaceOptionsOutput{
		Wheel: w,
	}, nil
}

// DeleteWheel removes a wheel and its spin history
func (s *service) DeleteWheel(ctx context.Context, input *DeleteWheelInput) (*DeleteWheelOutput, error) {
	// Make sure the wheel exists before touching anything
	if _, err := s.getWheel(ctx, input.WheelID); err != nil {
		return nil, err
	}

	err := s.spinLogRepo.DeleteSpinsForWheel(ctx, &spinlogRepo.DeleteSpinsForWheelInput{
		WheelID: input.WheelID,
	})
	if err != nil {
		return nil, err
	}

	err = s.wheelRepo.DeleteWheel(ctx, &wheelRepo.DeleteWheelInput{
		WheelID: input.WheelID,
	})
	if err != nil {
		return nil, err
	}

	return &DeleteWheelOutput{
		Success: true,
	}, nil
}

// Spin spins a wheel and records the outcome.
//
// The wheel's persisted status is the reentrancy guard: a wheel stored as
// spinning rejects further spin requests until it returns to idle, which
// happens in the same call once the result has been recorded, or
// immediately if the spin fails. A spinning status older than
// spinStaleAfter is treated as idle so a crash mid-spin cannot lock the
// wheel forever.
func (s *service) Spin(ctx context.Context, input *SpinInput) (*SpinOutput, error) {
	w, err := s.getWheel(ctx, input.WheelID)
	if err != nil {
		return nil, err
	}

	if s.spinInProgress(w) {
		return nil, ErrSpinInProgress
	}

	now := s.clock.Now()

	// Mark the wheel spinning so overlapping requests are rejected
	w.Status = models.WheelStatusSpinning
	w.UpdatedAt = now

	err = s.wheelRepo.SaveWheel(ctx, &wheelRepo.SaveWheelInput{
		Wheel: w,
	})
	if err != nil {
		return nil, err
	}

	result, err := wheel.Spin(w.Options, s.randomSource)
	if err != nil {
		s.releaseWheel(ctx, w)
		return nil, err
	}

	record := &models.SpinRecord{
		ID:         s.uuidGenerator.NewUUID(),
		WheelID:    w.ID,
		ChannelID:  w.ChannelID,
		PlayerID:   input.PlayerID,
		PlayerName: input.PlayerName,
		Label:      result.Option.Label,
		Color:      result.Option.Color,
		Angle:      result.Angle,
		Timestamp:  now,
	}

	err = s.spinLogRepo.AddSpinRecord(ctx, &spinlogRepo.AddSpinRecordInput{
		Record: record,
	})
	if err != nil {
		s.releaseWheel(ctx, w)
		return nil, err
	}

	// The spin is complete; bring the wheel back to rest
	w.Status = models.WheelStatusIdle
	w.LastAngle = result.Angle
	w.UpdatedAt = s.clock.Now()

	err = s.wheelRepo.SaveWheel(ctx, &wheelRepo.SaveWheelInput{
		Wheel: w,
	})
	if err != nil {
		return nil, err
	}

	return &SpinOutput{
		Record: record,
		Option: result.Option,
		Angle:  result.Angle,
	}, nil
}

// GetHistory returns recent spin outcomes for a wheel
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if _, err := s.getWheel(ctx, input.WheelID); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = s.historyLimit
	}

	recent, err := s.spinLogRepo.GetRecentSpins(ctx, &spinlogRepo.GetRecentSpinsInput{
		WheelID: input.WheelID,
		Limit:   limit,
	})
	if err != nil {
		return nil, err
	}

	count, err := s.spinLogRepo.CountSpins(ctx, &spinlogRepo.CountSpinsInput{
		WheelID: input.WheelID,
	})
	if err != nil {
		return nil, err
	}

	return &GetHistoryOutput{
		Records:    recent.Records,
		TotalSpins: count.Count,
	}, nil
}

// spinInProgress reports whether the wheel's persisted spinning status is
// live. A spinning status older than spinStaleAfter was left behind by a
// crash mid-spin and no longer blocks anything; the next spin reclaims the
// wheel.
func (s *service) spinInProgress(w *models.Wheel) bool {
	return w.Status == models.WheelStatusSpinning &&
		s.clock.Now().Sub(w.UpdatedAt) < spinStaleAfter
}

// getWheel loads a wheel by ID, mapping the repository's not-found error
// onto the service taxonomy
func (s *service) getWheel(ctx context.Context, wheelID string) (*models.Wheel, error) {
	output, err := s.wheelRepo.GetWheel(ctx, &wheelRepo.GetWheelInput{
		WheelID: wheelID,
	})
	if err != nil {
		if errors.Is(err, wheelRepo.ErrWheelNotFound) {
			return nil, ErrWheelNotFound
		}
		return nil, err
	}

	return output.Wheel, nil
}

// releaseWheel puts a wheel back to idle after a failed spin. The spin
// already failed, so the caller's error wins; a failure here only leaves
// the wheel to be released by the next successful save.
func (s *service) releaseWheel(ctx context.Context, w *models.Wheel) {
	w.Status = models.WheelStatusIdle
	w.UpdatedAt = s.clock.Now()

	_ = s.wheelRepo.SaveWheel(ctx, &wheelRepo.SaveWheelInput{
		Wheel: w,
	})
}
