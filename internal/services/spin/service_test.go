package spin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	clockMocks "github.com/wheelbot/wheelie/internal/common/clock/mocks"
	uuidMocks "github.com/wheelbot/wheelie/internal/common/uuid/mocks"
	"github.com/wheelbot/wheelie/internal/models"
	spinlogRepo "github.com/wheelbot/wheelie/internal/repositories/spinlog"
	spinlogMocks "github.com/wheelbot/wheelie/internal/repositories/spinlog/mocks"
	wheelRepo "github.com/wheelbot/wheelie/internal/repositories/wheel"
	wheelMocks "github.com/wheelbot/wheelie/internal/repositories/wheel/mocks"
	"github.com/wheelbot/wheelie/internal/rng"
	rngMocks "github.com/wheelbot/wheelie/internal/rng/mocks"
	"github.com/wheelbot/wheelie/internal/wheel"
	"go.uber.org/mock/gomock"
)

type SpinServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockWheelRepo   *wheelMocks.MockRepository
	mockSpinLogRepo *spinlogMocks.MockRepository
	mockSource      *rngMocks.MockSource
	mockClock       *clockMocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	spinService     Service
	ctx             context.Context

	// Test data
	testTime       time.Time
	testWheelID    string
	testChannelID  string
	testCreatorID  string
	testPlayerID   string
	testPlayerName string
	testRecordID   string

	// Reusable test fixtures
	testOptions   []models.Option
	expectedWheel *models.Wheel
}

func (s *SpinServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockWheelRepo = wheelMocks.NewMockRepository(s.mockCtrl)
	s.mockSpinLogRepo = spinlogMocks.NewMockRepository(s.mockCtrl)
	s.mockSource = rngMocks.NewMockSource(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.testWheelID = "test-wheel-id"
	s.testChannelID = "test-channel-id"
	s.testCreatorID = "test-creator-id"
	s.testPlayerID = "test-player-id"
	s.testPlayerName = "Test Player"
	s.testRecordID = "test-record-id"

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.testOptions = []models.Option{
		{Label: "A", Color: "#e74c3c", Weight: 1},
		{Label: "B", Color: "#3498db", Weight: 1},
		{Label: "C", Color: "#2ecc71", Weight: 2},
	}

	svc, err := New(&Config{
		WheelRepo:     s.mockWheelRepo,
		SpinLogRepo:   s.mockSpinLogRepo,
		RandomSource:  s.mockSource,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.spinService = svc
}

func (s *SpinServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSpinServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SpinServiceTestSuite))
}

// idleWheel returns a fresh idle wheel fixture; tests mutate the wheel
// they are handed, so each expectation gets its own copy
func (s *SpinServiceTestSuite) idleWheel() *models.Wheel {
	options := make([]models.Option, len(s.testOptions))
	copy(options, s.testOptions)

	return &models.Wheel{
		ID:        s.testWheelID,
		ChannelID: s.testChannelID,
		CreatorID: s.testCreatorID,
		Status:    models.WheelStatusIdle,
		Options:   options,
		CreatedAt: s.testTime,
		UpdatedAt: s.testTime,
	}
}

func (s *SpinServiceTestSuite) expectGetWheel(w *models.Wheel) {
	s.mockWheelRepo.EXPECT().GetWheel(s.ctx, &wheelRepo.GetWheelInput{
		WheelID: s.testWheelID,
	}).Return(&wheelRepo.GetWheelOutput{Wheel: w}, nil)
}

func (s *SpinServiceTestSuite) TestNewRejectsMissingDependencies() {
	cases := []struct {
		name string
		cfg  *Config
		want SpinError
	}{
		{name: "nil config", cfg: nil, want: ErrNilConfig},
		{
			name: "nil wheel repo",
			cfg:  &Config{SpinLogRepo: s.mockSpinLogRepo, RandomSource: s.mockSource, Clock: s.mockClock, UUIDGenerator: s.mockUUID},
			want: ErrNilWheelRepo,
		},
		{
			name: "nil spin log repo",
			cfg:  &Config{WheelRepo: s.mockWheelRepo, RandomSource: s.mockSource, Clock: s.mockClock, UUIDGenerator: s.mockUUID},
			want: ErrNilSpinLogRepo,
		},
		{
			name: "nil random source",
			cfg:  &Config{WheelRepo: s.mockWheelRepo, SpinLogRepo: s.mockSpinLogRepo, Clock: s.mockClock, UUIDGenerator: s.mockUUID},
			want: ErrNilRandomSource,
		},
		{
			name: "nil clock",
			cfg:  &Config{WheelRepo: s.mockWheelRepo, SpinLogRepo: s.mockSpinLogRepo, RandomSource: s.mockSource, UUIDGenerator: s.mockUUID},
			want: ErrNilClock,
		},
		{
			name: "nil uuid generator",
			cfg:  &Config{WheelRepo: s.mockWheelRepo, SpinLogRepo: s.mockSpinLogRepo, RandomSource: s.mockSource, Clock: s.mockClock},
			want: ErrNilUUIDGenerator,
		},
	}

	for _, tc := range cases {
		svc, err := New(tc.cfg)
		s.Nil(svc, tc.name)
		s.ErrorIs(err, tc.want, tc.name)
	}
}

func (s *SpinServiceTestSuite) TestCreateWheel() {
	s.mockWheelRepo.EXPECT().GetWheelByChannel(s.ctx, &wheelRepo.GetWheelByChannelInput{
		ChannelID: s.testChannelID,
	}).Return(nil, wheelRepo.ErrWheelNotFound)

	s.mockUUID.EXPECT().NewUUID().Return(s.testWheelID)

	s.mockWheelRepo.EXPECT().SaveWheel(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *wheelRepo.SaveWheelInput) error {
			s.Equal(s.testWheelID, input.Wheel.ID)
			s.Equal(s.testChannelID, input.Wheel.ChannelID)
			s.Equal(models.WheelStatusIdle, input.Wheel.Status)
			s.Equal(s.testOptions, input.Wheel.Options)
			s.Equal(s.testTime, input.Wheel.CreatedAt)
			return nil
		})

	output, err := s.spinService.CreateWheel(s.ctx, &CreateWheelInput{
		ChannelID: s.testChannelID,
		CreatorID: s.testCreatorID,
		Options:   s.testOptions,
	})

	s.Require().NoError(err)
	s.Equal(s.testWheelID, output.WheelID)
}

func (s *SpinServiceTestSuite) TestCreateWheelDefaultsToYesNo() {
	s.mockWheelRepo.EXPECT().GetWheelByChannel(s.ctx, gomock.Any()).
		Return(nil, wheelRepo.ErrWheelNotFound)
	s.mockUUID.EXPECT().NewUUID().Return(s.testWheelID)

	s.mockWheelRepo.EXPECT().SaveWheel(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *wheelRepo.SaveWheelInput) error {
			s.Require().Len(input.Wheel.Options, 2)
			s.Equal("Yes", input.Wheel.Options[0].Label)
			s.Equal("No", input.Wheel.Options[1].Label)
			return nil
		})

	_, err := s.spinService.CreateWheel(s.ctx, &CreateWheelInput{
		ChannelID: s.testChannelID,
		CreatorID: s.testCreatorID,
	})
	s.Require().NoError(err)
}

func (s *SpinServiceTestSuite) TestCreateWheelRejectsExistingChannelWheel() {
	s.mockWheelRepo.EXPECT().GetWheelByChannel(s.ctx, gomock.Any()).
		Return(&wheelRepo.GetWheelByChannelOutput{Wheel: s.idleWheel()}, nil)

	output, err := s.spinService.CreateWheel(s.ctx, &CreateWheelInput{
		ChannelID: s.testChannelID,
		CreatorID: s.testCreatorID,
	})

	s.Nil(output)
	s.ErrorIs(err, ErrWheelAlreadyExists)
}

func (s *SpinServiceTestSuite) TestCreateWheelRejectsInvalidConfiguration() {
	s.mockWheelRepo.EXPECT().GetWheelByChannel(s.ctx, gomock.Any()).
		Return(nil, wheelRepo.ErrWheelNotFound).Times(2)

	// Zero weight
	output, err := s.spinService.CreateWheel(s.ctx, &CreateWheelInput{
		ChannelID: s.testChannelID,
		Options: []models.Option{
			{Label: "A", Weight: 0},
			{Label: "B", Weight: 1},
		},
	})
	s.Nil(output)
	s.ErrorIs(err, wheel.ErrInvalidConfiguration)

	// Single option
	output, err = s.spinService.CreateWheel(s.ctx, &CreateWheelInput{
		ChannelID: s.testChannelID,
		Options: []models.Option{
			{Label: "A", Weight: 1},
		},
	})
	s.Nil(output)
	s.ErrorIs(err, wheel.ErrInvalidConfiguration)
}

func (s *SpinServiceTestSuite) TestSpin() {
	w := s.idleWheel()
	s.expectGetWheel(w)

	// First save marks the wheel spinning
	savedSpinning := s.mockWheelRepo.EXPECT().SaveWheel(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *wheelRepo.SaveWheelInput) error {
			s.Equal(models.WheelStatusSpinning, input.Wheel.Status)
			return nil
		})

	// Fixed randomness: 2 extra revolutions and half a turn, so the
	// target is (5+2)*360 + 180, landing B's far seam on the pointer
	s.mockSource.EXPECT().Intn(wheel.MaxRevolutions - wheel.MinRevolutions + 1).Return(2)
	s.mockSource.EXPECT().Float64().Return(0.5)

	s.mockUUID.EXPECT().NewUUID().Return(s.testRecordID)

	s.mockSpinLogRepo.EXPECT().AddSpinRecord(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *spinlogRepo.AddSpinRecordInput) error {
			s.Equal(s.testRecordID, input.Record.ID)
			s.Equal(s.testWheelID, input.Record.WheelID)
			s.Equal(s.testPlayerID, input.Record.PlayerID)
			s.Equal("B", input.Record.Label)
			s.Equal(2700.0, input.Record.Angle)
			s.Equal(s.testTime, input.Record.Timestamp)
			return nil
		})

	// Second save brings the wheel back to idle with the new rest angle
	s.mockWheelRepo.EXPECT().SaveWheel(s.ctx, gomock.Any()).After(savedSpinning).DoAndReturn(
		func(_ context.Context, input *wheelRepo.SaveWheelInput) error {
			s.Equal(models.WheelStatusIdle, input.Wheel.Status)
			s.Equal(2700.0, input.Wheel.LastAngle)
			return nil
		})

	output, err := s.spinService.Spin(s.ctx, &SpinInput{
		WheelID:    s.testWheelID,
		PlayerID:   s.testPlayerID,
		PlayerName: s.testPlayerName,
	})

	s.Require().NoError(err)
	s.Equal("B", output.Option.Label)
	s.Equal(2700.0, output.Angle)
	s.Equal(s.testRecordID, output.Record.ID)
}

func (s *SpinServiceTestSuite) TestSpinRejectsWhileSpinning() {
	w := s.idleWheel()
	w.Status = models.WheelStatusSpinning
	w.UpdatedAt = s.testTime.Add(-time.Second)
	s.expectGetWheel(w)

	output, err := s.spinService.Spin(s.ctx, &SpinInput{
		WheelID:  s.testWheelID,
		PlayerID: s.testPlayerID,
	})

	s.Nil(output)
	s.ErrorIs(err, ErrSpinInProgress)
}

func (s *SpinServiceTestSuite) TestSpinReclaimsStaleSpinningStatus() {
	// A spinning status last touched well beyond the staleness window is
	// debris from a crash, not a spin in flight; the wheel spins normally
	w := s.idleWheel()
	w.Status = models.WheelStatusSpinning
	w.UpdatedAt = s.testTime.Add(-2 * spinStaleAfter)
	s.expectGetWheel(w)

	s.mockWheelRepo.EXPECT().SaveWheel(s.ctx, gomock.Any()).Return(nil).Times(2)
	s.mockSource.EXPECT().Intn(gomock.Any()).Return(0)
	s.mockSource.EXPECT().Float64().Return(0.0)
	s.mockUUID.EXPECT().NewUUID().Return(s.testRecordID)
	s.mockSpinLogRepo.EXPECT().AddSpinRecord(s.ctx, gomock.Any()).Return(nil)

	output, err := s.spinService.Spin(s.ctx, &SpinInput{
		WheelID:  s.testWheelID,
		PlayerID: s.testPlayerID,
	})

	s.Require().NoError(err)
	s.Equal("A", output.Option.Label)
}

func (s *SpinServiceTestSuite) TestAddOptionRejectsWhileSpinning() {
	w := s.idleWheel()
	w.Status = models.WheelStatusSpinning
	s.expectGetWheel(w)

	output, err := s.spinService.AddOption(s.ctx, &AddOptionInput{
		WheelID: s.testWheelID,
		Option:  models.Option{Label: "D", Weight: 1},
	})

	s.Nil(output)
	s.ErrorIs(err, ErrSpinInProgress)
}

func (s *SpinServiceTestSuite) TestSpinReleasesWheelWhenConfigurationIsInvalid() {
	// A wheel persisted with a single option should never exist, but the
	// spin path still refuses it and puts the wheel back to idle
	w := s.idleWheel()
	w.Options = w.Options[:1]
	s.expectGetWheel(w)

	savedSpinning := s.mockWheelRepo.EXPECT().SaveWheel(s.ctx, gomock.Any()).Return(nil)

	s.mockWheelRepo.EXPECT().SaveWheel(s.ctx, gomock.Any()).After(savedSpinning).DoAndReturn(
		func(_ context.Context, input *wheelRepo.SaveWheelInput) error {
			s.Equal(models.WheelStatusIdle, input.Wheel.Status)
			return nil
		})

	output, err := s.spinService.Spin(s.ctx, &SpinInput{
		WheelID:  s.testWheelID,
		PlayerID: s.testPlayerID,
	})

	s.Nil(output)
	s.ErrorIs(err, wheel.ErrInvalidConfiguration)
}

func (s *SpinServiceTestSuite) TestSpinIsDeterministicForAFixedSeed() {
	spinOnce := func() *SpinOutput {
		w := s.idleWheel()
		s.expectGetWheel(w)
		s.mockWheelRepo.EXPECT().SaveWheel(s.ctx, gomock.Any()).Return(nil).Times(2)
		s.mockUUID.EXPECT().NewUUID().Return(s.testRecordID)
		s.mockSpinLogRepo.EXPECT().AddSpinRecord(s.ctx, gomock.Any()).Return(nil)

		svc, err := New(&Config{
			WheelRepo:     s.mockWheelRepo,
			SpinLogRepo:   s.mockSpinLogRepo,
			RandomSource:  rng.New(&rng.Config{Seed: 1234}),
			Clock:         s.mockClock,
			UUIDGenerator: s.mockUUID,
		})
		s.Require().NoError(err)

		output, err := svc.Spin(s.ctx, &SpinInput{
			WheelID:  s.testWheelID,
			PlayerID: s.testPlayerID,
		})
		s.Require().NoError(err)
		return output
	}

	first := spinOnce()
	second := spinOnce()

	s.Equal(first.Angle, second.Angle)
	s.Equal(first.Option.Label, second.Option.Label)
}

func (s *SpinServiceTestSuite) TestAddOption() {
	w := s.idleWheel()
	s.expectGetWheel(w)

	s.mockWheelRepo.EXPECT().SaveWheel(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *wheelRepo.SaveWheelInput) error {
			s.Require().Len(input.Wheel.Options, 4)
			s.Equal("D", input.Wheel.Options[3].Label)
			return nil
		})

	output, err := s.spinService.AddOption(s.ctx, &AddOptionInput{
		WheelID: s.testWheelID,
		Option:  models.Option{Label: "D", Color: "#9b59b6", Weight: 0.5},
	})

	s.Require().NoError(err)
	s.Len(output.Wheel.Options, 4)
}

func (s *SpinServiceTestSuite) TestAddOptionRejectsInvalidWeight() {
	s.expectGetWheel(s.idleWheel())

	output, err := s.spinService.AddOption(s.ctx, &AddOptionInput{
		WheelID: s.testWheelID,
		Option:  models.Option{Label: "D", Weight: 0},
	})

	s.Nil(output)
	s.ErrorIs(err, wheel.ErrInvalidConfiguration)
}

func (s *SpinServiceTestSuite) TestRemoveOption() {
	w := s.idleWheel()
	s.expectGetWheel(w)

	s.mockWheelRepo.EXPECT().SaveWheel(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *wheelRepo.SaveWheelInput) error {
			s.Require().Len(input.Wheel.Options, 2)
			s.Equal("A", input.Wheel.Options[0].Label)
			s.Equal("C", input.Wheel.Options[1].Label)
			return nil
		})

	output, err := s.spinService.RemoveOption(s.ctx, &RemoveOptionInput{
		WheelID: s.testWheelID,
		Label:   "B",
	})

	s.Require().NoError(err)
	s.Len(output.Wheel.Options, 2)
}

func (s *SpinServiceTestSuite) TestRemoveOptionRefusesToDropBelowTwo() {
	w := s.idleWheel()
	w.Options = w.Options[:2]
	s.expectGetWheel(w)

	output, err := s.spinService.RemoveOption(s.ctx, &RemoveOptionInput{
		WheelID: s.testWheelID,
		Label:   "A",
	})

	s.Nil(output)
	s.ErrorIs(err, ErrTooFewOptions)
}

func (s *SpinServiceTestSuite) TestRemoveOptionNotFound() {
	s.expectGetWheel(s.idleWheel())

	output, err := s.spinService.RemoveOption(s.ctx, &RemoveOptionInput{
		WheelID: s.testWheelID,
		Label:   "Nope",
	})

	s.Nil(output)
	s.ErrorIs(err, ErrOptionNotFound)
}

func (s *SpinServiceTestSuite) TestGetHistory() {
	s.expectGetWheel(s.idleWheel())

	records := []*models.SpinRecord{
		{ID: "spin-2", WheelID: s.testWheelID, Label: "C", Timestamp: s.testTime},
		{ID: "spin-1", WheelID: s.testWheelID, Label: "A", Timestamp: s.testTime.Add(-time.Minute)},
	}

	s.mockSpinLogRepo.EXPECT().GetRecentSpins(s.ctx, &spinlogRepo.GetRecentSpinsInput{
		WheelID: s.testWheelID,
		Limit:   defaultHistoryLimit,
	}).Return(&spinlogRepo.GetRecentSpinsOutput{Records: records}, nil)

	s.mockSpinLogRepo.EXPECT().CountSpins(s.ctx, &spinlogRepo.CountSpinsInput{
		WheelID: s.testWheelID,
	}).Return(&spinlogRepo.CountSpinsOutput{Count: 7}, nil)

	output, err := s.spinService.GetHistory(s.ctx, &GetHistoryInput{
		WheelID: s.testWheelID,
	})

	s.Require().NoError(err)
	s.Len(output.Records, 2)
	s.Equal(int64(7), output.TotalSpins)
}

func (s *SpinServiceTestSuite) TestGetWheelNotFound() {
	s.mockWheelRepo.EXPECT().GetWheel(s.ctx, gomock.Any()).
		Return(nil, wheelRepo.ErrWheelNotFound)

	output, err := s.spinService.GetWheel(s.ctx, &GetWheelInput{
		WheelID: s.testWheelID,
	})

	s.Nil(output)
	s.ErrorIs(err, ErrWheelNotFound)
}

func (s *SpinServiceTestSuite) TestDeleteWheel() {
	s.expectGetWheel(s.idleWheel())

	s.mockSpinLogRepo.EXPECT().DeleteSpinsForWheel(s.ctx, &spinlogRepo.DeleteSpinsForWheelInput{
		WheelID: s.testWheelID,
	}).Return(nil)

	s.mockWheelRepo.EXPECT().DeleteWheel(s.ctx, &wheelRepo.DeleteWheelInput{
		WheelID: s.testWheelID,
	}).Return(nil)

	output, err := s.spinService.DeleteWheel(s.ctx, &DeleteWheelInput{
		WheelID: s.testWheelID,
	})

	s.Require().NoError(err)
	s.True(output.Success)
}
