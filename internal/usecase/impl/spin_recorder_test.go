package impl

import (
	"context"
	"errors"
	"testing"

	"justchoose/config"
	deliverycontext "justchoose/internal/delivery/context"
	"justchoose/internal/domain/constants"
	"justchoose/internal/domain/entity"
	"justchoose/internal/domain/service"
	mockRepo "justchoose/internal/mocks/repository"
	mockService "justchoose/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func runNow(fn func()) {
	fn()
}

func newTestSpin() *entity.SpinRecord {
	options := samplePlaces(2)

	return &entity.SpinRecord{ID: uuid.New(), Seed: "abc123", Options: options, SelectedID: options[0].ID}
}

func TestNewSpinRecorder_SelectsMode(t *testing.T) {
	tests := []struct {
		provider string
		want     any
	}{
		{constants.PubSubProviderNone, &directSpinRecorder{}},
		{constants.PubSubProviderLocal, &publishingSpinRecorder{}},
		{constants.PubSubProviderGoogle, &publishingSpinRecorder{}},
	}

	for _, tt := range tests {
		t.Run("provider "+tt.provider, func(t *testing.T) {
			cfg := newTestConfig()
			cfg.PubSub = &config.PubSubConfig{Provider: tt.provider}

			recorder := NewSpinRecorder(SpinRecorderParams{
				SpinRepo:  mockRepo.NewMockSpinRepository(t),
				Publisher: mockService.NewMockEventPublisher(t),
				Config:    cfg,
				Logger:    newDiscardLogger(),
			})
			assert.IsType(t, tt.want, recorder)
		})
	}
}

func TestDirectSpinRecorder_OutlivesRequest(t *testing.T) {
	spinRepo := mockRepo.NewMockSpinRepository(t)
	recorder := &directSpinRecorder{spinRepo: spinRepo, logger: newDiscardLogger(), spawn: runNow}
	spin := newTestSpin()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	spinRepo.EXPECT().Create(mock.Anything, spin).
		Run(func(writeCtx context.Context, _ *entity.SpinRecord) {
			assert.NoError(t, writeCtx.Err())
			_, hasDeadline := writeCtx.Deadline()
			assert.True(t, hasDeadline)
		}).
		Return(nil)

	recorder.Record(ctx, spin)
}

func TestDirectSpinRecorder_FailureIsSwallowed(t *testing.T) {
	spinRepo := mockRepo.NewMockSpinRepository(t)
	recorder := &directSpinRecorder{spinRepo: spinRepo, logger: newDiscardLogger(), spawn: runNow}
	spin := newTestSpin()

	spinRepo.EXPECT().Create(mock.Anything, spin).Return(errors.New("db down"))

	assert.NotPanics(t, func() { recorder.Record(context.Background(), spin) })
}

func TestPublishingSpinRecorder_CarriesRequestID(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	recorder := &publishingSpinRecorder{publisher: publisher, logger: newDiscardLogger(), spawn: runNow}
	spin := newTestSpin()
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	publisher.EXPECT().PublishSpinRecorded(mock.Anything, &service.SpinRecordedEvent{RequestID: "req-42", Spin: spin}).Return(nil)

	recorder.Record(ctx, spin)
}

func TestPublishingSpinRecorder_FailureIsSwallowed(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	recorder := &publishingSpinRecorder{publisher: publisher, logger: newDiscardLogger(), spawn: runNow}

	publisher.EXPECT().PublishSpinRecorded(mock.Anything, mock.Anything).Return(errors.New("topic missing"))

	assert.NotPanics(t, func() { recorder.Record(context.Background(), newTestSpin()) })
}
