package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"justchoose/internal/domain/entity"
	"justchoose/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishSpinRecorded(t *testing.T) {
	ownerID := uuid.New()
	spin := &entity.SpinRecord{
		ID:         uuid.New(),
		OwnerID:    &ownerID,
		Seed:       "abc123",
		Options:    []entity.Place{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}},
		SelectedID: "b",
		CreatedAt:  time.Now().UTC(),
	}

	var received PubSubPushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	err := publisher.PublishSpinRecorded(context.Background(), &service.SpinRecordedEvent{RequestID: "req-1", Spin: spin})
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, spin.ID.String(), received.Message.MessageID)
	assert.Equal(t, spin.ID.String(), received.Message.Attributes["spin_id"])
	assert.Equal(t, ownerID.String(), received.Message.Attributes["owner_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.SpinRecordedEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, "b", event.Spin.SelectedID)
	assert.Len(t, event.Spin.Options, 2)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	err := publisher.PublishSpinRecorded(context.Background(), &service.SpinRecordedEvent{
		Spin: &entity.SpinRecord{ID: uuid.New()},
	})
	assert.Error(t, err)
}

func TestEncodeSpinEvent_Empty(t *testing.T) {
	_, _, err := encodeSpinEvent(&service.SpinRecordedEvent{})
	assert.Error(t, err)
}
