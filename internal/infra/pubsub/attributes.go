package pubsub

import (
	"encoding/json"

	"justchoose/internal/domain/service"

	"github.com/pkg/errors"
)

// encodeSpinEvent serializes the event and derives message attributes for filtering and tracing
func encodeSpinEvent(event *service.SpinRecordedEvent) ([]byte, map[string]string, error) {
	if event == nil || event.Spin == nil {
		return nil, nil, errors.New("spin event is empty")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"spin_id": event.Spin.ID.String(),
	}
	if event.Spin.OwnerID != nil {
		attributes["owner_id"] = event.Spin.OwnerID.String()
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return data, attributes, nil
}
