package mypubsub

import (
	"encoding/json"
	"fmt"
	"time"
)

type EventEnvelope struct {
	UID           string    `json:"uid"`
	CreatedAt     time.Time `json:"createdAt"`
	Topic         string    `json:"topic"`
	AggregateUID  string    `json:"aggregateUid"`
	EventTypeName string    `json:"eventTypeName"`
	EventPayload  string    `json:"eventPayload"`
}

func (e EventEnvelope) String() string {
	return e.Topic + "." + e.EventTypeName + "." + e.AggregateUID
}

type Event interface {
	GetEventTypeName() string
	GetAggregateName() string
}

// Wrap serializes event into an envelope ready for Publish.
func Wrap(uid string, createdAt time.Time, topic string, event Event) (string, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("error marshalling event %s: %w", event.GetEventTypeName(), err)
	}

	envelope, err := json.Marshal(EventEnvelope{
		UID:           uid,
		CreatedAt:     createdAt,
		Topic:         topic,
		AggregateUID:  event.GetAggregateName(),
		EventTypeName: event.GetEventTypeName(),
		EventPayload:  string(payload),
	})
	if err != nil {
		return "", fmt.Errorf("error marshalling envelope for %s: %w", event.GetEventTypeName(), err)
	}

	return string(envelope), nil
}
