package models

import "time"

// OutboxMessage is one pending event row. Body is the serialized event
// payload; Locked marks rows claimed by an in-flight relay batch.
type OutboxMessage struct {
	ID        string
	Body      []byte
	Locked    bool
	CreatedAt time.Time
}
