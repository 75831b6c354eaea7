package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity — persisted
// broadcast events kept for websocket catchup, pruned by the cleanup
// service after their TTL.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		// Implicit auto-increment int id — catchup relies on insertion order.
		field.String("session_id"),
		field.String("channel"),
		field.JSON("payload", map[string]any{}),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "id"),
		index.Fields("session_id"),
		index.Fields("created_at"),
	}
}
