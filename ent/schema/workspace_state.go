package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// WorkspaceState is the singleton row holding the active UI context:
// current view, search terms, and the in-flight session. It is written
// independently of the exam records, so a corrupt context never blocks
// restoring the saved exams (and vice versa).
type WorkspaceState struct {
	ent.Schema
}

func (WorkspaceState) Fields() []ent.Field {
	return []ent.Field{
		field.String("slot").
			Unique().
			Comment("Fixed key; exactly one row exists"),
		field.JSON("data", map[string]any{}).
			Comment("Serialized workspace context"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the context was last written"),
	}
}
