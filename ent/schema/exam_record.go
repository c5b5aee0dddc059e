package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamRecord is one saved exam, stored as a JSON document keyed by title.
// The whole collection is overwritten as a full snapshot on every database
// change, so rows never drift from the in-memory workspace.
type ExamRecord struct {
	ent.Schema
}

func (ExamRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			Unique().
			Comment("Exam title, the record's natural key"),
		field.Int("position").
			Comment("Insertion order within the saved collection"),
		field.JSON("data", map[string]any{}).
			Comment("Full exam record as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the record was last written"),
	}
}

func (ExamRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("position"),
	}
}
