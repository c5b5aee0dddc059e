// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExamRecord is the predicate function for examrecord builders.
type ExamRecord func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// WorkspaceState is the predicate function for workspacestate builders.
type WorkspaceState func(*sql.Selector)
