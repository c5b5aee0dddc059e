// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/gfranca/mestre/ent/examrecord"
	"github.com/gfranca/mestre/ent/llmrequestevent"
	"github.com/gfranca/mestre/ent/schema"
	"github.com/gfranca/mestre/ent/workspacestate"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	examrecordFields := schema.ExamRecord{}.Fields()
	_ = examrecordFields
	// examrecordDescUpdatedAt is the schema descriptor for updated_at field.
	examrecordDescUpdatedAt := examrecordFields[3].Descriptor()
	// examrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	examrecord.DefaultUpdatedAt = examrecordDescUpdatedAt.Default.(func() time.Time)
	// examrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	examrecord.UpdateDefaultUpdatedAt = examrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	workspacestateFields := schema.WorkspaceState{}.Fields()
	_ = workspacestateFields
	// workspacestateDescUpdatedAt is the schema descriptor for updated_at field.
	workspacestateDescUpdatedAt := workspacestateFields[2].Descriptor()
	// workspacestate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workspacestate.DefaultUpdatedAt = workspacestateDescUpdatedAt.Default.(func() time.Time)
	// workspacestate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workspacestate.UpdateDefaultUpdatedAt = workspacestateDescUpdatedAt.UpdateDefault.(func() time.Time)
}
