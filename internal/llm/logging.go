package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gfranca/mestre/internal/store"
)

// LoggingProvider records every request as an event so `mestre llm` can
// audit prompts, latency, token spend, and grounding after the fact.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
}

// WithLogging decorates p with event logging.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, eventRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = serializeResponse(resp)
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// A failed audit write never fails the request itself.
	if logErr := l.eventRepo.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest renders the request in the [section] layout the
// `llm view` command prints.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.UseSearch {
		b.WriteString("[search grounding requested]\n\n")
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			b.WriteString(fmt.Sprintf("[schema: %s]\n", req.Schema.Name))
			b.WriteString(string(schemaDef))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// serializeResponse is the content plus a footer listing the web sources
// the provider grounded it in, when there were any.
func serializeResponse(resp *Response) string {
	if len(resp.Sources) == 0 {
		return string(resp.Content)
	}

	var b strings.Builder
	b.Write(resp.Content)
	b.WriteString("\n\n[sources]\n")
	for _, s := range resp.Sources {
		if s.Title != "" {
			b.WriteString(fmt.Sprintf("%s <%s>\n", s.Title, s.URI))
		} else {
			b.WriteString(s.URI + "\n")
		}
	}
	return b.String()
}
