package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/arjunv/cognify/internal/store"
)

// LoggingProvider records every LLM request in the request log.
type LoggingProvider struct {
	inner  Provider
	logRepo store.LLMLogRepo
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, repo store.LLMLogRepo) Provider {
	return &LoggingProvider{inner: p, logRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	rec := store.LLMRequestRecord{
		Timestamp: start,
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
		rec.Model = resp.Model
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	// Log the request but never fail the call over a logging error.
	if logErr := l.logRepo.Append(ctx, rec); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
