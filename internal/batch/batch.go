// Package batch sequences emails through the extraction pipeline: read
// text, build prompt, complete, interpret, normalize, map, persist. It is
// strictly sequential; each email's row is fully computed and appended
// before the next email begins, so output row order always equals input
// order.
package batch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rosterize/rosterize/internal/extract"
	prompts "github.com/rosterize/rosterize/internal/prompts/roster"
	"github.com/rosterize/rosterize/internal/providers"
	"github.com/rosterize/rosterize/internal/roster"
)

// Sink receives output rows. Headers are read once before the run; each
// append adds exactly one row without disturbing prior rows.
type Sink interface {
	Headers() []string
	AppendRow(values []string) error
}

// EmailReader turns an email source path into extracted text. An empty
// string with nil error means the email had no extractable text.
type EmailReader interface {
	Text(path string) (string, error)
}

// ReaderFunc adapts a function to the EmailReader interface.
type ReaderFunc func(path string) (string, error)

// Text implements EmailReader.
func (f ReaderFunc) Text(path string) (string, error) {
	return f(path)
}

// Config holds the per-run collaborators and knobs for a Runner.
type Config struct {
	Schema  *roster.Schema
	Mapping roster.HeaderMapping
	Client  providers.LLMClient
	Sink    Sink
	Reader  EmailReader
	Logger  *slog.Logger

	// BatchSize partitions the email list for progress reporting only; it
	// never changes per-email semantics or introduces concurrency.
	BatchSize int

	// Completion parameters passed through to the provider.
	Model       string
	Temperature float64
	MaxTokens   int

	// Validate logs schema-conformance diagnostics for each candidate
	// record. Extraction proceeds either way.
	Validate bool
}

// Report summarizes one run.
type Report struct {
	Total     int `json:"total" yaml:"total"`         // emails seen
	Processed int `json:"processed" yaml:"processed"` // rows appended
	Skipped   int `json:"skipped" yaml:"skipped"`     // per-item failures
}

// Runner executes extraction runs against a fixed configuration.
type Runner struct {
	cfg     Config
	log     *slog.Logger
	headers []string
}

// NewRunner validates the configuration and reads the sink's header row.
func NewRunner(cfg Config) (*Runner, error) {
	if cfg.Schema == nil {
		return nil, fmt.Errorf("batch: schema is required")
	}
	if cfg.Mapping == nil {
		return nil, fmt.Errorf("batch: header mapping is required")
	}
	if cfg.Client == nil {
		return nil, fmt.Errorf("batch: LLM client is required")
	}
	if cfg.Sink == nil {
		return nil, fmt.Errorf("batch: sink is required")
	}
	if cfg.Reader == nil {
		return nil, fmt.Errorf("batch: email reader is required")
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 1
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	headers := cfg.Sink.Headers()
	if len(headers) == 0 {
		return nil, fmt.Errorf("batch: sink has no headers")
	}

	return &Runner{cfg: cfg, log: log, headers: headers}, nil
}

// Run processes every source in order and appends one row per successfully
// read email. Unreadable or empty sources are reported and skipped; a sink
// append failure aborts the run because row order and header alignment must
// hold for the persisted document.
func (r *Runner) Run(ctx context.Context, sources []string) (*Report, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("batch: no email sources provided")
	}

	report := &Report{Total: len(sources)}

	for start := 0; start < len(sources); start += r.cfg.BatchSize {
		end := start + r.cfg.BatchSize
		if end > len(sources) {
			end = len(sources)
		}
		r.log.Info("processing batch",
			"batch", start/r.cfg.BatchSize+1,
			"files", end-start,
			"done", start,
			"total", len(sources))

		for _, src := range sources[start:end] {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			if err := r.processOne(ctx, src, report); err != nil {
				return report, err
			}
		}
	}

	r.log.Info("run complete",
		"processed", report.Processed,
		"skipped", report.Skipped,
		"total", report.Total)
	return report, nil
}

// processOne runs the full pipeline for a single email. Returned errors are
// fatal (sink failures); per-item problems are logged and counted instead.
func (r *Runner) processOne(ctx context.Context, src string, report *Report) error {
	requestID := uuid.New().String()
	log := r.log.With("source", src, "request_id", requestID)

	text, err := r.cfg.Reader.Text(src)
	if err != nil {
		log.Warn("skipping unreadable email", "error", err)
		report.Skipped++
		return nil
	}
	if text == "" {
		log.Warn("skipping email with no extractable text")
		report.Skipped++
		return nil
	}

	candidate := r.complete(ctx, text, requestID, log)

	if r.cfg.Validate {
		if err := extract.Validate(candidate, prompts.ExtractionSchemaJSON(r.cfg.Schema)); err != nil {
			log.Debug("candidate record off-schema", "issue", err)
		}
	}

	record := extract.Normalize(candidate, r.cfg.Schema)
	row := extract.MapRow(record, r.headers, r.cfg.Mapping)

	if err := r.cfg.Sink.AppendRow(row); err != nil {
		return fmt.Errorf("failed to append row for %s: %w", src, err)
	}

	report.Processed++
	log.Info("processed email", "fields", len(record))
	return nil
}

// complete sends the extraction prompt and interprets the response. Any
// completion failure degrades to an empty candidate so the email still
// yields a (fully sentinel) row.
func (r *Runner) complete(ctx context.Context, text, requestID string, log *slog.Logger) extract.CandidateRecord {
	req := &providers.ChatRequest{
		Messages: []providers.Message{
			{Role: "system", Content: prompts.SystemPrompt()},
			{Role: "user", Content: prompts.UserPrompt(r.cfg.Schema, text)},
		},
		Model:          r.cfg.Model,
		Temperature:    r.cfg.Temperature,
		MaxTokens:      r.cfg.MaxTokens,
		ResponseFormat: prompts.ResponseFormat(r.cfg.Schema),
		RequestID:      requestID,
	}

	result, err := r.cfg.Client.Chat(ctx, req)
	if err != nil {
		log.Warn("completion failed, emitting sentinel row", "error", err)
		return extract.CandidateRecord{}
	}

	log.Debug("completion received",
		"provider", result.Provider,
		"model", result.ModelUsed,
		"tokens", result.TotalTokens,
		"attempts", result.Attempts,
		"duration", result.ExecutionTime)

	candidate := extract.Interpret(result.Content)
	if len(candidate) == 0 {
		log.Warn("no usable structured output, emitting sentinel row")
	}
	return candidate
}
