package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/profilex/internal/notify"
	"github.com/dgallion1/profilex/internal/parser"
	"github.com/dgallion1/profilex/internal/profile"
)

// Worker processes a single extraction job: parse the uploaded file to plain
// text, run the extractor, then deliver the result to the webhook if one is
// configured.
type Worker struct {
	notifier *notify.Client
	stats    *profile.Stats
	log      *slog.Logger

	pdfFallback bool
}

func NewWorker(notifier *notify.Client, stats *profile.Stats, log *slog.Logger, pdfFallback bool) *Worker {
	return &Worker{
		notifier:    notifier,
		stats:       stats,
		log:         log,
		pdfFallback: pdfFallback,
	}
}

// Process runs the full pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	// Phase 1: Parse the document to plain text.
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if pdfParser, ok := p.(*parser.PDFParser); ok {
		pdfParser.FallbackPdftotext = w.pdfFallback
	}

	text, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	// Phase 2: Extract. Each job gets its own extractor invocation; no
	// classifier state is shared between jobs.
	job.SetStatus(StatusExtracting, "extracting")
	start := time.Now()
	result := profile.Extract(text)
	if w.stats != nil {
		w.stats.Record(time.Since(start).Milliseconds(), len(result.People))
	}
	job.SetResult(result)
	log.Info("extraction complete", "people", len(result.People), "titles", len(result.Titles))

	// Phase 3: Deliver to the webhook, if configured.
	if w.notifier != nil && w.notifier.Enabled() {
		job.SetStatus(StatusNotifying, "notifying")
		if err := w.deliver(ctx, job, result); err != nil {
			// Delivery failure does not fail the job; the result is
			// still available via the API.
			log.Error("webhook delivery failed", "error", err)
			job.AddError(fmt.Sprintf("webhook: %s", err))
		}
	}

	job.SetStatus(StatusCompleted, "done")
}

func (w *Worker) deliver(ctx context.Context, job *Job, result profile.Result) error {
	payload := notify.Payload{
		JobID:    job.ID,
		Filename: job.Filename,
		Result:   result,
	}
	var lastErr error
	for attempt := range MaxRetries {
		lastErr = w.notifier.PostResult(ctx, payload)
		if lastErr == nil || !IsRetryable(lastErr) {
			return lastErr
		}
		w.log.Warn("retryable webhook error", "job_id", job.ID, "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return lastErr
}
