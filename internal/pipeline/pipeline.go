package pipeline

import (
	"go.uber.org/zap"

	"textwatch/internal/annotate"
	"textwatch/internal/model"
)

// Result is the outcome of the one-shot annotation batch. It is immutable
// after construction: handlers read it for the process lifetime, so there is
// no completion flag and no locking. A Result either carries the annotated
// records or the startup error that prevented them.
type Result struct {
	records []model.AnnotatedRecord
	summary model.Summary
	err     error
}

// Failed builds a Result for a batch that never ran, carrying the startup
// error so readiness endpoints can report why.
func Failed(err error) *Result {
	return &Result{err: err}
}

// Ready reports whether the batch completed.
func (r *Result) Ready() bool {
	return r.err == nil
}

// Err returns the startup error, or nil for a completed batch.
func (r *Result) Err() error {
	return r.err
}

// Records returns the annotated records. Callers must not modify the slice.
// A completed batch over an empty corpus returns an empty, non-nil slice.
func (r *Result) Records() []model.AnnotatedRecord {
	return r.records
}

// Summary returns the corpus-level breakdown.
func (r *Result) Summary() model.Summary {
	return r.summary
}

// Run executes the annotation batch over the fetched records: one linear
// pass deriving rarest word, weapon hit, and sentiment per record. The
// annotated count always equals the input count; a record the annotators
// cannot handle keeps its safe defaults instead of failing the batch.
func Run(records []model.Record, lexicon *annotate.Lexicon, classifier *annotate.Classifier, logger *zap.SugaredLogger) *Result {
	logger.Infow("starting annotation batch", "records", len(records))

	annotated := make([]model.AnnotatedRecord, 0, len(records))
	summary := model.Summary{TotalRecords: len(records)}

	for _, rec := range records {
		// Annotators run on the visible text; the served original_text
		// keeps the raw stored form.
		text := annotate.StripHTML(rec.Text)

		ar := model.AnnotatedRecord{
			ID:              rec.ID,
			OriginalText:    rec.Text,
			RarestWord:      annotate.RarestWord(text),
			WeaponsDetected: annotate.DetectWeapon(text, lexicon),
			Sentiment:       classifier.Classify(text),
			Fields:          rec.Fields,
		}

		if ar.RarestWord != "" {
			summary.RareWordsFound++
		}
		if ar.WeaponsDetected != "" {
			summary.WeaponsFound++
		}
		switch ar.Sentiment {
		case model.SentimentPositive:
			summary.Positive++
		case model.SentimentNegative:
			summary.Negative++
		default:
			summary.Neutral++
		}

		annotated = append(annotated, ar)
	}

	logger.Infow("annotation batch completed",
		"records", len(annotated),
		"weapons_found", summary.WeaponsFound,
		"positive", summary.Positive,
		"negative", summary.Negative,
		"neutral", summary.Neutral,
	)

	return &Result{records: annotated, summary: summary}
}
