package model

// Record is one document fetched from the backing store.
// Records are immutable once fetched; annotation never modifies them.
type Record struct {
	ID     string         `json:"id"`               // Store identifier, coerced to string
	Text   string         `json:"text"`             // The raw text under analysis
	Fields map[string]any `json:"fields,omitempty"` // Remaining store-provided fields, passed through untouched
}

// Sentiment is the polarity label derived from the compound lexicon score
type Sentiment string

const (
	SentimentPositive Sentiment = "positive" // Compound score >= 0.5
	SentimentNegative Sentiment = "negative" // Compound score <= -0.5
	SentimentNeutral  Sentiment = "neutral"  // Everything else, including blank or unscorable text
)

// AnnotatedRecord is a Record augmented with the derived attributes.
// Empty RarestWord or WeaponsDetected means "nothing found", never a dropped record.
type AnnotatedRecord struct {
	ID              string         `json:"id"`
	OriginalText    string         `json:"original_text"`    // The record text as stored, unmodified
	RarestWord      string         `json:"rarest_word"`      // First minimum-frequency token, "" for blank text
	WeaponsDetected string         `json:"weapons_detected"` // First lexicon term matched, "" when none
	Sentiment       Sentiment      `json:"sentiment"`
	Fields          map[string]any `json:"fields,omitempty"`
}
