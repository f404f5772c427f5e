package model

// Summary is the corpus-level breakdown produced alongside the per-record
// annotations. Derived once per batch; served verbatim by the stats endpoint.
type Summary struct {
	TotalRecords   int `json:"total_records"`
	Positive       int `json:"positive"`
	Negative       int `json:"negative"`
	Neutral        int `json:"neutral"`
	WeaponsFound   int `json:"weapons_found"`    // Records with a non-empty weapon hit
	RareWordsFound int `json:"rare_words_found"` // Records with a non-empty rarest word
}
