// Package domain holds the core types shared by every calculator path:
// the parsed query handed to each resolver and the pre-formatted result
// handed back to the host.
package domain

// ParsedQuery is the structured form of a free-text conversion query.
// The two phrases are passed through untouched; each resolver applies
// its own normalization.
type ParsedQuery struct {
	RawValue   string  // the numeric literal as typed, e.g. "1,500.25"
	Value      float64 // the parsed value
	FromPhrase string  // e.g. "km", "square meters", "$"
	ToPhrase   string  // e.g. "miles", "EUR"
}

// CalcResult is the only externally visible output of the engine. It
// carries pre-formatted strings so the host never reformats numbers.
type CalcResult struct {
	Input       string `json:"input"`
	InputLabel  string `json:"input_label"`
	Result      string `json:"result"`
	ResultLabel string `json:"result_label"`
}
