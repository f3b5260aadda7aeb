package output

import (
	"encoding/json"

	"github.com/dl/rxd/internal/dump"
)

// JSONFormatter formats rows as JSON Lines (one JSON object per row).
type JSONFormatter struct{}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// jsonLine is the JSON serialization format for a dump row.
type jsonLine struct {
	Offset int64  `json:"offset"`
	Length int    `json:"length"`
	Hex    string `json:"hex"`
	Text   string `json:"text"`
}

func (f *JSONFormatter) Format(buf []byte, line dump.Line) []byte {
	jl := jsonLine{
		Offset: line.Offset,
		Length: len(line.Bytes),
		Hex:    line.Hex,
		Text:   line.Text,
	}
	data, _ := json.Marshal(jl)
	buf = append(buf, data...)
	buf = append(buf, '\n')
	return buf
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
