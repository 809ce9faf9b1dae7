package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lqviet/uuidv7"
	"github.com/lqviet/uuidv7/internal/config"
)

// inspection describes one identifier for the inspect and validate commands.
type inspection struct {
	ID          string `json:"id" yaml:"id"`
	Base64      string `json:"base64,omitempty" yaml:"base64,omitempty"`
	Valid       bool   `json:"valid" yaml:"valid"`
	Version     int    `json:"version,omitempty" yaml:"version,omitempty"`
	Variant     string `json:"variant,omitempty" yaml:"variant,omitempty"`
	TimestampMs int64  `json:"timestamp_ms,omitempty" yaml:"timestamp_ms,omitempty"`
	Time        string `json:"time,omitempty" yaml:"time,omitempty"`
	Sequence    uint16 `json:"sequence,omitempty" yaml:"sequence,omitempty"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
}

func inspect(s string) inspection {
	in := inspection{ID: s}

	id, err := parseID(s)
	if err != nil {
		in.Error = err.Error()
		return in
	}
	in.ID = id.String()
	in.Base64 = id.EncodeToBase64()
	in.Version = int(id.Version())
	in.Variant = id.Variant().String()

	ms, err := uuidv7.ExtractTimestamp(id)
	if err != nil {
		in.Error = err.Error()
		return in
	}
	in.Valid = true
	in.TimestampMs = ms
	in.Time = id.Time().Format(time.RFC3339Nano)
	in.Sequence = id.Sequence()
	return in
}

func (in inspection) text(w io.Writer) error {
	if !in.Valid {
		_, err := fmt.Fprintf(w, "%s\tinvalid\t%s\n", in.ID, in.Error)
		return err
	}
	_, err := fmt.Fprintf(w, "%s\tvalid\tts=%d\ttime=%s\tseq=%d\tb64=%s\n",
		in.ID, in.TimestampMs, in.Time, in.Sequence, in.Base64)
	return err
}

// rangeBounds is the result of the range command.
type rangeBounds struct {
	Start   string `json:"start" yaml:"start"`
	End     string `json:"end" yaml:"end"`
	StartMs int64  `json:"start_ms" yaml:"start_ms"`
	EndMs   int64  `json:"end_ms" yaml:"end_ms"`
}

// render writes v in the configured format. text is used for OutputText.
func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}

func idStrings(ids []uuidv7.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func writeLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
