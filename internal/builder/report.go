package builder

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/citypress/internal/site"
)

// Outcome is the final result state of a build.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
)

// Report captures high-level metrics about one build run. It is written as
// build-report.json beside the output directory and is the one artifact
// excluded from the byte-idempotence guarantee.
type Report struct {
	ID             string    `json:"id"`
	Mode           string    `json:"mode"`
	Routes         int       `json:"routes"`
	Pages          int       `json:"pages"`
	SitemapEntries int       `json:"sitemap_entries"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	DurationMS     int64     `json:"duration_ms"`
	Outcome        Outcome   `json:"outcome"`
	Error          string    `json:"error,omitempty"`
}

func newReport(mode site.Mode) *Report {
	return &Report{
		ID:    uuid.NewString(),
		Mode:  mode.String(),
		Start: time.Now().UTC(),
	}
}

func (r *Report) finish() {
	r.End = time.Now().UTC()
	r.DurationMS = r.End.Sub(r.Start).Milliseconds()
	r.Outcome = OutcomeSuccess
}

func (r *Report) fail(err error) *Report {
	r.End = time.Now().UTC()
	r.DurationMS = r.End.Sub(r.Start).Milliseconds()
	r.Outcome = OutcomeFailed
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// Write serializes the report as indented JSON.
func (r *Report) Write(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
