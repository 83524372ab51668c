package reporter

import (
	"io"

	"github.com/shipcheck/shipcheck/internal/aggregate"
)

// JSONReporter streams the exported report shape to a writer.
type JSONReporter struct {
	writer io.Writer
}

// NewJSONReporter creates a JSON reporter.
func NewJSONReporter(writer io.Writer) *JSONReporter {
	return &JSONReporter{writer: writer}
}

// Generate writes the report as indented JSON.
func (r *JSONReporter) Generate(report *aggregate.Report) error {
	data, err := report.Export()
	if err != nil {
		return err
	}
	if _, err := r.writer.Write(data); err != nil {
		return err
	}
	_, err = r.writer.Write([]byte("\n"))
	return err
}
