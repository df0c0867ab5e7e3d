// Package sumdata holds the per-run and per-subrun summary records and
// their aggregation rules. The records are plain data; persisting them
// is the job of the framework I/O layer.
package sumdata

import "fmt"

// noDetectorName is the placeholder detector name of a default record.
const noDetectorName = "nodetectorname"

// DetectorMismatchError reports an attempt to aggregate run records
// produced by different detectors.
type DetectorMismatchError struct {
	Have string
	Got  string
}

func (e *DetectorMismatchError) Error() string {
	return fmt.Sprintf("runs can't be aggregated: detector %q does not match %q", e.Got, e.Have)
}

// RunData stores run-level information: which detector produced the
// data.
type RunData struct {
	DetName string // detector name
}

// NewRunData returns a record for the named detector; an empty name is
// replaced by a placeholder.
func NewRunData(detectorName string) RunData {
	if detectorName == "" {
		detectorName = noDetectorName
	}
	return RunData{DetName: detectorName}
}

// Aggregate merges another fragment of the same run into this one.
// Two fragments must agree on the detector that produced them; on a
// mismatch a *DetectorMismatchError is returned and neither record is
// touched. On agreement there is nothing to merge.
func (r *RunData) Aggregate(other RunData) error {
	if other.DetName != r.DetName {
		return &DetectorMismatchError{Have: r.DetName, Got: other.DetName}
	}
	return nil
}
