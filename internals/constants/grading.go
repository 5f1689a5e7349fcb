package constants

// Canonical grading scale. The API accepts grades on 0.0..10.0 only; there
// is no alternate scale anywhere in the request surface.
const (
	GradeMin = 0.0
	GradeMax = 10.0

	// Minimum length of the free-text reason required to overwrite an
	// already-captured grade.
	RecalibrationReasonMinLen = 10
)
