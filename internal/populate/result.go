package populate

import "time"

// FailureKind classifies a per-file failure.
type FailureKind uint8

const (
	FailWrite FailureKind = iota
	FailPermission
	FailDiskFull
	FailDirectory
)

func (k FailureKind) String() string {
	switch k {
	case FailPermission:
		return "permission"
	case FailDiskFull:
		return "disk-full"
	case FailDirectory:
		return "directory"
	default:
		return "write"
	}
}

// Failure records one file that could not be written. The run continues past
// these; only a root-level failure aborts.
type Failure struct {
	Path    string
	Seq     int
	Kind    FailureKind
	Message string
}

// Result aggregates one run. Immutable once returned.
type Result struct {
	Planned      int
	Created      int
	Failed       int
	DirsCreated  int
	BytesWritten int64
	Elapsed      time.Duration
	Failures     []Failure
}
