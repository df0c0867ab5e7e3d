package detdb

import "fmt"

// QueryError represents a failure running a query against a table.
type QueryError struct {
	Table string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("error querying table %q: %v", e.Table, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// ScanError represents a failure decoding a row read from a table.
type ScanError struct {
	Table string
	Err   error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("error scanning row from table %q: %v", e.Table, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }
