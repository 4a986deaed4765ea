package domain

import "fmt"

// Customer is a buying party of the organization.
type Customer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Supplier is a selling party of the organization.
type Supplier struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OutstandingRow is one line of the supplier outstanding report.
type OutstandingRow struct {
	Name    string `json:"name"`
	Balance string `json:"balance"` // decimal string
}

// MalformedRowError reports a report row whose balance could not be
// interpreted. The whole report is rejected; Index names the offender.
type MalformedRowError struct {
	Index int
	Cause error
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Index, e.Cause)
}

func (e *MalformedRowError) Unwrap() error {
	return e.Cause
}
