// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidDateRange indicates that the statement period starts after it ends.
	ErrInvalidDateRange = errors.New("from date must be before or equal to to date")
	// ErrCustomerRequired indicates that no customer was selected for the statement.
	ErrCustomerRequired = errors.New("customer is required")
)

// EntryType is the polarity of a ledger entry.
type EntryType string

// Supported entry types. Running balance arithmetic is DEBIT-positive.
const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// LedgerEntry holds a single dated debit or credit from a statement.
// Entries are immutable once fetched; the service keeps them in the
// order the backend returned them.
type LedgerEntry struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"` // decimal string, parsed at computation time
	EntryType   EntryType `json:"entryType"`
}

// OpeningBalance is the signed starting point of a statement period.
type OpeningBalance struct {
	Amount string    `json:"opening_balance"`
	Type   EntryType `json:"opening_type"`
}

// Statement holds the raw customer statement as returned by the backend.
type Statement struct {
	Entries []LedgerEntry  `json:"entries"`
	Opening OpeningBalance `json:"opening"`
}

// MalformedEntryError reports an entry whose amount or type could not be
// interpreted. The whole computation is rejected; Index names the offender.
type MalformedEntryError struct {
	Index int
	Cause error
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("entry %d: %v", e.Index, e.Cause)
}

func (e *MalformedEntryError) Unwrap() error {
	return e.Cause
}
