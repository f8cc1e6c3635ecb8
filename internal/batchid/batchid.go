// Package batchid formats and compares test run batch identifiers.
//
// A batch identifier is "{YYYYMMDD}-{N}" where N is a 1-based counter of
// batches created for a project on that calendar date.
package batchid

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the date portion of a batch identifier.
const DateLayout = "20060102"

// New builds a batch identifier for the given date and 1-based sequence number.
func New(date time.Time, seq int) string {
	return fmt.Sprintf("%s-%d", date.Format(DateLayout), seq)
}

// Parse splits a batch identifier into its date and sequence parts.
func Parse(id string) (time.Time, int, error) {
	datePart, seqPart, ok := strings.Cut(id, "-")
	if !ok {
		return time.Time{}, 0, fmt.Errorf("invalid batch id %q", id)
	}

	date, err := time.Parse(DateLayout, datePart)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid batch id %q: %w", id, err)
	}

	seq, err := strconv.Atoi(seqPart)
	if err != nil || seq < 1 {
		return time.Time{}, 0, fmt.Errorf("invalid batch id %q: bad sequence", id)
	}

	return date, seq, nil
}

// Less reports whether batch id a sorts before batch id b, by date then
// sequence. Identifiers that fail to parse sort lexicographically so the
// ordering stays total.
func Less(a, b string) bool {
	dateA, seqA, errA := Parse(a)
	dateB, seqB, errB := Parse(b)
	if errA != nil || errB != nil {
		return a < b
	}
	if !dateA.Equal(dateB) {
		return dateA.Before(dateB)
	}
	return seqA < seqB
}
