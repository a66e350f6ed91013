package valueobject

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shop/backend/internal/domain/shared"
)

// SeqCode describes a family of sequential human-readable identifiers
// such as "CT00001" or "U00042": a fixed letter prefix followed by a
// zero-padded decimal number. The padding holds a minimum width and
// expands once the sequence outgrows it, so ordering by string compare
// matches numeric ordering only within one width; callers that need
// the greatest code must compare numerically via Parse.
type SeqCode struct {
	prefix   string
	minWidth int
}

// NewSeqCode creates a sequential code family with the given prefix and
// minimum digit width
func NewSeqCode(prefix string, minWidth int) SeqCode {
	return SeqCode{prefix: prefix, minWidth: minWidth}
}

// Prefix returns the letter prefix of the family
func (s SeqCode) Prefix() string {
	return s.prefix
}

// First returns the first code of the sequence
func (s SeqCode) First() string {
	return s.Format(1)
}

// Format renders a sequence number as a code, zero-padded to the
// minimum width
func (s SeqCode) Format(n uint64) string {
	return fmt.Sprintf("%s%0*d", s.prefix, s.minWidth, n)
}

// Parse extracts the sequence number from a code. A missing prefix,
// an empty suffix, or any non-digit character in the suffix is a
// data-integrity error: stored identifiers are never coerced or
// defaulted.
func (s SeqCode) Parse(code string) (uint64, error) {
	suffix, ok := strings.CutPrefix(code, s.prefix)
	if !ok || suffix == "" {
		return 0, fmt.Errorf("%w: identifier %q does not match %s-sequence format",
			shared.ErrDataIntegrity, code, s.prefix)
	}
	n, err := strconv.ParseUint(suffix, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: identifier %q has non-numeric suffix",
			shared.ErrDataIntegrity, code)
	}
	return n, nil
}

// Next returns the code following the given one. An empty current code
// means the sequence has not started and yields the first code.
func (s SeqCode) Next(current string) (string, error) {
	if current == "" {
		return s.First(), nil
	}
	n, err := s.Parse(current)
	if err != nil {
		return "", err
	}
	return s.Format(n + 1), nil
}
