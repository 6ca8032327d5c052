package profile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Errors returned when loading or validating a profile.
var (
	ErrEmpty        = errors.New("profile: no data rows")
	ErrBadRow       = errors.New("profile: row does not contain two numeric columns")
	ErrNotAscending = errors.New("profile: x values must be strictly increasing")
)

// Profile is one loaded dataset: a display name and the raw sample arrays.
// X and Y always have equal, non-zero length after a successful load.
type Profile struct {
	Path string
	Name string
	X    []float64
	Y    []float64
}

// ReadCSV loads a profile from a delimited text file. The display name is
// the base file name without its extension.
func ReadCSV(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	defer f.Close()

	p, err := Read(f)
	if err != nil {
		return nil, err
	}

	p.Path = path
	base := filepath.Base(path)
	p.Name = strings.TrimSuffix(base, filepath.Ext(base))

	return p, nil
}

// Read parses a delimited two-column table from r. The delimiter (comma,
// semicolon or tab) is sniffed from the leading bytes, and a header row is
// skipped when its fields are not numeric, which handles ImageJ exports.
// The first column becomes X, the second Y.
func Read(r io.Reader) (*Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}

	cr := csv.NewReader(strings.NewReader(string(data)))
	cr.Comma = sniffDelimiter(string(data))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}

	start := 0
	if len(records) > 0 && !numericRow(records[0]) {
		start = 1
	}

	p := &Profile{}

	for _, rec := range records[start:] {
		if len(rec) < 2 {
			return nil, fmt.Errorf("%w: %q", ErrBadRow, rec)
		}

		x, errX := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadRow, rec)
		}

		p.X = append(p.X, x)
		p.Y = append(p.Y, y)
	}

	if len(p.X) == 0 {
		return nil, ErrEmpty
	}

	return p, nil
}

// Validate checks the estimator's input contract: equal non-zero lengths
// and strictly increasing x.
func (p *Profile) Validate() error {
	if len(p.X) == 0 || len(p.X) != len(p.Y) {
		return ErrEmpty
	}

	for i := 1; i < len(p.X); i++ {
		if p.X[i] <= p.X[i-1] {
			return ErrNotAscending
		}
	}

	return nil
}

// sniffDelimiter picks the candidate delimiter that occurs most often in the
// first kilobyte, defaulting to comma.
func sniffDelimiter(s string) rune {
	if len(s) > 1024 {
		s = s[:1024]
	}

	best, bestCount := ',', strings.Count(s, ",")

	for _, c := range []struct {
		r rune
		n int
	}{
		{'\t', strings.Count(s, "\t")},
		{';', strings.Count(s, ";")},
	} {
		if c.n > bestCount {
			best, bestCount = c.r, c.n
		}
	}

	return best
}

func numericRow(fields []string) bool {
	if len(fields) < 2 {
		return false
	}

	for _, f := range fields[:2] {
		if _, err := strconv.ParseFloat(strings.TrimSpace(f), 64); err != nil {
			return false
		}
	}

	return true
}
