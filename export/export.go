package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cwbudde/algo-peakfit/session"
)

// maxAreaColumns is the fixed width of the per-file area summary; peaks
// beyond the sixth are dropped from the summary row.
const maxAreaColumns = 6

var (
	detailHeader = []string{"filename", "Peak", "y0", "Area", "xc", "Amp", "w"}
	areasHeader  = []string{"Filename", "Peak 1", "Peak 2", "Peak 3", "Peak 4", "Peak 5", "Peak 6"}
)

// AppendDetail appends one block of peak rows for the named profile to the
// detail table at path. The file is created with a header row on first use;
// blocks from consecutive exports are separated by an empty record.
func AppendDetail(path, name string, rows []session.Row) error {
	f, created, err := openAppend(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteDetail(f, name, rows, created)
}

// WriteDetail writes one detail block to w; withHeader prepends the column
// header for a fresh table.
func WriteDetail(w io.Writer, name string, rows []session.Row, withHeader bool) error {
	cw := csv.NewWriter(w)

	if withHeader {
		cw.Write(detailHeader)
	}

	cw.Write([]string{""})

	for _, r := range rows {
		cw.Write([]string{
			name,
			strconv.Itoa(r.Peak),
			formatFloat(r.Baseline),
			formatFloat(r.Area),
			formatFloat(r.Center),
			formatFloat(r.Amplitude),
			formatFloat(r.Width),
		})
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	return nil
}

// AppendAreas appends the per-file area summary row for the named profile
// to the table at path, creating it with a header row on first use.
func AppendAreas(path, name string, rows []session.Row) error {
	f, created, err := openAppend(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteAreas(f, name, rows, created)
}

// WriteAreas writes one area summary row to w; withHeader prepends the
// column header for a fresh table.
func WriteAreas(w io.Writer, name string, rows []session.Row, withHeader bool) error {
	cw := csv.NewWriter(w)

	if withHeader {
		cw.Write(areasHeader)
	}

	rec := []string{name}
	for i, r := range rows {
		if i == maxAreaColumns {
			break
		}

		rec = append(rec, formatFloat(r.Area))
	}

	cw.Write(rec)
	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	return nil
}

// openAppend opens path for appending and reports whether it was created by
// this call.
func openAppend(path string) (*os.File, bool, error) {
	_, statErr := os.Stat(path)
	created := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, false, fmt.Errorf("export: %w", err)
	}

	return f, created, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
