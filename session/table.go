package session

import "github.com/cwbudde/algo-peakfit/curve"

// TableHeader is the column order expected by parameter-table renderers and
// the detail export.
var TableHeader = []string{"Peak", "y0", "Area", "xc", "Amp", "w"}

// Row describes one peak of the sorted composite. The baseline offset is
// repeated in every row, matching the layout of the exported tables.
type Row struct {
	Peak      int
	Baseline  float64
	Area      float64
	Center    float64
	Amplitude float64
	Width     float64
}

// Table sorts the active composite and returns one row per peak, numbered
// from 1 by ascending center. The baseline contributes only the shared y0
// column and never gets a row of its own.
func (s *Session) Table() []Row {
	s.active.Sort()

	y0 := 0.0
	if b := s.active.Baseline(); b != nil {
		y0 = b.Offset()
	}

	var rows []Row

	peak := 1
	for i := 0; i < s.active.Len(); i++ {
		g, ok := s.active.At(i).(*curve.Gaussian)
		if !ok {
			continue
		}

		rows = append(rows, Row{
			Peak:      peak,
			Baseline:  y0,
			Area:      g.Area(),
			Center:    g.Center(),
			Amplitude: g.Amplitude(),
			Width:     g.Width(),
		})
		peak++
	}

	return rows
}
