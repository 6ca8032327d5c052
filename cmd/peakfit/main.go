// Command peakfit decomposes 1-D intensity profiles into a constant
// baseline plus a sum of Gaussian peaks.
//
// Usage:
//
//	peakfit [flags] profile.csv [profile2.csv ...]
//
// For each input file the tool estimates an initial set of peaks from the
// data, refines it with a least-squares pass, and prints the resulting
// parameter table. With -export the per-peak detail table and the per-file
// area summary are appended to export.csv and areas.csv in the given
// directory.
//
// Examples:
//
//	peakfit lane1.csv
//	peakfit -export out lane1.csv lane2.csv
//	peakfit -v lane1.csv
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-peakfit/export"
	"github.com/cwbudde/algo-peakfit/fit"
	"github.com/cwbudde/algo-peakfit/profile"
	"github.com/cwbudde/algo-peakfit/session"
)

func main() {
	exportDir := flag.String("export", "", "append export.csv and areas.csv to this directory")
	verbose := flag.Bool("v", false, "print fit status messages")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: peakfit [flags] profile.csv [profile2.csv ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	exit := 0

	for _, path := range flag.Args() {
		if err := run(path, *exportDir, *verbose); err != nil {
			fmt.Fprintf(os.Stderr, "peakfit: %s: %v\n", path, err)

			exit = 1
		}
	}

	os.Exit(exit)
}

func run(path, exportDir string, verbose bool) error {
	prof, err := profile.ReadCSV(path)
	if err != nil {
		return err
	}

	if err := prof.Validate(); err != nil {
		return err
	}

	sess := session.New(prof)
	if verbose {
		sess.OnStatus = func(msg string) { fmt.Fprintln(os.Stderr, msg) }
	}

	if err := sess.EstimateFit(); err != nil {
		if errors.Is(err, fit.ErrNoConvergence) {
			return errors.New("no fit found")
		}

		return err
	}

	rows := sess.Table()
	fmt.Printf("%s: %d peak(s)\n", prof.Name, len(rows))
	printTable(rows)

	if exportDir == "" {
		return nil
	}

	if err := export.AppendDetail(filepath.Join(exportDir, "export.csv"), prof.Name, rows); err != nil {
		return err
	}

	return export.AppendAreas(filepath.Join(exportDir, "areas.csv"), prof.Name, rows)
}

func printTable(rows []session.Row) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(session.TableHeader, "\t"))

	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%g\t%g\t%g\t%g\t%g\n",
			r.Peak, r.Baseline, r.Area, r.Center, r.Amplitude, r.Width)
	}

	tw.Flush()
}
