// Command sonify renders a numeric time series as music.
//
// Usage:
//
//	sonify -input series.csv [flags]
//
// The input CSV must carry the configured value column (default "value");
// a headerless single-column file also works. The run produces a table of
// per-sample changes, frequencies and pitch names, and a mono WAV file.
//
// Examples:
//
//	sonify -input 2022-05-12.csv -out-table output.csv -out-wav audio.wav
//	sonify -input series.csv -column close -preview 10
//	sonify -dates XAUUSD.csv
//	sonify -input series.csv -play
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-sonify/series"
	"github.com/cwbudde/algo-sonify/sonify"
	"github.com/cwbudde/algo-sonify/wavio"
)

func main() {
	input := flag.String("input", "", "input CSV with the series to sonify")
	column := flag.String("column", "value", "value column name in the input CSV")
	dates := flag.String("dates", "", "CSV index file: list its available dates and exit")
	dateColumn := flag.String("date-column", "date", "date column name in the index file")
	outTable := flag.String("out-table", "", "write the result table to this CSV path")
	outWav := flag.String("out-wav", "", "write the rendered waveform to this WAV path")
	preview := flag.Int("preview", 0, "print the first N table rows")
	sampleRate := flag.Float64("sample-rate", sonify.DefaultSampleRate, "waveform sample rate in Hz")
	toneDuration := flag.Float64("tone-duration", sonify.DefaultToneDuration, "per-tone duration in seconds")
	amplitude := flag.Float64("amplitude", 1.0, "tone amplitude in [0,1]")
	play := flag.Bool("play", false, "play the rendered waveform")
	quiet := flag.Bool("quiet", false, "suppress pipeline diagnostics")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sonify -input series.csv [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders a numeric time series as a table of musical pitches and a WAV file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sonify -input 2022-05-12.csv -out-table output.csv -out-wav audio.wav\n")
		fmt.Fprintf(os.Stderr, "  sonify -input series.csv -column close -preview 10\n")
		fmt.Fprintf(os.Stderr, "  sonify -dates XAUUSD.csv\n")
	}
	flag.Parse()

	if *dates != "" {
		if err := printDates(*dates, *dateColumn); err != nil {
			die("%v", err)
		}
		return
	}

	if *input == "" {
		flag.Usage()
		os.Exit(1)
	}

	values, err := series.LoadCSV(*input, *column)
	if err != nil {
		die("%v", err)
	}

	opts := []sonify.Option{
		sonify.WithSampleRate(*sampleRate),
		sonify.WithToneDuration(*toneDuration),
		sonify.WithAmplitude(*amplitude),
	}
	if *quiet {
		opts = append(opts, sonify.WithLogger(sonify.NopLogger()))
	}

	result, err := sonify.Run(values, opts...)
	if err != nil {
		die("sonify %s: %v", *input, err)
	}

	if *preview > 0 {
		printPreview(os.Stdout, result.Rows, *preview)
	}

	if *outTable != "" {
		if err := writeTable(*outTable, result.Rows); err != nil {
			die("%v", err)
		}
	}

	if *outWav != "" {
		if err := wavio.Encode(*outWav, result.Waveform, int(*sampleRate)); err != nil {
			die("%v", err)
		}
	}

	if *play {
		if err := wavio.Play(result.Waveform, int(*sampleRate)); err != nil {
			die("%v", err)
		}
	}
}

func printDates(path, column string) error {
	available, err := series.Dates(path, column)
	if err != nil {
		return err
	}

	for _, d := range available {
		fmt.Println(d)
	}

	return nil
}

func printPreview(w io.Writer, rows []sonify.Row, limit int) {
	if limit > len(rows) {
		limit = len(rows)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Time\tChange\tFrequency [Hz]\tNote\n")
	fmt.Fprintf(tw, "----\t------\t--------------\t----\n")

	for _, row := range rows[:limit] {
		fmt.Fprintf(tw, "%d\t%.6f\t%.2f\t%s\n", row.Index, row.Change, row.FrequencyHz, row.Note)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush preview: %v\n", err)
	}
}

func writeTable(path string, rows []sonify.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"time", "pct_change", "frequency_hz", "note"}); err != nil {
		f.Close()
		return fmt.Errorf("write table %s: %w", path, err)
	}

	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Index),
			strconv.FormatFloat(row.Change, 'g', -1, 64),
			strconv.FormatFloat(row.FrequencyHz, 'f', 2, 64),
			row.Note,
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("write table %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write table %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("write table %s: %w", path, err)
	}

	return nil
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
