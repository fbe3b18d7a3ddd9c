package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// WriteSeriesCSV writes one row per sample: the time followed by each
// series in name order. Series shorter than times are padded with empty
// cells.
func WriteSeriesCSV(w io.Writer, times []float64, series map[string][]float64) error {
	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"time"}, names...)); err != nil {
		return err
	}
	for i, t := range times {
		row := []string{strconv.FormatFloat(t, 'f', 6, 64)}
		for _, name := range names {
			if vals := series[name]; i < len(vals) {
				row = append(row, strconv.FormatFloat(vals[i], 'f', 6, 64))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func SaveSeriesCSV(path string, times []float64, series map[string][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSeriesCSV(f, times, series); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
