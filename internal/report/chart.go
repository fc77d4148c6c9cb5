package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vicanso/go-charts/v2"

	"RiskReturnAnalyser/internal/model"
)

// ErrRender marks a chart or table output failure. Nothing is written when
// rendering fails.
var ErrRender = errors.New("render failed")

// RenderGrowthChart renders one cumulative-growth line per ticker with a
// legend and writes the PNG to outputPath, creating parent directories as
// needed.
func RenderGrowthChart(growth []model.GrowthSeries, title, outputPath string) error {
	if len(growth) == 0 {
		return fmt.Errorf("%w: no growth series to chart", ErrRender)
	}

	names := make([]string, 0, len(growth))
	values := make([][]float64, 0, len(growth))
	for _, g := range growth {
		if len(g.Values) == 0 {
			return fmt.Errorf("%w: empty series for %s", ErrRender, g.Ticker)
		}
		names = append(names, g.Ticker)
		values = append(values, g.Values)
	}

	// All series share the date axis of the first one.
	xLabels := axisLabels(growth[0].Dates)
	split := 6
	if len(xLabels) <= 30 {
		split = len(xLabels) / 3
		if split < 3 {
			split = 3
		}
	}

	seriesList := charts.NewSeriesListDataFromValues(values, charts.ChartTypeLine)
	painter, err := charts.Render(charts.ChartOption{SeriesList: seriesList},
		charts.TitleTextOptionFunc(title, strings.Join(names, ", ")+" • growth of 1.0 invested"),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: xLabels, BoundaryGap: charts.FalseFlag(), SplitNumber: split}),
		charts.LegendOptionFunc(charts.LegendOption{Data: names}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	buf, err := painter.Bytes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}

	if err := writeFileAtomic(outputPath, buf); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	return nil
}

// axisLabels formats the x axis, switching to year labels for long spans.
func axisLabels(dates []time.Time) []string {
	layout := "Jan 02"
	if len(dates) > 0 && dates[len(dates)-1].Sub(dates[0]) > 365*24*time.Hour {
		layout = "Jan '06"
	}
	labels := make([]string, len(dates))
	for i, d := range dates {
		labels[i] = d.Format(layout)
	}
	return labels
}

// writeFileAtomic writes via a temp file and rename so a failed run never
// leaves a truncated output behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %v", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
