// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/keycap-swiss/models"
)

// chartMaxBars caps the chart to the leaders so labels stay readable
const chartMaxBars = 30

var (
	chartBar        = drawing.ColorFromHex("007BFF")
	chartEliminated = drawing.ColorFromHex("AAAAAA")
)

// RenderScoreChart draws the standings as a PNG bar chart, leaders first.
func RenderScoreChart(standings []models.StandingEntry) ([]byte, error) {
	if len(standings) > chartMaxBars {
		standings = standings[:chartMaxBars]
	}

	maxScore := 0
	for _, s := range standings {
		maxScore = max(maxScore, s.Score)
	}
	if maxScore == 0 {
		return renderNoScoresPlaceholder()
	}

	bars := make([]chart.Value, len(standings))
	for i, s := range standings {
		color := chartBar
		if s.Eliminated {
			color = chartEliminated
		}
		bars[i] = chart.Value{
			Label: s.Name,
			Value: float64(s.Score),
			Style: chart.Style{FillColor: color, StrokeColor: color},
		}
	}

	graph := chart.BarChart{
		Title:      "Scores",
		Width:      max(800, 80*len(bars)+100),
		Height:     400,
		BarWidth:   40,
		BarSpacing: 20,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxScore)},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render bar chart: %w", err)
	}
	return buf.Bytes(), nil
}

// renderNoScoresPlaceholder draws straight onto a PNG renderer; go-chart
// refuses to render a chart without series or bars.
func renderNoScoresPlaceholder() ([]byte, error) {
	const (
		msg    = "No matches decided yet"
		width  = 400
		height = 200
	)

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create placeholder renderer: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("failed to load chart font: %w", err)
	}
	r.SetDPI(chart.DefaultDPI)

	r.SetFillColor(drawing.ColorWhite)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	r.SetFont(font)
	r.SetFontColor(drawing.ColorBlack)
	r.SetFontSize(12.0)
	tb := r.MeasureText(msg)
	r.Text(msg, (width-tb.Width())/2, (height+tb.Height())/2)

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, fmt.Errorf("failed to render placeholder: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderSpreadsheet writes the standings to a single-sheet workbook.
func RenderSpreadsheet(res models.ResultsResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Standings"
	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	rows := [][]any{{"Rank", "Name", "Score", "Opponents", "Status"}}
	for _, s := range res.Standings {
		status := "Active"
		if s.Eliminated {
			status = "Eliminated"
		}
		rows = append(rows, []any{humanize.Ordinal(s.Rank), s.Name, s.Score, joinInts(s.Opponents), status})
	}

	for i, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, axis, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	summary := fmt.Sprintf("Round %d", res.Round)
	if res.Complete {
		summary += " (complete)"
	}
	if err := f.SetCellValue(sheet, "G1", summary); err != nil {
		return nil, fmt.Errorf("failed to write summary: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ", ")
}
