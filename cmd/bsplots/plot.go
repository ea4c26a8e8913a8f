package main

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/carbocation/neuromisc/matfile"
	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const brainScoreField = "bs_data_mean"

var namedColors = map[string]string{
	"green":  "008000",
	"red":    "ff0000",
	"blue":   "0000ff",
	"black":  "000000",
	"orange": "ffa500",
	"purple": "800080",
	"gray":   "808080",
}

type lineLayout struct {
	Rows   []string
	Order  []string
	Colors []string
	Width  int
	Height int
}

func (l lineLayout) validate() error {
	if len(l.Order) != len(l.Colors) {
		return fmt.Errorf("%d conditions in the order but %d colors", len(l.Order), len(l.Colors))
	}

	for _, name := range l.Order {
		if l.rowOf(name) < 0 {
			return fmt.Errorf("condition %q is not one of the rows %v", name, l.Rows)
		}
	}

	for _, c := range l.Colors {
		if _, err := parseColor(c); err != nil {
			return err
		}
	}

	return nil
}

func (l lineLayout) rowOf(name string) int {
	for i, r := range l.Rows {
		if r == name {
			return i
		}
	}

	return -1
}

func (l lineLayout) plotFile(path, out string) error {
	f, err := matfile.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := matfile.Lookup(f, brainScoreField)
	if err != nil {
		return err
	}

	scores, err := matfile.Dense(n)
	if err != nil {
		return err
	}

	return l.plot(scores, out)
}

// plot draws one line per condition of scores, a conditions x TRs matrix.
func (l lineLayout) plot(scores *mat.Dense, out string) error {
	graph, err := l.build(scores)
	if err != nil {
		return err
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return err
	}

	return pfx.Err(os.WriteFile(out, buffer.Bytes(), 0644))
}

func (l lineLayout) build(scores *mat.Dense) (*chart.Chart, error) {
	nCond, nTR := scores.Dims()
	if nCond != len(l.Rows) {
		return nil, fmt.Errorf("%s has %d rows but %d condition names were given", brainScoreField, nCond, len(l.Rows))
	}

	xs := make([]float64, nTR)
	if nTR > 1 {
		floats.Span(xs, 0, float64(nTR-1))
	}

	all := mat.DenseCopyOf(scores).RawMatrix().Data
	yMin := math.RoundToEven(floats.Min(all) - 1)
	yMax := math.RoundToEven(floats.Max(all) + 1)

	graph := &chart.Chart{
		Width:  l.Width,
		Height: l.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 160, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  "TRs",
			Range: &chart.ContinuousRange{Min: -0.1, Max: float64(nTR-1) + 0.1},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
		},
		YAxis: chart.YAxis{
			Name:  "Mean Brain Score",
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax},
			// Zero reference line.
			GridMajorStyle: chart.Style{
				StrokeColor: drawing.ColorBlack,
				StrokeWidth: 1,
			},
			GridLines: []chart.GridLine{{Value: 0}},
		},
	}

	for i, name := range l.Order {
		col, err := parseColor(l.Colors[i])
		if err != nil {
			return nil, err
		}

		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    name,
			XValues: xs,
			YValues: mat.Row(nil, l.rowOf(name), scores),
			Style: chart.Style{
				StrokeColor: col,
				StrokeWidth: 2,
				DotColor:    col,
				DotWidth:    4,
			},
		})
	}

	graph.Elements = []chart.Renderable{chart.LegendLeft(graph)}

	return graph, nil
}

func parseColor(s string) (drawing.Color, error) {
	hex := strings.TrimPrefix(strings.ToLower(s), "#")
	if named, ok := namedColors[hex]; ok {
		hex = named
	}

	if len(hex) != 6 || strings.Trim(hex, "0123456789abcdef") != "" {
		return drawing.Color{}, fmt.Errorf("unrecognized color %q", s)
	}

	return drawing.ColorFromHex(hex), nil
}
