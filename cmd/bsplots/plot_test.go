package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	mft "github.com/carbocation/neuromisc/matfile/matfiletest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/mat"
)

func defaultLayout() lineLayout {
	return lineLayout{
		Rows:   []string{"Control", "Null", "Past", "Future", "Other"},
		Order:  []string{"Past", "Future", "Other", "Control", "Null"},
		Colors: []string{"green", "red", "blue", "black", "orange"},
		Width:  600,
		Height: 450,
	}
}

func brainScores() mft.Double {
	rows := make([][]float64, 5)
	for c := range rows {
		rows[c] = make([]float64, 8)
		for tr := range rows[c] {
			rows[c][tr] = float64(c) - 2 + 0.3*float64(tr)
		}
	}
	return mft.Matrix(rows)
}

func TestPlotFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "PFOC_3dQwarpYO_LV1bs_plot.mat")
	require.NoError(t, mft.WriteV5File(in, true, mft.Var{Name: "bs_data_mean", Value: brainScores()}))

	out := filepath.Join(dir, "PFOC_3dQwarpYO_LV1bs_plot.png")
	require.NoError(t, defaultLayout().plotFile(in, out))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 600, img.Bounds().Dx())
	assert.Equal(t, 450, img.Bounds().Dy())
}

func TestPlotFileErrors(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "missing_bs_plot.mat")
	require.NoError(t, mft.WriteV5File(missing, false, mft.Var{Name: "other", Value: brainScores()}))
	assert.Error(t, defaultLayout().plotFile(missing, filepath.Join(dir, "a.png")))

	short := filepath.Join(dir, "short_bs_plot.mat")
	require.NoError(t, mft.WriteV5File(short, false, mft.Var{Name: "bs_data_mean", Value: mft.Row(1, 2, 3)}))
	assert.Error(t, defaultLayout().plotFile(short, filepath.Join(dir, "b.png")))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, defaultLayout().validate())

	l := defaultLayout()
	l.Colors = l.Colors[:2]
	assert.Error(t, l.validate())

	l = defaultLayout()
	l.Order[0] = "Present"
	assert.Error(t, l.validate())

	l = defaultLayout()
	l.Colors[0] = "chartreuse-ish"
	assert.Error(t, l.validate())

	c, err := parseColor("#C93312")
	require.NoError(t, err)
	assert.Equal(t, uint8(0xc9), c.R)
}

func TestBuildDrawsZeroLine(t *testing.T) {
	raw := brainScores()
	scores := mat.NewDense(raw.Cols, raw.Rows, raw.Data).T()

	graph, err := defaultLayout().build(mat.DenseCopyOf(scores))
	require.NoError(t, err)

	require.Len(t, graph.YAxis.GridLines, 1)
	assert.Equal(t, 0.0, graph.YAxis.GridLines[0].Value)
	assert.Equal(t, drawing.ColorBlack, graph.YAxis.GridMajorStyle.StrokeColor)
	assert.False(t, graph.YAxis.GridMajorStyle.Hidden)

	yRange := graph.YAxis.Range.(*chart.ContinuousRange)
	assert.Less(t, yRange.Min, 0.0)
	assert.Greater(t, yRange.Max, 0.0)
	assert.Len(t, graph.Series, 5)
}
