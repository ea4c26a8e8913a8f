package main

import (
	"os"
	"path/filepath"
	"testing"

	mft "github.com/carbocation/neuromisc/matfile/matfiletest"
	"github.com/carbocation/neuromisc/pls"
	"github.com/carbocation/neuromisc/plsplot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blockResult() []mft.Var {
	// Two groups of two conditions, three LVs. Only LV2 is significant.
	est := mft.Matrix([][]float64{
		{1, -2, 3},
		{2, -1, 3},
		{3, 1, 3},
		{4, 2, 3},
	})
	return []mft.Var{
		{Name: "result", Value: mft.Struct{
			{Name: "boot_result", Value: mft.Struct{
				{Name: "orig_usc", Value: est},
				{Name: "ulusc", Value: mft.Matrix([][]float64{{2, -1, 4}, {3, 0, 4}, {4, 2, 4}, {5, 3, 4}})},
				{Name: "llusc", Value: mft.Matrix([][]float64{{0, -3, 2}, {1, -2, 2}, {2, 0, 2}, {3, 1, 2}})},
			}},
			{Name: "perm_result", Value: mft.Struct{
				{Name: "sprob", Value: mft.Column(0.3, 0.001, 0.6)},
			}},
			{Name: "num_subj_lst", Value: mft.Row(10, 11)},
		}},
		{Name: "cond_name", Value: mft.Cellstr("Past", "Future")},
	}
}

func testConfig() runConfig {
	return runConfig{
		PLS:      pls.DefaultConfig(),
		Plot:     plsplot.DefaultOptions(),
		WriteTSV: true,
	}
}

func TestProcessFiles(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "PFOC_BfMRIresult.mat")
	require.NoError(t, mft.WriteV5File(good, true, blockResult()...))

	unknown := filepath.Join(dir, "PFOC_result.mat")
	require.NoError(t, mft.WriteV5File(unknown, false, blockResult()...))

	// Named as an event file but laid out as a block file.
	mislabeled := filepath.Join(dir, "PFOC_fMRIresult.mat")
	require.NoError(t, mft.WriteV5File(mislabeled, false, blockResult()...))

	images := processFiles([]string{good, unknown, mislabeled}, testConfig())
	assert.Equal(t, 1, images)

	_, err := os.Stat(filepath.Join(dir, "PFOC_BfMRIresultEstimate_LV2.png"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "PFOC_BfMRIresult_lvs.tsv"))
	assert.NoError(t, err)

	_, err = processFile(unknown, testConfig())
	assert.ErrorIs(t, err, pls.ErrUnknownResultType)

	_, err = processFile(mislabeled, testConfig())
	assert.ErrorIs(t, err, pls.ErrMalformedResult)
}

func TestProcessNoFiles(t *testing.T) {
	assert.Equal(t, 0, processFiles(nil, testConfig()))
}
