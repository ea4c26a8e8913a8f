// plsresults pulls the significant latent variables out of every PLS
// result.mat file matching a glob and draws a bar chart for each one.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/carbocation/neuromisc"
	_ "github.com/carbocation/neuromisc/compileinfoprint"
	"github.com/carbocation/neuromisc/pls"
	"github.com/carbocation/neuromisc/plsplot"
	"gonum.org/v1/plot/vg"
)

func main() {
	var pattern, groups, conds string
	var alpha, width, height float64
	var writeTSV bool

	def := pls.DefaultConfig()
	defPlot := plsplot.DefaultOptions()

	flag.StringVar(&pattern, "glob", "*result.mat", "Glob of PLS result files to process. Names must contain _BfMRIresult.mat (block) or _fMRIresult.mat (event).")
	flag.Float64Var(&alpha, "alpha", def.Alpha, "Latent variables with a permutation p-value below this are kept.")
	flag.StringVar(&groups, "groups", "Young,Old", "Comma-separated group labels, in the order the groups appear in the result file.")
	flag.StringVar(&conds, "conds", "Past,Future,Other,Control", "Comma-separated condition order for the x axis. Empty keeps the order of the file.")
	flag.BoolVar(&writeTSV, "tsv", false, "Also write the assembled table as {file}_lvs.tsv")
	flag.Float64Var(&width, "width", float64(defPlot.Width/vg.Inch), "Plot width in inches")
	flag.Float64Var(&height, "height", float64(defPlot.Height/vg.Inch), "Plot height in inches")
	flag.Parse()

	if alpha <= 0 || width <= 0 || height <= 0 {
		flag.PrintDefaults()
		os.Exit(1)
	}

	files, err := filepath.Glob(neuromisc.ExpandHome(pattern))
	if err != nil {
		log.Fatalln(err)
	}
	sort.Strings(files)

	if len(files) == 0 {
		log.Printf("No files matched %q\n", pattern)
		return
	}

	cfg := runConfig{
		PLS: pls.Config{Alpha: alpha, GroupLevels: neuromisc.SplitList(groups)},
		Plot: plsplot.Options{
			Conditions:  neuromisc.SplitList(conds),
			Width:       vg.Length(width) * vg.Inch,
			Height:      vg.Length(height) * vg.Inch,
			BarFraction: defPlot.BarFraction,
		},
		WriteTSV: writeTSV,
	}

	images := processFiles(files, cfg)
	log.Printf("Processed %d files, wrote %d images\n", len(files), images)
}
