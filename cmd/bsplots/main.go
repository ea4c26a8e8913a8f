// bsplots draws the mean brain score time course of each condition from PLS
// *bs_plot.mat files.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/carbocation/neuromisc"
	_ "github.com/carbocation/neuromisc/compileinfoprint"
)

func main() {
	var pattern, rows, order, colors string
	var width, height int

	flag.StringVar(&pattern, "glob", "*bs_plot.mat", "Glob of brain score .mat files")
	flag.StringVar(&rows, "rows", "Control,Null,Past,Future,Other", "Comma-separated condition name of each row of bs_data_mean")
	flag.StringVar(&order, "order", "Past,Future,Other,Control,Null", "Comma-separated order in which conditions are drawn and listed in the legend")
	flag.StringVar(&colors, "colors", "green,red,blue,black,orange", "Comma-separated colors, matched to -order. Names or hex values.")
	flag.IntVar(&width, "width", 1200, "Image width in pixels")
	flag.IntVar(&height, "height", 900, "Image height in pixels")
	flag.Parse()

	layout := lineLayout{
		Rows:   neuromisc.SplitList(rows),
		Order:  neuromisc.SplitList(order),
		Colors: neuromisc.SplitList(colors),
		Width:  width,
		Height: height,
	}
	if err := layout.validate(); err != nil {
		log.Println(err)
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

	for _, path := range files {
		out := strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
		if err := layout.plotFile(path, out); err != nil {
			log.Printf("%s: %v\n", path, err)
			continue
		}
		log.Println("Wrote", out)
	}
}
