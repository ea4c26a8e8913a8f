// corrmatrices builds group-averaged seed-to-seed correlation matrices from
// per-subject voxel dumps, for two groups and their difference.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/neuromisc"
	_ "github.com/carbocation/neuromisc/compileinfoprint"
	"github.com/carbocation/neuromisc/seedcorr"
)

// Safe for concurrent use by multiple goroutines
var client *storage.Client

const defaultLabels = "PFCdp,IPL,STS,MPFC,pHG,PCC,FEF,IPS,SPL7a,MT+,SPL7p,PrCv"

func main() {
	var group1, group2, names, conds, labels, out string
	var seeds, trs, divider, cellPx, montageCols int
	var hist bool

	flag.StringVar(&group1, "group1", "YeoNet_fmri_grp1_subj*_voxeldata.txt", "Glob of voxel dumps for the first group. May be a gs:// path.")
	flag.StringVar(&group2, "group2", "YeoNet_fmri_grp2_subj*_voxeldata.txt", "Glob of voxel dumps for the second group. May be a gs:// path.")
	flag.StringVar(&names, "names", "Young,Older", "Comma-separated names of the two groups, used in output file names")
	flag.IntVar(&seeds, "seeds", 12, "Number of seed regions per row")
	flag.IntVar(&trs, "trs", 8, "Number of TRs per seed")
	flag.StringVar(&conds, "conds", "Control,Null,Past,Future,Other", "Comma-separated condition names, one per row of each voxel dump")
	flag.StringVar(&labels, "labels", defaultLabels, "Comma-separated region labels for the matrix axes")
	flag.IntVar(&divider, "divider", 6, "Draw a divider after this many regions. 0 disables it.")
	flag.IntVar(&cellPx, "cellpx", 40, "Heatmap cell size in pixels")
	flag.IntVar(&montageCols, "montage", 0, "If positive, also tile each group's heatmaps into {group}_montage.png with this many columns")
	flag.BoolVar(&hist, "hist", false, "Print a text histogram of each group's z values to stderr")
	flag.StringVar(&out, "out", ".", "Output folder")
	flag.Parse()

	groupNames := neuromisc.SplitList(names)
	if group1 == "" || group2 == "" || len(groupNames) != 2 {
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Initialize the Google Storage client only if we're pointing to Google
	// Storage paths.
	if strings.HasPrefix(group1, "gs://") || strings.HasPrefix(group2, "gs://") {
		var err error
		client, err = storage.NewClient(context.Background())
		if err != nil {
			log.Fatalln(err)
		}
	}

	if err := os.MkdirAll(neuromisc.ExpandHome(out), os.ModePerm); err != nil {
		log.Fatalln(err)
	}

	job := job{
		Groups:  [2]group{{Name: groupNames[0], Pattern: group1}, {Name: groupNames[1], Pattern: group2}},
		Layout:  seedcorr.Layout{Seeds: seeds, TRs: trs},
		Conds:   neuromisc.SplitList(conds),
		Heatmap: seedcorr.Heatmap{Labels: neuromisc.SplitList(labels), Divider: divider, CellPx: cellPx},
		Out:     neuromisc.ExpandHome(out),

		MontageCols: montageCols,
	}
	if hist {
		job.Histogram = os.Stderr
	}

	if err := job.run(client); err != nil {
		log.Fatalln(err)
	}
}
