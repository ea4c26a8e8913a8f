package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"path/filepath"

	"cloud.google.com/go/storage"
	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/neuromisc"
	"github.com/carbocation/neuromisc/seedcorr"
)

type group struct {
	Name    string
	Pattern string
}

type job struct {
	Groups  [2]group
	Layout  seedcorr.Layout
	Conds   []string
	Heatmap seedcorr.Heatmap
	Out     string

	// MontageCols > 0 also writes <group>_montage.png with every condition's
	// heatmap.
	MontageCols int

	// Histogram, when set, receives a text histogram of each group's
	// off-diagonal z values.
	Histogram io.Writer
}

func (j job) run(client *storage.Client) error {
	var avg, spread [2]seedcorr.Matrices

	for i, g := range j.Groups {
		files, err := neuromisc.Glob(g.Pattern, client)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("group %s: no files matched %s", g.Name, g.Pattern)
		}
		log.Printf("Group %s: %d subjects\n", g.Name, len(files))

		subjects := make([]seedcorr.Matrices, 0, len(files))
		for _, path := range files {
			z, err := subjectZ(path, j.Layout, client)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if len(z) != len(j.Conds) {
				return fmt.Errorf("%s: %d condition rows but %d condition names", path, len(z), len(j.Conds))
			}
			subjects = append(subjects, z)
		}

		if avg[i], err = seedcorr.AverageZ(subjects); err != nil {
			return fmt.Errorf("group %s: %w", g.Name, err)
		}
		if spread[i], err = seedcorr.SpreadZ(subjects); err != nil {
			return fmt.Errorf("group %s: %w", g.Name, err)
		}
	}

	diff, err := seedcorr.Subtract(avg[0], avg[1])
	if err != nil {
		return err
	}

	for _, out := range []struct {
		name   string
		z      seedcorr.Matrices
		spread seedcorr.Matrices
	}{
		{j.Groups[0].Name, avg[0], spread[0]},
		{j.Groups[1].Name, avg[1], spread[1]},
		{"Diff", diff, nil},
	} {
		if err := j.write(out.name, out.z, out.spread); err != nil {
			return err
		}
		if j.Histogram != nil {
			if err := printHistogram(j.Histogram, out.name, out.z); err != nil {
				return err
			}
		}
	}

	return nil
}

func subjectZ(path string, layout seedcorr.Layout, client *storage.Client) (seedcorr.Matrices, error) {
	rc, err := neuromisc.OpenText(path, client)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := seedcorr.ReadVoxelData(rc)
	if err != nil {
		return nil, err
	}

	return seedcorr.SubjectZ(data, layout)
}

func (j job) write(name string, z, spread seedcorr.Matrices) error {
	var images []string
	for c, cond := range j.Conds {
		base := filepath.Join(j.Out, fmt.Sprintf("%s_%s", name, cond))

		if err := j.Heatmap.Render(seedcorr.ToR(z[c]), base+"_corrMatrix.png"); err != nil {
			return err
		}
		images = append(images, base+"_corrMatrix.png")

		if err := seedcorr.WriteNpy(base+"_avgz.npy", z[c]); err != nil {
			return err
		}
	}

	if j.MontageCols > 0 {
		if err := seedcorr.Montage(images, j.MontageCols, filepath.Join(j.Out, name+"_montage.png")); err != nil {
			return err
		}
	}

	csvPath := filepath.Join(j.Out, name+"_corr.csv")
	if err := seedcorr.WriteLong(csvPath, seedcorr.LongRows(name, j.Conds, j.Heatmap.Labels, z, spread)); err != nil {
		return err
	}
	log.Println("Wrote", name, "outputs to", j.Out)

	return nil
}

// printHistogram draws the distribution of the finite off-diagonal z values
// of every condition.
func printHistogram(w io.Writer, name string, z seedcorr.Matrices) error {
	var vals []float64
	for _, m := range z {
		n, _ := m.Dims()
		for i := 0; i < n; i++ {
			for k := i + 1; k < n; k++ {
				if v := m.At(i, k); !math.IsInf(v, 0) && !math.IsNaN(v) {
					vals = append(vals, v)
				}
			}
		}
	}
	if len(vals) == 0 {
		return nil
	}

	fmt.Fprintf(w, "%s: mean z across region pairs\n", name)

	return histogram.Fprint(w, histogram.Hist(20, vals), histogram.Linear(40))
}
