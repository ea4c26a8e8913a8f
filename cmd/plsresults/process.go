package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/neuromisc/matfile"
	"github.com/carbocation/neuromisc/pls"
	"github.com/carbocation/neuromisc/plsplot"
	"github.com/carbocation/pfx"
)

type runConfig struct {
	PLS      pls.Config
	Plot     plsplot.Options
	WriteTSV bool
}

// processFiles handles each file independently: a file that fails is logged
// and skipped. It returns the number of images written.
func processFiles(files []string, cfg runConfig) int {
	images := 0
	for _, path := range files {
		written, err := processFile(path, cfg)
		images += len(written)

		switch {
		case errors.Is(err, pls.ErrUnknownResultType):
			log.Printf("%s: Check file type, or give up all hope.\n", path)
		case err != nil:
			log.Printf("%s: %v\n", path, err)
		case len(written) == 0:
			log.Printf("%s: no significant latent variables\n", path)
		default:
			for _, w := range written {
				log.Println("Wrote", w)
			}
		}
	}

	return images
}

func processFile(path string, cfg runConfig) ([]string, error) {
	rt := pls.Classify(filepath.Base(path))
	if rt == pls.Unknown {
		return nil, pls.ErrUnknownResultType
	}

	f, err := matfile.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := pls.Extract(f, rt, cfg.PLS)
	if err != nil {
		return nil, fmt.Errorf("%s result (%s encoding): %w", rt, f.Encoding(), err)
	}

	if cfg.WriteTSV {
		if err := writeTable(table, strings.TrimSuffix(path, filepath.Ext(path))+"_lvs.tsv"); err != nil {
			return nil, err
		}
	}

	return safelyRender(table, path, cfg.Plot)
}

func writeTable(table *pls.Table, out string) error {
	f, err := os.Create(out)
	if err != nil {
		return pfx.Err(err)
	}

	if err := table.WriteTSV(f); err != nil {
		f.Close()
		return pfx.Err(err)
	}

	return pfx.Err(f.Close())
}

// safelyRender turns panics from the plotting library, which can occur on
// degenerate data ranges, into errors.
func safelyRender(table *pls.Table, source string, opts plsplot.Options) (written []string, err error) {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			err = fmt.Errorf("rendering: %v", panicErr)
		}
	}()

	return plsplot.Render(table, source, opts)
}
