// updatetiming shifts the event onsets of PLS datamat batch files and/or
// exports them as AFNI stimulus timing files.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/carbocation/neuromisc"
	_ "github.com/carbocation/neuromisc/compileinfoprint"
	"github.com/carbocation/neuromisc/datamat"
)

func main() {
	var pattern string
	var shift, tr float64
	var write, afni bool

	flag.StringVar(&pattern, "glob", "PFOC1*.txt", "Glob of datamat batch text files")
	flag.Float64Var(&shift, "shift", 0, "Number of TRs to add to every onset (may be negative)")
	flag.Float64Var(&tr, "tr", 2, "Repetition time in seconds, used for the AFNI export")
	flag.BoolVar(&write, "write", false, "Write the shifted onsets back into each batch file")
	flag.BoolVar(&afni, "afni", true, "Write {file}_condition_{k}.txt AFNI timing files")
	flag.Parse()

	if !write && !afni {
		log.Println("Nothing to do: set -write and/or -afni")
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
		if err := process(path, shift, tr, write, afni); err != nil {
			log.Printf("%s: %v\n", path, err)
		}
	}
}

func process(path string, shift, tr float64, write, afni bool) error {
	if write {
		if err := datamat.RewriteFile(path, shift); err != nil {
			return err
		}
		log.Printf("Shifted onsets in %s by %g TRs\n", path, shift)
	}

	doc, err := datamat.ReadFile(path)
	if err != nil {
		return err
	}

	// The file on disk already carries the shift when -write was used.
	if !write {
		doc.Shift(shift)
	}

	if !afni {
		return nil
	}

	written, err := doc.ExportAFNI(datamat.AFNIPrefix(path), tr)
	if err != nil {
		return err
	}
	for _, w := range written {
		log.Println("Wrote", w)
	}

	return nil
}
