// Package compileinfo reports which build of a tool produced a set of
// outputs, so that figures and tables can be traced back to a commit.
package compileinfo

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
)

type CompileInfo struct {
	Tool       string
	Module     string
	Version    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	commit := c.Commit
	if commit == "" {
		commit = "unknown"
	}
	if c.Modified {
		commit += " (modified)"
	}

	return fmt.Sprintf("%s %s (%s) built with %s from commit %s at %s", c.Tool, c.Version, c.Module, c.GoVersion, commit, c.CommitTime)
}

func Get() CompileInfo {
	out := CompileInfo{
		Tool:    filepath.Base(os.Args[0]),
		Version: "(devel)",
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.GoVersion = bi.GoVersion
	out.Module = bi.Main.Path
	if bi.Main.Version != "" {
		out.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

func Fprint(w io.Writer) {
	fmt.Fprintln(w, Get())
}

func PrintToStdErr() {
	Fprint(os.Stderr)
}
