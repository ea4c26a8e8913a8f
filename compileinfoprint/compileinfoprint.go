// Package compileinfoprint is imported by each tool for the side effect of
// printing its build details to stderr at startup.
package compileinfoprint

import "github.com/carbocation/neuromisc/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
