// Package buildinfo carries version data stamped in at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/moviekeeper/internal/buildinfo.Version=v1.0.0 \
//	  -X github.com/dmitrijs2005/moviekeeper/internal/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	  -X 'github.com/dmitrijs2005/moviekeeper/internal/buildinfo.Date=$(date -u)'"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version = ""
	Commit  = ""
	Date    = ""
)

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// PrintBuildData writes version, date and commit to w, using "N/A" for
// values that were not set.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", orNA(Version))
	fmt.Fprintf(w, "Build date: %s\n", orNA(Date))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(Commit))
}
