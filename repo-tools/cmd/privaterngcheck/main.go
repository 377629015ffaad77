// privaterngcheck runs the privaterng analyzer over packages:
//
//	go run ./repo-tools/cmd/privaterngcheck ./...
package main

import (
	"spheretrace/repo-tools/nogo/privaterng"

	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(privaterng.Analyzer)
}
