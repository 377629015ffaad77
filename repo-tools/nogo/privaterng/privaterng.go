// Package privaterng is a nogo analyzer that reports uses of the global
// math/rand source.  Render workers each own a *rand.Rand; the shared source
// would serialize them and make renders unrepeatable.
package privaterng

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

var Analyzer = &analysis.Analyzer{
	Name: "privaterng",
	Doc:  "reports uses of the global math/rand source",
	Run:  run,
}

// allowed are the package-level functions that construct private sources.
var allowed = map[string]bool{
	"New":       true,
	"NewSource": true,
	"NewZipf":   true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			sel, ok := n.(*ast.SelectorExpr)
			if !ok {
				return true
			}

			fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
			if !ok || fn.Pkg() == nil || fn.Pkg().Path() != "math/rand" {
				return true
			}
			if sig, ok := fn.Type().(*types.Signature); !ok || sig.Recv() != nil {
				return true
			}
			if allowed[fn.Name()] {
				return true
			}

			pass.Reportf(sel.Pos(), "use of global math/rand.%s; pass a *rand.Rand instead", fn.Name())
			return true
		})
	}
	return nil, nil
}
