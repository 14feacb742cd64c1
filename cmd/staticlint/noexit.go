package main

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// ExitMainAnalyzer сообщает о прямых вызовах os.Exit внутри функции main() пакета main.
// Завершение должно идти через возврат ошибки из run, чтобы отработали defer.
var ExitMainAnalyzer = &analysis.Analyzer{
	Name:     "exitmain",
	Doc:      "reports direct calls to os.Exit in main function of package main",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runExitMain,
}

func runExitMain(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		fn := n.(*ast.FuncDecl)
		if fn.Recv != nil || fn.Name.Name != "main" || fn.Body == nil {
			return
		}
		ast.Inspect(fn.Body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			if isOSExit(pass, call) {
				pass.Reportf(call.Pos(), "direct call to os.Exit is not allowed in main")
			}
			return true
		})
	})
	return nil, nil
}

func isOSExit(pass *analysis.Pass, call *ast.CallExpr) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Exit" {
		return false
	}
	id, ok := sel.X.(*ast.Ident)
	if !ok {
		return false
	}
	pkg, ok := pass.TypesInfo.Uses[id].(*types.PkgName)
	return ok && pkg.Imported().Path() == "os"
}
