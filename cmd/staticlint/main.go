// Package main реализует команду staticlint — multichecker для статического анализа
// кода сервиса. Набор анализаторов:
//   - printf, shadow, structtag, nilness, unusedresult из golang.org/x/tools;
//   - errorsas и httpresponse: неверные вызовы errors.As и незакрытые тела HTTP-ответов;
//   - все правила staticcheck с префиксом SA и правила simple (S*) из honnef.co/go/tools;
//   - exitmain: запрет прямого os.Exit в функции main пакета main.
//
// Использование:
//
//	go install ./cmd/staticlint
//	staticlint ./...
package main

import (
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
)

func analyzers() []*analysis.Analyzer {
	list := []*analysis.Analyzer{
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
		nilness.Analyzer,
		unusedresult.Analyzer,
		errorsas.Analyzer,
		httpresponse.Analyzer,
		ExitMainAnalyzer,
	}

	for _, la := range staticcheck.Analyzers {
		if strings.HasPrefix(la.Analyzer.Name, "SA") {
			list = append(list, la.Analyzer)
		}
	}
	for _, la := range simple.Analyzers {
		list = append(list, la.Analyzer)
	}
	return list
}

func main() {
	multichecker.Main(analyzers()...)
}
