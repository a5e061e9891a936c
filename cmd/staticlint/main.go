// Package main запускает multichecker.
//
// Он включает:
// - стандартные анализаторы go/analysis/passes, в том числе httpresponse и lostcancel
// - все SA-анализаторы staticcheck
// - не-SA анализаторы S1000, S1021 и U1000
// - публичный анализатор bodyclose
// - собственный анализатор noexit (запрещает os.Exit в main и init)
//
// Запуск:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/fieldalignment"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/unused"

	"github.com/Totarae/AudioAnalyzer/cmd/staticlint/noexit"
)

// не-SA проверки staticcheck, которые включаем явно
var extraChecks = []string{
	"S1000", // упрощения select
	"S1021", // объединение объявления и присваивания
}

func main() {
	multichecker.Main(analyzers()...)
}

func analyzers() []*analysis.Analyzer {
	list := []*analysis.Analyzer{
		errorsas.Analyzer,
		fieldalignment.Analyzer,
		httpresponse.Analyzer,
		lostcancel.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
	}

	// SA-анализаторы
	for _, a := range staticcheck.Analyzers {
		if a.Analyzer.Name[:2] == "SA" {
			list = append(list, a.Analyzer)
		}
	}

	for _, name := range extraChecks {
		if a := findAnalyzer(simple.Analyzers, name); a != nil {
			list = append(list, a)
		}
	}

	// неиспользуемый код
	list = append(list, unused.Analyzer.Analyzer)

	// публичный анализатор (не из staticcheck)
	list = append(list, bodyclose.Analyzer)

	// собственный анализатор
	list = append(list, noexit.NewAnalyzer())
	return list
}

func findAnalyzer(set []*lint.Analyzer, name string) *analysis.Analyzer {
	for _, a := range set {
		if a.Analyzer.Name == name {
			return a.Analyzer
		}
	}
	return nil
}
