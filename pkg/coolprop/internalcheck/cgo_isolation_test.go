package internalcheck

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const backendPath = "github.com/coolprop/coolprop-go/pkg/coolprop/internal/backend"

// TestCgoConfinedToBackend enforces the boundary-crossing rule: only the
// backend package may import "C". The check parses the original source files
// rather than the compiled set so cgo-tagged files are seen even when the
// test itself runs with cgo disabled.
func TestCgoConfinedToBackend(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
	}
	pkgs, err := packages.Load(cfg, "github.com/coolprop/coolprop-go/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string
	fset := token.NewFileSet()
	for _, pkg := range pkgs {
		if pkg.PkgPath == backendPath {
			continue
		}
		files := append([]string{}, pkg.GoFiles...)
		files = append(files, pkg.IgnoredFiles...)
		for _, file := range files {
			if !strings.HasSuffix(file, ".go") {
				continue
			}
			f, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("parse %s: %v", file, err)
			}
			for _, imp := range f.Imports {
				if imp.Path.Value == `"C"` {
					findings = append(findings, file)
				}
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("cgo must stay inside %s; offending files:\n%s", backendPath, strings.Join(findings, "\n"))
	}
}
