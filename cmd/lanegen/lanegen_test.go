package main

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateDeclaresEveryTarget(t *testing.T) {
	src, err := Generate("valarray", AllTargets())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "backends_gen.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, src)
	}

	decls := map[string]bool{}
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			decls[d.Name.Name] = true
		case *ast.GenDecl:
			for _, s := range d.Specs {
				if ts, ok := s.(*ast.TypeSpec); ok {
					if !ts.Assign.IsValid() {
						t.Errorf("%s is not a type alias", ts.Name.Name)
					}
					decls[ts.Name.Name] = true
				}
			}
		}
	}

	for _, target := range AllTargets() {
		for _, name := range []string{
			target.Name + "Array",
			target.Name + "Representation",
			"New" + target.Name,
			"Filled" + target.Name,
			"FromSlice" + target.Name,
		} {
			if !decls[name] {
				t.Errorf("missing declaration %s", name)
			}
		}
	}
}

func TestGeneratedFileUpToDate(t *testing.T) {
	want, err := Generate("valarray", AllTargets())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	got, err := os.ReadFile(filepath.Join("..", "..", "valarray", "backends_gen.go"))
	if err != nil {
		t.Fatalf("read checked-in file: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("valarray/backends_gen.go is stale; run go generate ./valarray")
	}
}

func TestParseTargets(t *testing.T) {
	tests := []struct {
		in      string
		want    []string
		wantErr bool
	}{
		{in: "all", want: AvailableTargets()},
		{in: "sse2, AVX2", want: []string{"sse2", "avx2"}},
		{in: "scalar,,neon", want: []string{"scalar", "neon"}},
		{in: "avx512", wantErr: true},
		{in: " , ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseTargets(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseTargets(%q): expected an error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTargets(%q): %v", tt.in, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseTargets(%q): got %d targets, want %d", tt.in, len(got), len(tt.want))
			}
			for i, target := range got {
				if target.Key != tt.want[i] {
					t.Errorf("target %d: got %s, want %s", i, target.Key, tt.want[i])
				}
			}
		})
	}
}
