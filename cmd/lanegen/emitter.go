// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"
)

var fileTemplate = template.Must(template.New("backends").Parse(`// Code generated by lanegen. DO NOT EDIT.

package {{.Package}}

import "github.com/ajroetker/go-valarray/hwy"
{{range .Targets}}
// {{.Name}}Array is an Array evaluated with {{.Doc}}.
type {{.Name}}Array = Array[{{.Lane}}, {{.Backend}}]

// {{.Name}}Representation holds the values of {{.Name}}Array leaves.
type {{.Name}}Representation = Representation[{{.Lane}}, {{.Backend}}]

// New{{.Name}} allocates size zeroed values.
func New{{.Name}}(size int) (*{{.Name}}Array, error) {
	return New[{{.Lane}}, {{.Backend}}](size)
}

// Filled{{.Name}} allocates size copies of value.
func Filled{{.Name}}(size int, value float32) (*{{.Name}}Array, error) {
	return Filled[{{.Lane}}, {{.Backend}}](size, value)
}

// FromSlice{{.Name}} copies values into a new array.
func FromSlice{{.Name}}(values []float32) (*{{.Name}}Array, error) {
	return FromSlice[{{.Lane}}, {{.Backend}}](values)
}
{{end}}`))

// Generate renders the alias file for targets in package pkg.
func Generate(pkg string, targets []Target) ([]byte, error) {
	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Package string
		Targets []Target
	}{pkg, targets})
	if err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	src, err := imports.Process("backends_gen.go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: false,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return src, nil
}
