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
	"os"
	"strings"

	"golang.org/x/tools/imports"
)

// DefaultSets are the component naming sets. Index i of each set names
// component i.
var DefaultSets = [][]string{
	{"X", "Y", "Z", "W"},
	{"R", "G", "B", "A"},
}

// DefaultSwizzles are the multi-component accessors emitted after the
// single-component ones. Every letter must belong to one naming set.
var DefaultSwizzles = []string{"XY", "XZ", "YZ", "XYZ", "RG", "RGB"}

// Generator writes the accessor file.
type Generator struct {
	OutputFile string     // Destination file
	PackageOut string     // Package clause of the generated file
	Sets       [][]string // Component naming sets
	Swizzles   []string   // Multi-component accessors
}

// Run generates the source and writes it to OutputFile.
func (g *Generator) Run() error {
	src, err := g.Generate()
	if err != nil {
		return err
	}
	if err := os.WriteFile(g.OutputFile, src, 0644); err != nil {
		return fmt.Errorf("write %s: %w", g.OutputFile, err)
	}
	return nil
}

// Generate returns the formatted accessor source.
func (g *Generator) Generate() ([]byte, error) {
	index := make(map[byte]int)
	for _, set := range g.Sets {
		for i, name := range set {
			if len(name) != 1 {
				return nil, fmt.Errorf("component name %q must be a single letter", name)
			}
			index[name[0]] = i
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by tuegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n", g.PackageOut)

	for _, set := range g.Sets {
		for i, name := range set {
			lower := strings.ToLower(name)
			fmt.Fprintf(&buf, "\n// %s returns component %d.\n", name, i)
			fmt.Fprintf(&buf, "func (v Vec[T, N]) %s() T { return v.c[%d] }\n", name, i)
			if i < 2 {
				fmt.Fprintf(&buf, "\n// Set%s assigns component %d.\n", name, i)
				fmt.Fprintf(&buf, "func (v *Vec[T, N]) Set%s(%s T) { v.c[%d] = %s }\n", name, lower, i, lower)
			} else {
				fmt.Fprintf(&buf, "\n// Set%s assigns component %d. It has no effect when N < %d.\n", name, i, i+1)
				fmt.Fprintf(&buf, "func (v *Vec[T, N]) Set%s(%s T) { v.Set(%d, %s) }\n", name, lower, i, lower)
			}
		}
	}

	for _, sw := range g.Swizzles {
		if len(sw) < 2 || len(sw) > 4 {
			return nil, fmt.Errorf("swizzle %q: length must be 2, 3 or 4", sw)
		}
		args := make([]string, len(sw))
		names := make([]string, len(sw))
		for i := range len(sw) {
			idx, ok := index[sw[i]]
			if !ok {
				return nil, fmt.Errorf("swizzle %q: unknown component %q", sw, sw[i])
			}
			args[i] = fmt.Sprintf("v.c[%d]", idx)
			names[i] = strings.ToLower(sw[i : i+1])
		}
		fmt.Fprintf(&buf, "\n// %s returns (%s).\n", sw, strings.Join(names, ", "))
		fmt.Fprintf(&buf, "func (v Vec[T, N]) %s() Vec[T, D%d] { return V%d(%s) }\n",
			sw, len(sw), len(sw), strings.Join(args, ", "))
	}

	formatted, err := imports.Process(g.OutputFile, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return formatted, nil
}
