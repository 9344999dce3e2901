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

// Command tuegen generates the named component accessors of tue.Vec.
//
// Usage:
//
//	tuegen -output swizzle_gen.go -pkg tue
//
// Or via go:generate from the tue package:
//
//	//go:generate go run ../cmd/tuegen -output swizzle_gen.go
//
// For every naming set (xyzw, rgba) it emits one getter and one setter per
// component, followed by the swizzles listed in DefaultSwizzles.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "swizzle_gen.go", "Output Go file")
	packageOut = flag.String("pkg", "tue", "Output package name")
)

func main() {
	flag.Parse()

	gen := &Generator{
		OutputFile: *outputFile,
		PackageOut: *packageOut,
		Sets:       DefaultSets,
		Swizzles:   DefaultSwizzles,
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %s\n", *outputFile)
}
