// Package generator runs one full schema-to-declarations pass: it extracts
// the normalized model from a parsed schema document and renders one output
// unit per non-empty category.
package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/Koatty/koatty-graphql/source"
	"github.com/Koatty/koatty-graphql/typegen"
)

// Result is one rendered output unit. Writing it anywhere is the caller's
// business; see WriteFiles.
type Result struct {
	Filename string
	Content  string
}

// Generate classifies and extracts the document once, then renders each
// non-empty category. The scalar registry is snapshotted exactly once per
// call, so registry mutation during a run cannot skew resolution. Output
// order is fixed: types, inputs, enums, interfaces, unions, operations.
func Generate(doc *ast.SchemaDocument, opts *typegen.Options) []*Result {
	resolver := source.NewTypeResolver(source.ScalarTypes())
	extractor := source.NewExtractor(resolver)

	extendedTypes := extractor.ExtendedTypes(doc)
	operations := extractor.Operations(doc)
	renderer := typegen.New(resolver, opts)

	results := make([]*Result, 0, 6)
	if len(extendedTypes.Types) > 0 || len(extendedTypes.Scalars) > 0 {
		results = append(results, &Result{Filename: "types.ts", Content: renderer.Types(extendedTypes.Scalars, extendedTypes.Types)})
	}
	if len(extendedTypes.Inputs) > 0 {
		results = append(results, &Result{Filename: "inputs.ts", Content: renderer.Inputs(extendedTypes.Inputs)})
	}
	if len(extendedTypes.Enums) > 0 {
		results = append(results, &Result{Filename: "enums.ts", Content: renderer.Enums(extendedTypes.Enums)})
	}
	if len(extendedTypes.Interfaces) > 0 {
		results = append(results, &Result{Filename: "interfaces.ts", Content: renderer.Interfaces(extendedTypes.Interfaces)})
	}
	if len(extendedTypes.Unions) > 0 {
		results = append(results, &Result{Filename: "unions.ts", Content: renderer.Unions(extendedTypes.Unions)})
	}
	if !operations.IsEmpty() {
		results = append(results, &Result{Filename: "operations.ts", Content: renderer.Operations(operations)})
	}

	return results
}

// WriteFiles writes each result into outputDir, creating it if needed.
func WriteFiles(results []*Result, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("unable to create output dir %s: %w", outputDir, err)
	}

	for _, result := range results {
		path := filepath.Join(outputDir, result.Filename)
		if err := os.WriteFile(path, []byte(result.Content), 0o644); err != nil {
			return fmt.Errorf("unable to write %s: %w", path, err)
		}
	}

	return nil
}
