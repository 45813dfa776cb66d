// Package schemaparser loads GraphQL SDL sources and parses them into schema
// documents. Parsing stops at the syntax tree: the schema is not validated,
// unknown type references and the like pass through untouched.
package schemaparser

import (
	"fmt"
	"os"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// LoadSchemaDocument reads and parses a single SDL file. A missing file is
// reported before any parse attempt; a parser rejection is wrapped with the
// source path and the parser's message preserved.
func LoadSchemaDocument(filename string) (*ast.SchemaDocument, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("schema %s does not exist: %w", filename, err)
	}

	schemaRaw, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to read schema %s: %w", filename, err)
	}

	return ParseSchemaDocument(filename, string(schemaRaw))
}

// LoadSchemaDocuments loads every file and merges the documents in filename
// order.
func LoadSchemaDocuments(filenames []string) (*ast.SchemaDocument, error) {
	var schemaDocument ast.SchemaDocument
	for _, filename := range filenames {
		doc, err := LoadSchemaDocument(filename)
		if err != nil {
			return nil, err
		}

		mergeSchemaDocument(&schemaDocument, doc)
	}

	return &schemaDocument, nil
}

// ParseSchemaDocument parses an in-memory SDL source. One parse attempt, no
// retries.
func ParseSchemaDocument(name, input string) (*ast.SchemaDocument, error) {
	doc, gqlerr := parser.ParseSchema(&ast.Source{Name: name, Input: input})
	if gqlerr != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", name, gqlerr)
	}

	return doc, nil
}

func mergeSchemaDocument(d, other *ast.SchemaDocument) {
	d.Schema = append(d.Schema, other.Schema...)
	d.SchemaExtension = append(d.SchemaExtension, other.SchemaExtension...)
	d.Directives = append(d.Directives, other.Directives...)
	d.Definitions = append(d.Definitions, other.Definitions...)
	d.Extensions = append(d.Extensions, other.Extensions...)
}
