// Package source builds the normalized type and operation model consumed by
// the TypeScript renderers. The extractor walks a parsed schema document and
// buckets its definitions by kind; the renderers never touch the syntax tree
// directly.
package source

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// FieldDefinition is one field of an object, input or interface definition.
// Kind is the kind of the definition that declares the field.
type FieldDefinition struct {
	Kind        ast.DefinitionKind
	Name        string
	Type        string
	NonNull     bool
	Description string
}

// TypeDefinition is a normalized object, input, scalar or interface
// definition. Field order follows the document. Scalars carry no fields.
type TypeDefinition struct {
	Kind        ast.DefinitionKind
	Name        string
	Fields      []*FieldDefinition
	Description string
}

// EnumDefinition preserves the declared value order.
type EnumDefinition struct {
	Kind        ast.DefinitionKind
	Name        string
	Values      []string
	Description string
}

// UnionDefinition preserves the declared member order.
type UnionDefinition struct {
	Kind        ast.DefinitionKind
	Name        string
	Types       []string
	Description string
}

// ExtendedTypes is the full classification of a schema document, keyed by
// type name. A later definition of the same name overwrites an earlier one.
type ExtendedTypes struct {
	Types      map[string]*TypeDefinition
	Inputs     map[string]*TypeDefinition
	Scalars    map[string]*TypeDefinition
	Enums      map[string]*EnumDefinition
	Interfaces map[string]*TypeDefinition
	Unions     map[string]*UnionDefinition
}

func NewExtendedTypes() *ExtendedTypes {
	return &ExtendedTypes{
		Types:      map[string]*TypeDefinition{},
		Inputs:     map[string]*TypeDefinition{},
		Scalars:    map[string]*TypeDefinition{},
		Enums:      map[string]*EnumDefinition{},
		Interfaces: map[string]*TypeDefinition{},
		Unions:     map[string]*UnionDefinition{},
	}
}

// OperationArgument is one argument of a root operation field, with its type
// already flattened.
type OperationArgument struct {
	Name string
	Type string
}

// OperationField is one field of a root operation type.
type OperationField struct {
	Name       string
	Args       []OperationArgument
	ReturnType string
}

// The three root operation type names recognized by the extractor.
const (
	RootQuery        = "Query"
	RootMutation     = "Mutation"
	RootSubscription = "Subscription"
)

// RootNames fixes the render order of the root operation types.
var RootNames = []string{RootQuery, RootMutation, RootSubscription}

// Operations maps each root operation name to its fields in document order.
// All three roots are always present, empty when the document declares none.
type Operations map[string][]*OperationField

// IsEmpty reports whether no root operation has any field.
func (o Operations) IsEmpty() bool {
	for _, fields := range o {
		if len(fields) > 0 {
			return false
		}
	}

	return true
}
