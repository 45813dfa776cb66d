package source

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// Extractor walks a parsed schema document and produces the normalized model.
// It never mutates the document and raises no errors: absent collections are
// treated as empty, unrecognized definition kinds are ignored.
type Extractor struct {
	resolver *TypeResolver
}

func NewExtractor(resolver *TypeResolver) *Extractor {
	return &Extractor{resolver: resolver}
}

// ExtendedTypes classifies every top-level definition into one of the six
// type buckets, in document order. Directive and schema definitions carry no
// type shape and land in the ignored case, as do type extensions, which live
// outside doc.Definitions entirely.
func (e *Extractor) ExtendedTypes(doc *ast.SchemaDocument) *ExtendedTypes {
	extendedTypes := NewExtendedTypes()
	for _, def := range doc.Definitions {
		switch def.Kind {
		case ast.Object:
			extendedTypes.Types[def.Name] = e.typeDefinition(def)
		case ast.InputObject:
			extendedTypes.Inputs[def.Name] = e.typeDefinition(def)
		case ast.Scalar:
			extendedTypes.Scalars[def.Name] = &TypeDefinition{
				Kind:        def.Kind,
				Name:        def.Name,
				Fields:      []*FieldDefinition{},
				Description: def.Description,
			}
		case ast.Enum:
			extendedTypes.Enums[def.Name] = e.enumDefinition(def)
		case ast.Interface:
			extendedTypes.Interfaces[def.Name] = e.typeDefinition(def)
		case ast.Union:
			extendedTypes.Unions[def.Name] = e.unionDefinition(def)
		default:
			// ignored kinds
		}
	}

	return extendedTypes
}

// Operations extracts the fields of the three root operation types. An object
// definition is a root only when its name is exactly Query, Mutation or
// Subscription; repeated roots accumulate fields across occurrences.
func (e *Extractor) Operations(doc *ast.SchemaDocument) Operations {
	operations := Operations{
		RootQuery:        []*OperationField{},
		RootMutation:     []*OperationField{},
		RootSubscription: []*OperationField{},
	}

	for _, def := range doc.Definitions {
		if def.Kind != ast.Object {
			continue
		}
		fields, ok := operations[def.Name]
		if !ok {
			continue
		}
		for _, field := range def.Fields {
			fields = append(fields, e.operationField(field))
		}
		operations[def.Name] = fields
	}

	return operations
}

func (e *Extractor) typeDefinition(def *ast.Definition) *TypeDefinition {
	fields := make([]*FieldDefinition, 0, len(def.Fields))
	for _, field := range def.Fields {
		fields = append(fields, &FieldDefinition{
			Kind:        def.Kind,
			Name:        field.Name,
			Type:        e.resolver.TypeName(field.Type),
			NonNull:     field.Type != nil && field.Type.NonNull,
			Description: field.Description,
		})
	}

	return &TypeDefinition{
		Kind:        def.Kind,
		Name:        def.Name,
		Fields:      fields,
		Description: def.Description,
	}
}

func (e *Extractor) enumDefinition(def *ast.Definition) *EnumDefinition {
	values := make([]string, 0, len(def.EnumValues))
	for _, value := range def.EnumValues {
		values = append(values, value.Name)
	}

	return &EnumDefinition{
		Kind:        def.Kind,
		Name:        def.Name,
		Values:      values,
		Description: def.Description,
	}
}

func (e *Extractor) unionDefinition(def *ast.Definition) *UnionDefinition {
	types := make([]string, 0, len(def.Types))
	types = append(types, def.Types...)

	return &UnionDefinition{
		Kind:        def.Kind,
		Name:        def.Name,
		Types:       types,
		Description: def.Description,
	}
}

func (e *Extractor) operationField(field *ast.FieldDefinition) *OperationField {
	args := make([]OperationArgument, 0, len(field.Arguments))
	for _, arg := range field.Arguments {
		args = append(args, OperationArgument{
			Name: arg.Name,
			Type: e.resolver.TypeName(arg.Type),
		})
	}

	return &OperationField{
		Name:       field.Name,
		Args:       args,
		ReturnType: e.resolver.TypeName(field.Type),
	}
}
