// Package typegen renders the normalized schema model into TypeScript
// declaration text. Rendering is pure over the model and the options, so a
// second target syntax only needs another renderer over the same model.
package typegen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Koatty/koatty-graphql/source"
)

// Options controls naming and declaration style for one generation run.
type Options struct {
	// Prefix and Suffix wrap every generated type name.
	Prefix string
	Suffix string
	// UseEnumType renders enums as a frozen const object plus a value-union
	// type instead of a native enum.
	UseEnumType bool
	// UseInterfaceType renders interface-kind types as structural interfaces
	// instead of type aliases.
	UseInterfaceType bool
	// StrictNullChecks marks fields whose flattened type carries no non-null
	// marker as optional.
	StrictNullChecks bool
	// OutputDir is consumed by the file writer, not by rendering.
	OutputDir string
}

// Renderer turns model entries into declarations. The resolver must be the
// one the model was extracted with, so render-time scalar lookups see the
// same snapshot.
type Renderer struct {
	opts     *Options
	resolver *source.TypeResolver
}

func New(resolver *source.TypeResolver, opts *Options) *Renderer {
	if opts == nil {
		opts = &Options{}
	}

	return &Renderer{opts: opts, resolver: resolver}
}

// formatName wraps a declared or referenced type name with the configured
// prefix and suffix.
func (r *Renderer) formatName(name string) string {
	return r.opts.Prefix + name + r.opts.Suffix
}

// typeRef formats a flattened type for use inside a declaration body. List
// suffixes are kept, and names already resolved to a TypeScript primitive
// are exempt from prefix/suffix formatting.
func (r *Renderer) typeRef(flat string) string {
	if strings.HasSuffix(flat, "[]") {
		return r.typeRef(strings.TrimSuffix(flat, "[]")) + "[]"
	}
	if r.resolver.IsPrimitive(flat) {
		return flat
	}

	return r.formatName(flat)
}

// Scalar renders a declared scalar as an alias to the string primitive.
func (r *Renderer) Scalar(def *source.TypeDefinition) string {
	return fmt.Sprintf("export type %s = string;", r.formatName(def.Name))
}

// Interface renders an object or input definition as a structural interface.
func (r *Renderer) Interface(def *source.TypeDefinition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "export interface %s {\n", r.formatName(def.Name))
	r.writeFields(&b, def.Fields)
	b.WriteString("}")

	return b.String()
}

// InterfaceType renders an interface-kind definition, either as a structural
// interface or as an alias to the equivalent object type.
func (r *Renderer) InterfaceType(def *source.TypeDefinition) string {
	if r.opts.UseInterfaceType {
		return r.Interface(def)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "export type %s = {\n", r.formatName(def.Name))
	r.writeFields(&b, def.Fields)
	b.WriteString("};")

	return b.String()
}

func (r *Renderer) writeFields(b *strings.Builder, fields []*source.FieldDefinition) {
	for _, field := range fields {
		fmt.Fprintf(b, "  %s%s: %s;\n", field.Name, r.optionalMarker(field), r.typeRef(field.Type))
	}
}

// optionalMarker returns "?" under strictNullChecks when the flattened type
// string carries no non-null indicator. The resolver erases non-null markers
// while flattening, so only a marker preserved by the caller's model can
// suppress it.
func (r *Renderer) optionalMarker(field *source.FieldDefinition) string {
	if r.opts.StrictNullChecks && !strings.Contains(field.Type, "!") {
		return "?"
	}

	return ""
}

// Enum renders either a native enum or, with useEnumType, a frozen object
// literal plus a union of its values under the same name.
func (r *Renderer) Enum(def *source.EnumDefinition) string {
	name := r.formatName(def.Name)

	var b strings.Builder
	if r.opts.UseEnumType {
		fmt.Fprintf(&b, "export const %s = Object.freeze({\n", name)
		for i, value := range def.Values {
			fmt.Fprintf(&b, "  %s: '%s'%s\n", value, value, comma(i, len(def.Values)))
		}
		b.WriteString("} as const);\n")
		fmt.Fprintf(&b, "export type %s = typeof %s[keyof typeof %s];", name, name, name)

		return b.String()
	}

	fmt.Fprintf(&b, "export enum %s {\n", name)
	for i, value := range def.Values {
		fmt.Fprintf(&b, "  %s = '%s'%s\n", value, value, comma(i, len(def.Values)))
	}
	b.WriteString("}")

	return b.String()
}

func comma(i, n int) string {
	if i < n-1 {
		return ","
	}

	return ""
}

// Union renders a type alias over the formatted member names.
func (r *Renderer) Union(def *source.UnionDefinition) string {
	members := make([]string, 0, len(def.Types))
	for _, member := range def.Types {
		members = append(members, r.typeRef(member))
	}

	return fmt.Sprintf("export type %s = %s;", r.formatName(def.Name), strings.Join(members, " | "))
}

// Operation renders one root operation type as an interface of method
// signatures. Argument and return types are re-resolved against the scalar
// snapshot, so a scalar inside a flattened list still maps to its primitive.
func (r *Renderer) Operation(root string, fields []*source.OperationField) string {
	var b strings.Builder
	fmt.Fprintf(&b, "export interface %s {\n", r.formatName(root))
	for _, field := range fields {
		args := make([]string, 0, len(field.Args))
		for _, arg := range field.Args {
			args = append(args, fmt.Sprintf("%s: %s", arg.Name, r.operationTypeRef(arg.Type)))
		}
		fmt.Fprintf(&b, "  %s(%s): %s;\n", field.Name, strings.Join(args, ", "), r.operationTypeRef(field.ReturnType))
	}
	b.WriteString("}")

	return b.String()
}

func (r *Renderer) operationTypeRef(flat string) string {
	return r.typeRef(r.resolver.ResolveName(flat))
}

// Category aggregates. Entries render in sorted name order so output is
// deterministic; fields inside each declaration keep document order.

// Types renders the scalar aliases followed by the object interfaces.
func (r *Renderer) Types(scalars, types map[string]*source.TypeDefinition) string {
	decls := make([]string, 0, len(scalars)+len(types))
	for _, name := range sortedNames(scalars) {
		decls = append(decls, r.Scalar(scalars[name]))
	}
	for _, name := range sortedNames(types) {
		decls = append(decls, r.Interface(types[name]))
	}

	return category("object type", decls)
}

func (r *Renderer) Inputs(inputs map[string]*source.TypeDefinition) string {
	decls := make([]string, 0, len(inputs))
	for _, name := range sortedNames(inputs) {
		decls = append(decls, r.Interface(inputs[name]))
	}

	return category("input type", decls)
}

func (r *Renderer) Enums(enums map[string]*source.EnumDefinition) string {
	decls := make([]string, 0, len(enums))
	for _, name := range sortedNames(enums) {
		decls = append(decls, r.Enum(enums[name]))
	}

	return category("enum", decls)
}

func (r *Renderer) Interfaces(interfaces map[string]*source.TypeDefinition) string {
	decls := make([]string, 0, len(interfaces))
	for _, name := range sortedNames(interfaces) {
		decls = append(decls, r.InterfaceType(interfaces[name]))
	}

	return category("interface", decls)
}

func (r *Renderer) Unions(unions map[string]*source.UnionDefinition) string {
	decls := make([]string, 0, len(unions))
	for _, name := range sortedNames(unions) {
		decls = append(decls, r.Union(unions[name]))
	}

	return category("union", decls)
}

// Operations renders one interface per non-empty root, in the fixed
// Query, Mutation, Subscription order.
func (r *Renderer) Operations(operations source.Operations) string {
	decls := make([]string, 0, len(source.RootNames))
	for _, root := range source.RootNames {
		if fields := operations[root]; len(fields) > 0 {
			decls = append(decls, r.Operation(root, fields))
		}
	}

	return category("operation", decls)
}

// category joins declarations with one blank line between, prefixed by the
// two-line category banner.
func category(kind string, decls []string) string {
	banner := fmt.Sprintf("// GraphQL %s definitions.\n// Code generated by koatty-graphql. DO NOT EDIT.", kind)
	parts := append([]string{banner}, decls...)

	return strings.Join(parts, "\n\n") + "\n"
}

func sortedNames[T any](m map[string]T) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
