// Package snapshot loads a reflection registry dump from YAML.
//
// A snapshot is produced by the in-process bridge that walks the host's
// live object array; loading one rebuilds the same object graph so the
// generator can run outside the host process. Object order in the file is
// the host's iteration order and is preserved.
package snapshot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rlayout/sdkgen/internal/codegen/meta"
)

// File is the top-level snapshot document.
type File struct {
	Packages []string    `yaml:"packages"`
	Objects  []ObjectDef `yaml:"objects"`
}

// ObjectDef is one entry of the global object array; exactly one member is
// set.
type ObjectDef struct {
	Struct *StructDef `yaml:"struct,omitempty"`
	Enum   *EnumDef   `yaml:"enum,omitempty"`
}

// StructDef describes a reflected class or script-struct.
type StructDef struct {
	Name       string        `yaml:"name"`
	Number     uint32        `yaml:"number,omitempty"`
	Package    string        `yaml:"package"`
	Class      bool          `yaml:"class,omitempty"`
	Blueprint  bool          `yaml:"blueprint,omitempty"`
	Super      string        `yaml:"super,omitempty"` // "<package>.<name>"
	Size       int32         `yaml:"size"`
	Align      int32         `yaml:"align"`
	Properties []PropertyDef `yaml:"properties,omitempty"`
	Functions  []FunctionDef `yaml:"functions,omitempty"`
}

// EnumDef describes a reflected enumeration.
type EnumDef struct {
	Name     string       `yaml:"name"`
	Package  string       `yaml:"package"`
	Variants []VariantDef `yaml:"variants,omitempty"`
}

// VariantDef is one enum variant.
type VariantDef struct {
	Name   string `yaml:"name"`
	Number uint32 `yaml:"number,omitempty"`
	Value  int64  `yaml:"value"`
}

// FunctionDef describes a reflected method and its parameters.
type FunctionDef struct {
	Name   string        `yaml:"name"`
	Params []PropertyDef `yaml:"params,omitempty"`
}

// PropertyDef describes one reflected field or parameter.
type PropertyDef struct {
	Name   string   `yaml:"name"`
	Number uint32   `yaml:"number,omitempty"`
	Kind   string   `yaml:"kind"`
	Size   int32    `yaml:"size"`
	Dim    int32    `yaml:"dim,omitempty"` // defaults to 1
	Offset int32    `yaml:"offset"`
	Flags  []string `yaml:"flags,omitempty"` // parm, out, return, const

	Struct string       `yaml:"struct,omitempty"` // "<package>.<name>" reference
	Enum   string       `yaml:"enum,omitempty"`   // "<package>.<name>" reference
	Inner  *PropertyDef `yaml:"inner,omitempty"`
	Key    *PropertyDef `yaml:"key,omitempty"`
	Value  *PropertyDef `yaml:"value,omitempty"`

	FieldSize  uint8 `yaml:"field_size,omitempty"`
	ByteOffset uint8 `yaml:"byte_offset,omitempty"`
	ByteMask   uint8 `yaml:"byte_mask,omitempty"` // defaults to 0xFF for bools
}

var propertyKinds = map[string]meta.PropertyKind{
	"bool":               meta.KindBool,
	"i8":                 meta.KindInt8,
	"i16":                meta.KindInt16,
	"i32":                meta.KindInt32,
	"i64":                meta.KindInt64,
	"u8":                 meta.KindUInt8,
	"u16":                meta.KindUInt16,
	"u32":                meta.KindUInt32,
	"u64":                meta.KindUInt64,
	"f32":                meta.KindFloat,
	"f64":                meta.KindDouble,
	"enum":               meta.KindEnum,
	"struct":             meta.KindStruct,
	"object":             meta.KindObject,
	"class":              meta.KindClassRef,
	"weak_object":        meta.KindWeakObject,
	"lazy_object":        meta.KindLazyObject,
	"soft_object":        meta.KindSoftObject,
	"interface":          meta.KindInterface,
	"name":               meta.KindName,
	"string":             meta.KindString,
	"text":               meta.KindText,
	"array":              meta.KindArray,
	"set":                meta.KindSet,
	"map":                meta.KindMap,
	"delegate":           meta.KindDelegate,
	"multicast_delegate": meta.KindMulticastDelegate,
}

var paramFlags = map[string]meta.ParamFlags{
	"parm":   meta.Parm,
	"out":    meta.OutParm,
	"return": meta.ReturnParm,
	"const":  meta.ConstParm,
}

// Load reads and resolves a snapshot file.
func Load(path string) (*meta.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return Parse(data)
}

// Parse decodes a snapshot document and resolves it into a registry.
func Parse(data []byte) (*meta.Registry, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	r := &resolver{
		packages: make(map[string]*meta.Package, len(file.Packages)),
		structs:  make(map[string]*meta.Struct),
		enums:    make(map[string]*meta.Enum),
	}

	for _, path := range file.Packages {
		if _, dup := r.packages[path]; dup {
			return nil, fmt.Errorf("duplicate package %q", path)
		}
		r.packages[path] = meta.NewPackage(path)
	}

	// First pass: declare every struct and enum so references resolve
	// regardless of declaration order.
	reg := &meta.Registry{Objects: make([]meta.Object, 0, len(file.Objects))}
	for i, def := range file.Objects {
		switch {
		case def.Struct != nil && def.Enum != nil:
			return nil, fmt.Errorf("object %d: both struct and enum set", i)
		case def.Struct != nil:
			s, err := r.declareStruct(def.Struct)
			if err != nil {
				return nil, fmt.Errorf("object %d: %w", i, err)
			}
			reg.Objects = append(reg.Objects, s)
		case def.Enum != nil:
			e, err := r.declareEnum(def.Enum)
			if err != nil {
				return nil, fmt.Errorf("object %d: %w", i, err)
			}
			reg.Objects = append(reg.Objects, e)
		default:
			return nil, fmt.Errorf("object %d: neither struct nor enum set", i)
		}
	}

	// Second pass: resolve supers, property type references, and parameters.
	for _, def := range file.Objects {
		if def.Struct == nil {
			continue
		}
		if err := r.resolveStruct(def.Struct); err != nil {
			return nil, fmt.Errorf("struct %s: %w", def.Struct.Name, err)
		}
	}

	return reg, nil
}

type resolver struct {
	packages map[string]*meta.Package
	structs  map[string]*meta.Struct
	enums    map[string]*meta.Enum
}

func (r *resolver) lookupPackage(path string) (*meta.Package, error) {
	pkg, ok := r.packages[path]
	if !ok {
		return nil, fmt.Errorf("unknown package %q", path)
	}
	return pkg, nil
}

func (r *resolver) declareStruct(def *StructDef) (*meta.Struct, error) {
	pkg, err := r.lookupPackage(def.Package)
	if err != nil {
		return nil, err
	}

	key := def.Package + "." + def.Name
	if _, dup := r.structs[key]; dup {
		return nil, fmt.Errorf("duplicate struct %q", key)
	}

	s := &meta.Struct{
		ObjectBase: meta.ObjectBase{
			Name:    meta.Name{Text: def.Name, Number: def.Number},
			Package: pkg,
		},
		IsClass:            def.Class,
		BlueprintGenerated: def.Blueprint,
		PropertiesSize:     def.Size,
		MinAlignment:       def.Align,
	}
	r.structs[key] = s
	return s, nil
}

func (r *resolver) declareEnum(def *EnumDef) (*meta.Enum, error) {
	pkg, err := r.lookupPackage(def.Package)
	if err != nil {
		return nil, err
	}

	key := def.Package + "." + def.Name
	if _, dup := r.enums[key]; dup {
		return nil, fmt.Errorf("duplicate enum %q", key)
	}

	e := &meta.Enum{
		ObjectBase: meta.ObjectBase{
			Name:    meta.Name{Text: def.Name},
			Package: pkg,
		},
		Variants: make([]meta.EnumVariant, 0, len(def.Variants)),
	}
	for _, v := range def.Variants {
		e.Variants = append(e.Variants, meta.EnumVariant{
			Name:  meta.Name{Text: v.Name, Number: v.Number},
			Value: v.Value,
		})
	}
	r.enums[key] = e
	return e, nil
}

func (r *resolver) resolveStruct(def *StructDef) error {
	s := r.structs[def.Package+"."+def.Name]

	if def.Super != "" {
		super, ok := r.structs[def.Super]
		if !ok {
			return fmt.Errorf("unknown super %q", def.Super)
		}
		s.Super = super
	}

	for i := range def.Properties {
		prop, err := r.resolveProperty(&def.Properties[i])
		if err != nil {
			return fmt.Errorf("property %s: %w", def.Properties[i].Name, err)
		}
		s.Properties = append(s.Properties, prop)
	}

	for _, fdef := range def.Functions {
		fn := &meta.Function{Name: meta.Name{Text: fdef.Name}}
		for i := range fdef.Params {
			prop, err := r.resolveProperty(&fdef.Params[i])
			if err != nil {
				return fmt.Errorf("function %s, parameter %s: %w", fdef.Name, fdef.Params[i].Name, err)
			}
			fn.Params = append(fn.Params, prop)
		}
		s.Functions = append(s.Functions, fn)
	}

	return nil
}

func (r *resolver) resolveProperty(def *PropertyDef) (*meta.Property, error) {
	kind, ok := propertyKinds[def.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown property kind %q", def.Kind)
	}

	prop := &meta.Property{
		Name:        meta.Name{Text: def.Name, Number: def.Number},
		Kind:        kind,
		ElementSize: def.Size,
		ArrayDim:    def.Dim,
		Offset:      def.Offset,
		FieldSize:   def.FieldSize,
		ByteOffset:  def.ByteOffset,
		ByteMask:    def.ByteMask,
	}
	if prop.ArrayDim == 0 {
		prop.ArrayDim = 1
	}
	if kind == meta.KindBool {
		// Native bools fill their storage word.
		if prop.ByteMask == 0 {
			prop.ByteMask = 0xFF
		}
		if prop.FieldSize == 0 {
			prop.FieldSize = uint8(prop.ElementSize)
		}
	}

	for _, f := range def.Flags {
		flag, ok := paramFlags[f]
		if !ok {
			return nil, fmt.Errorf("unknown parameter flag %q", f)
		}
		prop.Flags |= flag
	}

	if def.Struct != "" {
		target, ok := r.structs[def.Struct]
		if !ok {
			return nil, fmt.Errorf("unknown struct reference %q", def.Struct)
		}
		prop.Struct = target
	}
	if def.Enum != "" {
		target, ok := r.enums[def.Enum]
		if !ok {
			return nil, fmt.Errorf("unknown enum reference %q", def.Enum)
		}
		prop.Enum = target
	}

	var err error
	if def.Inner != nil {
		if prop.Inner, err = r.resolveProperty(def.Inner); err != nil {
			return nil, err
		}
	}
	if def.Key != nil {
		if prop.Key, err = r.resolveProperty(def.Key); err != nil {
			return nil, err
		}
	}
	if def.Value != nil {
		if prop.Value, err = r.resolveProperty(def.Value); err != nil {
			return nil, err
		}
	}

	return prop, nil
}
