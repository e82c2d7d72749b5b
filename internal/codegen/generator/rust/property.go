package rust

import (
	"fmt"

	"github.com/rlayout/sdkgen/internal/codegen/meta"
)

// propertyPrinter renders the Rust type text for a property as seen from
// one emission context: a package file, or the shared blueprint file.
type propertyPrinter struct {
	pkg       *meta.Package
	blueprint bool
}

// typeText renders the full type of a property, wrapping fixed-size array
// properties as [T; dim].
func (p propertyPrinter) typeText(prop *meta.Property) (string, error) {
	element, err := p.elementText(prop)
	if err != nil {
		return "", err
	}
	if prop.ArrayDim > 1 {
		return fmt.Sprintf("[%s; %d]", element, prop.ArrayDim), nil
	}
	return element, nil
}

// elementText renders the type of a single element of the property.
// Composite host containers (names, strings, dynamic arrays, sets, maps,
// delegates) are mirrored as opaque byte storage with the host category in
// a trailing comment; everything else maps onto a concrete Rust type.
func (p propertyPrinter) elementText(prop *meta.Property) (string, error) {
	switch prop.Kind {
	case meta.KindBool:
		return "bool", nil
	case meta.KindInt8:
		return "i8", nil
	case meta.KindInt16:
		return "i16", nil
	case meta.KindInt32:
		return "i32", nil
	case meta.KindInt64:
		return "i64", nil
	case meta.KindUInt8:
		return "u8", nil
	case meta.KindUInt16:
		return "u16", nil
	case meta.KindUInt32:
		return "u32", nil
	case meta.KindUInt64:
		return "u64", nil
	case meta.KindFloat:
		return "f32", nil
	case meta.KindDouble:
		return "f64", nil

	case meta.KindEnum:
		if prop.Enum == nil {
			return "", fmt.Errorf("enum property %q has no enum reference", prop.Name.Text)
		}
		return p.qualify(prop.Enum.Name, prop.Enum.Package, false), nil

	case meta.KindStruct:
		if prop.Struct == nil {
			return "", fmt.Errorf("struct property %q has no struct reference", prop.Name.Text)
		}
		return p.qualifyStruct(prop.Struct), nil

	case meta.KindObject, meta.KindClassRef:
		if prop.Struct == nil {
			return "*mut ()", nil
		}
		return "*mut " + p.qualifyStruct(prop.Struct), nil

	case meta.KindWeakObject:
		return p.opaqueRef(prop, "weak"), nil
	case meta.KindLazyObject:
		return p.opaqueRef(prop, "lazy"), nil
	case meta.KindSoftObject:
		return p.opaqueRef(prop, "soft"), nil
	case meta.KindInterface:
		return p.opaqueRef(prop, "interface"), nil

	case meta.KindName:
		return p.opaque(prop, "name"), nil
	case meta.KindString:
		return p.opaque(prop, "string"), nil
	case meta.KindText:
		return p.opaque(prop, "text"), nil
	case meta.KindDelegate:
		return p.opaque(prop, "delegate"), nil
	case meta.KindMulticastDelegate:
		return p.opaque(prop, "multicast delegate"), nil

	case meta.KindArray:
		return p.opaqueContainer(prop, "array", prop.Inner)
	case meta.KindSet:
		return p.opaqueContainer(prop, "set", prop.Inner)

	case meta.KindMap:
		if prop.Key == nil || prop.Value == nil {
			return "", fmt.Errorf("map property %q is missing a key or value property", prop.Name.Text)
		}
		key, err := p.typeText(prop.Key)
		if err != nil {
			return "", err
		}
		value, err := p.typeText(prop.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[u8; %d] /* map<%s, %s> */", prop.ElementSize, key, value), nil

	default:
		return "", fmt.Errorf("property %q has unknown kind %d", prop.Name.Text, prop.Kind)
	}
}

func (p propertyPrinter) opaque(prop *meta.Property, category string) string {
	return fmt.Sprintf("[u8; %d] /* %s */", prop.ElementSize, category)
}

func (p propertyPrinter) opaqueRef(prop *meta.Property, category string) string {
	target := "object"
	if prop.Struct != nil {
		target = p.qualifyStruct(prop.Struct)
	}
	return fmt.Sprintf("[u8; %d] /* %s %s */", prop.ElementSize, category, target)
}

func (p propertyPrinter) opaqueContainer(prop *meta.Property, category string, inner *meta.Property) (string, error) {
	if inner == nil {
		return "", fmt.Errorf("%s property %q has no inner property", category, prop.Name.Text)
	}
	element, err := p.typeText(inner)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("[u8; %d] /* %s<%s> */", prop.ElementSize, category, element), nil
}

// qualify renders a type name as seen from the printer's context. Same-file
// references stay bare; blueprint-generated types live in the shared
// blueprint module; everything else is addressed through its package module.
func (p propertyPrinter) qualify(name meta.Name, pkg *meta.Package, targetBlueprint bool) string {
	switch {
	case p.blueprint && targetBlueprint:
		return name.Text
	case targetBlueprint:
		return "crate::blueprint_generated::" + name.Text
	case !p.blueprint && pkg == p.pkg:
		return name.Text
	default:
		return "crate::" + pkg.ShortName() + "::" + name.Text
	}
}

func (p propertyPrinter) qualifyStruct(s *meta.Struct) string {
	return p.qualify(s.Name, s.Package, s.IsClass && s.BlueprintGenerated)
}
