// Package meta models a snapshot of a host application's reflection
// registry: every reflected class, script-struct, enum, property, and
// function, with the size, alignment, offset, and flag metadata the host
// assigned to it.
//
// The registry is borrowed by a generation run and never mutated, with one
// exception: the per-package Scratch slot, which the generator uses as a
// registration cache and restores to ScratchSentinel on teardown.
package meta

import (
	"fmt"
	"strings"
)

// ScratchSentinel marks a package the current generation run has not
// registered yet.
const ScratchSentinel int32 = -1

// Name is a host name: text plus a small numeric suffix. The host stores
// 1-based suffixes; Number == 0 means "unsuffixed".
type Name struct {
	Text   string
	Number uint32
}

// String renders the name the way the host displays it: the text, with
// "_<n-1>" appended when the 1-based suffix is set.
func (n Name) String() string {
	if n.Number > 0 {
		return fmt.Sprintf("%s_%d", n.Text, n.Number-1)
	}
	return n.Text
}

// Object is anything that can appear in the registry's global object array.
type Object interface {
	ObjectName() Name
	OwningPackage() *Package
}

// ObjectBase carries the fields every reflected object shares.
type ObjectBase struct {
	Name    Name
	Package *Package
}

func (o *ObjectBase) ObjectName() Name        { return o.Name }
func (o *ObjectBase) OwningPackage() *Package { return o.Package }

// FullName returns "<package short name>.<name>".
func (o *ObjectBase) FullName() string {
	if o.Package == nil {
		return o.Name.String()
	}
	return o.Package.ShortName() + "." + o.Name.String()
}

// Package is a host namespace grouping related types.
type Package struct {
	Name Name

	// Scratch is the generator's per-run cache slot; it holds the package's
	// index in the run's registration sequence. ScratchSentinel means the
	// package has not been seen by the current run.
	Scratch int32
}

// NewPackage returns a package with its scratch slot at the sentinel.
func NewPackage(path string) *Package {
	return &Package{Name: Name{Text: path}, Scratch: ScratchSentinel}
}

// ShortName returns the final path segment of the package name, e.g.
// "/Script/Engine" -> "Engine".
func (p *Package) ShortName() string {
	if i := strings.LastIndexByte(p.Name.Text, '/'); i >= 0 {
		return p.Name.Text[i+1:]
	}
	return p.Name.Text
}

// Struct describes a reflected class or script-struct.
type Struct struct {
	ObjectBase

	// IsClass distinguishes a class (identity, inheritance, methods) from a
	// value-type script-struct.
	IsClass bool

	// BlueprintGenerated flags a class authored in the host's visual
	// scripting system. Such classes are emitted into a shared output file.
	BlueprintGenerated bool

	Super          *Struct
	PropertiesSize int32
	MinAlignment   int32
	Properties     []*Property // declaration order
	Functions      []*Function // declaration order
}

// Function is a reflected method. Its parameters are properties classified
// by their parameter flags.
type Function struct {
	Name   Name
	Params []*Property // declaration order
}

// EnumVariant is one (name, discriminant) pair of a reflected enumeration.
type EnumVariant struct {
	Name  Name
	Value int64
}

// Enum is a reflected enumeration with its ordered variant list.
type Enum struct {
	ObjectBase
	Variants []EnumVariant
}

// PropertyKind identifies the host type class a property belongs to.
type PropertyKind uint8

const (
	KindBool PropertyKind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUInt8
	KindUInt16
	KindUInt32
	KindUInt64
	KindFloat
	KindDouble
	KindEnum
	KindStruct
	KindObject
	KindClassRef
	KindWeakObject
	KindLazyObject
	KindSoftObject
	KindInterface
	KindName
	KindString
	KindText
	KindArray
	KindSet
	KindMap
	KindDelegate
	KindMulticastDelegate
)

// ParamFlags classify a function parameter.
type ParamFlags uint32

const (
	Parm ParamFlags = 1 << iota
	OutParm
	ReturnParm
	ConstParm
)

// Has reports whether all bits of flag are set.
func (f ParamFlags) Has(flag ParamFlags) bool { return f&flag == flag }

// Property describes one reflected field or function parameter.
type Property struct {
	Name        Name
	Kind        PropertyKind
	Flags       ParamFlags
	ElementSize int32
	ArrayDim    int32
	Offset      int32

	// Referenced types, populated per Kind.
	Struct *Struct   // struct value, object/class pointer, interface target
	Enum   *Enum     // enum value
	Inner  *Property // array/set element
	Key    *Property // map key
	Value  *Property // map value

	// Bool layout. A native bool fills its storage and carries ByteMask
	// 0xFF; a bitfield bool carries a single-bit mask plus the size of the
	// storage word and the byte offset within it.
	FieldSize  uint8
	ByteOffset uint8
	ByteMask   uint8
}

// Size returns the property's total footprint in bytes.
func (p *Property) Size() int32 { return p.ElementSize * p.ArrayDim }

// IsBitfield reports whether a bool property shares a storage word with
// other bools.
func (p *Property) IsBitfield() bool {
	return p.Kind == KindBool && p.ByteMask != 0xFF
}

// Registry is a snapshot of the host's global object array, in the host's
// iteration order. Entries are *Struct or *Enum; nil entries are tolerated
// and skipped by consumers.
type Registry struct {
	Objects []Object
}
