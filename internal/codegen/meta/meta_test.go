package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameString(t *testing.T) {
	assert.Equal(t, "Velocity", Name{Text: "Velocity"}.String())
	// Host suffixes are 1-based; 3 displays as _2.
	assert.Equal(t, "Velocity_2", Name{Text: "Velocity", Number: 3}.String())
	assert.Equal(t, "Velocity_0", Name{Text: "Velocity", Number: 1}.String())
}

func TestPackageShortName(t *testing.T) {
	assert.Equal(t, "Engine", NewPackage("/Script/Engine").ShortName())
	assert.Equal(t, "CoreUObject", NewPackage("/Script/CoreUObject").ShortName())
	assert.Equal(t, "Engine", NewPackage("Engine").ShortName())
}

func TestNewPackageScratchSentinel(t *testing.T) {
	p := NewPackage("/Script/Engine")
	assert.Equal(t, ScratchSentinel, p.Scratch)
}

func TestFullName(t *testing.T) {
	pkg := NewPackage("/Script/Engine")
	s := &Struct{ObjectBase: ObjectBase{Name: Name{Text: "Actor"}, Package: pkg}}
	assert.Equal(t, "Engine.Actor", s.FullName())

	orphan := &Enum{ObjectBase: ObjectBase{Name: Name{Text: "EKind"}}}
	assert.Equal(t, "EKind", orphan.FullName())
}

func TestPropertySize(t *testing.T) {
	p := &Property{ElementSize: 4, ArrayDim: 8}
	assert.Equal(t, int32(32), p.Size())
}

func TestIsBitfield(t *testing.T) {
	native := &Property{Kind: KindBool, ByteMask: 0xFF}
	assert.False(t, native.IsBitfield())

	packed := &Property{Kind: KindBool, ByteMask: 0x04}
	assert.True(t, packed.IsBitfield())

	notBool := &Property{Kind: KindInt32, ByteMask: 0x04}
	assert.False(t, notBool.IsBitfield())
}

func TestParamFlagsHas(t *testing.T) {
	f := Parm | OutParm
	assert.True(t, f.Has(Parm))
	assert.True(t, f.Has(OutParm))
	assert.False(t, f.Has(ConstParm))
	assert.True(t, f.Has(Parm|OutParm))
}
