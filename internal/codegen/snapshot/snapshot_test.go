package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlayout/sdkgen/internal/codegen/meta"
)

const sampleSnapshot = `
packages:
  - /Script/CoreUObject
  - /Script/Engine
objects:
  - enum:
      name: ENetRole
      package: /Script/Engine
      variants:
        - {name: ROLE_None, value: 0}
        - {name: ROLE_Authority, value: 3}
        - {name: ROLE_MAX, value: 4}
  - struct:
      name: Object
      package: /Script/CoreUObject
      class: true
      size: 40
      align: 8
  - struct:
      name: Actor
      package: /Script/Engine
      class: true
      super: /Script/CoreUObject.Object
      size: 64
      align: 8
      properties:
        - {name: bHidden, kind: bool, size: 1, offset: 40, field_size: 1, byte_mask: 0x01}
        - {name: Owner, kind: object, size: 8, offset: 48, struct: /Script/Engine.Actor}
        - {name: Role, kind: enum, size: 1, offset: 56, enum: /Script/Engine.ENetRole}
      functions:
        - name: SetActorScale
          params:
            - {name: Scale, kind: f32, size: 4, offset: 0, flags: [parm]}
            - {name: ReturnValue, kind: bool, size: 1, offset: 4, flags: [parm, return]}
`

func TestParseResolvesGraph(t *testing.T) {
	reg, err := Parse([]byte(sampleSnapshot))
	require.NoError(t, err)
	require.Len(t, reg.Objects, 3)

	e, ok := reg.Objects[0].(*meta.Enum)
	require.True(t, ok)
	assert.Equal(t, "ENetRole", e.Name.Text)
	assert.Equal(t, "Engine", e.Package.ShortName())
	require.Len(t, e.Variants, 3)
	assert.Equal(t, int64(3), e.Variants[1].Value)

	obj, ok := reg.Objects[1].(*meta.Struct)
	require.True(t, ok)
	assert.True(t, obj.IsClass)
	assert.Nil(t, obj.Super)

	actor, ok := reg.Objects[2].(*meta.Struct)
	require.True(t, ok)
	require.NotNil(t, actor.Super)
	assert.Same(t, obj, actor.Super)
	assert.Equal(t, meta.ScratchSentinel, actor.Package.Scratch)

	require.Len(t, actor.Properties, 3)
	hidden := actor.Properties[0]
	assert.Equal(t, meta.KindBool, hidden.Kind)
	assert.True(t, hidden.IsBitfield())
	assert.Equal(t, uint8(0x01), hidden.ByteMask)

	owner := actor.Properties[1]
	assert.Equal(t, meta.KindObject, owner.Kind)
	assert.Same(t, actor, owner.Struct)
	assert.Equal(t, int32(1), owner.ArrayDim, "dim defaults to 1")

	role := actor.Properties[2]
	assert.Same(t, e, role.Enum)

	require.Len(t, actor.Functions, 1)
	fn := actor.Functions[0]
	require.Len(t, fn.Params, 2)
	assert.True(t, fn.Params[0].Flags.Has(meta.Parm))
	assert.True(t, fn.Params[1].Flags.Has(meta.ReturnParm))
}

func TestParseNativeBoolDefaults(t *testing.T) {
	reg, err := Parse([]byte(`
packages: [/Script/Engine]
objects:
  - struct:
      name: S
      package: /Script/Engine
      size: 8
      align: 1
      properties:
        - {name: bPlain, kind: bool, size: 1, offset: 0}
`))
	require.NoError(t, err)

	s := reg.Objects[0].(*meta.Struct)
	p := s.Properties[0]
	assert.Equal(t, uint8(0xFF), p.ByteMask)
	assert.Equal(t, uint8(1), p.FieldSize)
	assert.False(t, p.IsBitfield())
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "unknown package",
			doc: `
objects:
  - struct: {name: S, package: /Script/Missing, size: 8, align: 1}
`,
			want: "unknown package",
		},
		{
			name: "unknown kind",
			doc: `
packages: [/Script/Engine]
objects:
  - struct:
      name: S
      package: /Script/Engine
      size: 8
      align: 1
      properties:
        - {name: X, kind: quaternion, size: 16, offset: 0}
`,
			want: "unknown property kind",
		},
		{
			name: "unknown super",
			doc: `
packages: [/Script/Engine]
objects:
  - struct: {name: S, package: /Script/Engine, super: /Script/Engine.Missing, size: 8, align: 1}
`,
			want: "unknown super",
		},
		{
			name: "empty object entry",
			doc: `
packages: [/Script/Engine]
objects:
  - {}
`,
			want: "neither struct nor enum",
		},
		{
			name: "duplicate struct",
			doc: `
packages: [/Script/Engine]
objects:
  - struct: {name: S, package: /Script/Engine, size: 8, align: 1}
  - struct: {name: S, package: /Script/Engine, size: 8, align: 1}
`,
			want: "duplicate struct",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParsePreservesObjectOrder(t *testing.T) {
	reg, err := Parse([]byte(`
packages: [/Script/Engine]
objects:
  - enum: {name: EOne, package: /Script/Engine, variants: [{name: A, value: 0}]}
  - struct: {name: Two, package: /Script/Engine, size: 4, align: 4}
  - enum: {name: EThree, package: /Script/Engine, variants: [{name: B, value: 1}]}
`))
	require.NoError(t, err)
	require.Len(t, reg.Objects, 3)
	assert.Equal(t, "EOne", reg.Objects[0].ObjectName().Text)
	assert.Equal(t, "Two", reg.Objects[1].ObjectName().Text)
	assert.Equal(t, "EThree", reg.Objects[2].ObjectName().Text)
}
