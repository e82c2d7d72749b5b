package rust

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rlayout/sdkgen/internal/codegen/meta"
)

func TestCleanName(t *testing.T) {
	cases := []struct {
		name     string
		in       meta.Name
		ident    string
		replaced int
	}{
		{"clean name unchanged", meta.Name{Text: "Velocity"}, "Velocity", 0},
		{"underscores kept", meta.Name{Text: "Net_Role_2x"}, "Net_Role_2x", 0},
		{"leading digit prefixed", meta.Name{Text: "2ndWeapon"}, "Func_2ndWeapon", 0},
		{"single separator", meta.Name{Text: "Foo Bar"}, "Foo_Bar", 1},
		{"separator run collapsed", meta.Name{Text: "Foo - Bar"}, "Foo_Bar", 1},
		{"multiple separators counted", meta.Name{Text: "A.B.C"}, "A_B_C", 2},
		{"suffix appended", meta.Name{Text: "Item", Number: 3}, "Item_2", 0},
		{"suffix one is zero", meta.Name{Text: "Item", Number: 1}, "Item_0", 0},
		{"suffix after cleaning", meta.Name{Text: "Bad Name", Number: 2}, "Bad_Name_1", 1},
		{"empty text", meta.Name{Text: ""}, "", 0},
		{"all separators", meta.Name{Text: "???"}, "", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cleanName(tc.in)
			assert.Equal(t, tc.ident, got.ident)
			assert.Equal(t, tc.replaced, got.replaced)
		})
	}
}

func TestCleanNameIdempotent(t *testing.T) {
	// Cleaning an already-clean name yields the identical string.
	for _, text := range []string{"Velocity", "Net_Role", "a1_b2_c3", "_private"} {
		once := cleanName(meta.Name{Text: text})
		twice := cleanName(meta.Name{Text: once.ident})
		assert.Equal(t, text, once.ident)
		assert.Equal(t, once.ident, twice.ident)
		assert.Zero(t, twice.replaced)
	}
}

func TestCleanVariantText(t *testing.T) {
	assert.Equal(t, "North", cleanVariantText("Up::North"))
	assert.Equal(t, "North", cleanVariantText("Dir::Up::North"))
	assert.Equal(t, "SelfVariant", cleanVariantText("Self"))
	assert.Equal(t, "SelfVariant", cleanVariantText("Kind::Self"))
	assert.Equal(t, "Plain", cleanVariantText("Plain"))
	assert.Equal(t, "", cleanVariantText("Trailing:"))
}
