package rust

import (
	"fmt"
	"io"
	"math"

	"github.com/rlayout/sdkgen/internal/codegen/meta"
)

// writeEnum emits one enum as a #[repr(transparent)] newtype over the
// narrowest unsigned integer that fits every non-sentinel variant value.
// Variants become associated constants so unknown in-memory values stay
// representable. Enums without variants are skipped.
func writeEnum(w io.Writer, e *meta.Enum) error {
	if len(e.Variants) == 0 {
		return nil
	}

	repr := enumRepresentation(e.Variants)

	if _, err := fmt.Fprintf(w, "// %s\n#[repr(transparent)]\npub struct %s(%s);\n\nimpl %s {\n",
		e.FullName(), e.Name.Text, repr, e.Name.Text); err != nil {
		return err
	}
	for _, v := range e.Variants {
		ident := cleanName(meta.Name{Text: cleanVariantText(v.Name.Text), Number: v.Name.Number}).ident
		if _, err := fmt.Fprintf(w, "    pub const %s: Self = Self(%d);\n", ident, v.Value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "}\n\n")
	return err
}

// enumRepresentation picks the storage width. Hosts append a synthetic
// bookkeeping variant named *_MAX after the real ones; it is still emitted
// as a constant but does not widen the representation.
func enumRepresentation(variants []meta.EnumVariant) string {
	var max int64
	for i, v := range variants {
		if i == len(variants)-1 && isSentinelVariant(v.Name.Text) {
			continue
		}
		if v.Value > max {
			max = v.Value
		}
	}
	switch {
	case max <= math.MaxUint8:
		return "u8"
	case max <= math.MaxUint32:
		return "u32"
	default:
		return "u64"
	}
}

func isSentinelVariant(text string) bool {
	text = cleanVariantText(text)
	n := len(text)
	return n >= 4 && (text[n-4:] == "_MAX" || text[n-4:] == "_Max")
}
