package rust

import (
	"fmt"
	"strings"

	"github.com/rlayout/sdkgen/internal/codegen/meta"
)

// cleanedName is a host name mapped to a valid Rust identifier, along with
// the number of invalid segments that were joined while cleaning.
type cleanedName struct {
	ident    string
	replaced int
}

// cleanName maps a host name to a valid Rust identifier. Names starting
// with an ASCII digit get a "Func_" prefix; runs of bytes that are neither
// ASCII alphanumeric nor underscore collapse into single underscores; a
// positive host suffix n appends "_<n-1>". Cleaning an already-clean name
// returns it unchanged.
func cleanName(name meta.Name) cleanedName {
	var b strings.Builder
	text := name.Text

	if len(text) > 0 && text[0] >= '0' && text[0] <= '9' {
		b.WriteString("Func_")
	}

	pieces := 0
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		if pieces > 0 {
			b.WriteByte('_')
		}
		b.WriteString(text[start:end])
		pieces++
		start = -1
	}
	for i := 0; i < len(text); i++ {
		if isIdentByte(text[i]) {
			if start < 0 {
				start = i
			}
		} else {
			flush(i)
		}
	}
	flush(len(text))

	if name.Number > 0 {
		fmt.Fprintf(&b, "_%d", name.Number-1)
	}

	// A separator-free name joined one piece; the replaced count saturates
	// at zero rather than underflowing.
	replaced := 0
	if pieces > 1 {
		replaced = pieces - 1
	}

	return cleanedName{ident: b.String(), replaced: replaced}
}

func isIdentByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// cleanVariantText prepares an enum variant's text for cleaning: a trailing
// "::"-style qualifier is stripped down to its final segment, and the
// reserved identifier "Self" is rewritten.
func cleanVariantText(text string) string {
	if i := strings.LastIndexByte(text, ':'); i >= 0 {
		text = text[i+1:]
	}
	if text == "Self" {
		return "SelfVariant"
	}
	return text
}
