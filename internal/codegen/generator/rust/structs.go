package rust

import (
	"fmt"
	"io"

	"github.com/rlayout/sdkgen/internal/codegen/meta"
)

// structGen emits one struct or class as a #[repr(C)] Rust struct whose
// byte layout matches the host's. It walks the property list in declaration
// order, keeping a running offset and inserting pad fields wherever the
// host layout leaves gaps. Bool properties that share storage are gathered
// into bitfield bags and surfaced through accessor methods after the
// struct body.
type structGen struct {
	s       *meta.Struct
	pkg     *meta.Package
	out     io.Writer
	printer propertyPrinter

	offset             int32
	bitfields          [][]*meta.Property
	lastBitfieldOffset int32
	inBitfield         bool
	inherited          string
}

func newStructGen(s *meta.Struct, pkg *meta.Package, out io.Writer, blueprint bool) *structGen {
	return &structGen{
		s:       s,
		pkg:     pkg,
		out:     out,
		printer: propertyPrinter{pkg: pkg, blueprint: blueprint},
	}
}

func (sg *structGen) generate() error {
	// Marker types carry no storage and nothing can embed them usefully.
	if sg.s.PropertiesSize == 0 {
		return nil
	}

	if err := sg.writeHeader(); err != nil {
		return err
	}
	for _, prop := range sg.s.Properties {
		if err := sg.processProperty(prop); err != nil {
			return fmt.Errorf("property %q: %w", prop.Name.Text, err)
		}
	}
	if err := sg.addTailPadding(); err != nil {
		return err
	}
	if _, err := fmt.Fprint(sg.out, "}\n\n"); err != nil {
		return err
	}

	if err := sg.addBitfieldAccessors(); err != nil {
		return err
	}
	if err := sg.addDerefImpls(); err != nil {
		return err
	}
	return sg.addFunctions()
}

func (sg *structGen) writeHeader() error {
	align := sg.s.MinAlignment
	if align < 1 {
		align = 1
	}

	if sg.s.Super == nil {
		_, err := fmt.Fprintf(sg.out, "// %s is %d bytes.\n#[repr(C, align(%d))]\npub struct %s {\n",
			sg.s.FullName(), sg.s.PropertiesSize, align, sg.s.Name.Text)
		return err
	}

	base := sg.printer.qualifyStruct(sg.s.Super)
	if _, err := fmt.Fprintf(sg.out, "// %s is %d bytes (%d inherited).\n#[repr(C, align(%d))]\npub struct %s {\n",
		sg.s.FullName(), sg.s.PropertiesSize, sg.s.Super.PropertiesSize, align, sg.s.Name.Text); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(sg.out, "    // offset: 0, size: %d\n    base: %s,\n\n",
		sg.s.Super.PropertiesSize, base); err != nil {
		return err
	}
	sg.offset = sg.s.Super.PropertiesSize
	sg.inherited = base
	return nil
}

func (sg *structGen) processProperty(prop *meta.Property) error {
	if prop.Size() == 0 {
		return ErrZeroSizedField
	}
	if prop.IsBitfield() {
		return sg.processBoolProperty(prop)
	}
	sg.inBitfield = false

	emit, err := sg.alignTo(prop.Offset, prop.Name.Text)
	if err != nil || !emit {
		return err
	}

	typeText, err := sg.printer.typeText(prop)
	if err != nil {
		return err
	}

	cleaned := cleanName(prop.Name)
	note := ""
	if sg.printer.blueprint && cleaned.replaced > 1 {
		note = fmt.Sprintf(" // NOTE: Property's original name is %q. Replaced %d invalid characters.",
			prop.Name.Text, cleaned.replaced)
	}
	if _, err := fmt.Fprintf(sg.out, "    // offset: %d, size: %d\n    pub %s: %s,%s\n\n",
		prop.Offset, prop.Size(), cleaned.ident, typeText, note); err != nil {
		return err
	}
	sg.offset = prop.Offset + prop.Size()
	return nil
}

// processBoolProperty handles a masked bool. A property at the offset of
// the currently open bag joins it; any other offset opens a new storage
// field of the property's declared width.
func (sg *structGen) processBoolProperty(prop *meta.Property) error {
	if sg.inBitfield && prop.Offset == sg.lastBitfieldOffset {
		if len(sg.bitfields) == 0 {
			return ErrLastBitfield
		}
		last := len(sg.bitfields) - 1
		if len(sg.bitfields[last]) >= maxBitfieldMembers {
			return ErrBitfieldFull
		}
		sg.bitfields[last] = append(sg.bitfields[last], prop)
		return nil
	}

	emit, err := sg.alignTo(prop.Offset, prop.Name.Text)
	if err != nil || !emit {
		return err
	}

	var storage string
	switch prop.FieldSize {
	case 1:
		storage = "u8"
	case 2:
		storage = "u16"
	case 4:
		storage = "u32"
	case 8:
		storage = "u64"
	default:
		return &BadBitfieldSizeError{Size: prop.FieldSize}
	}

	if len(sg.bitfields) >= maxBitfields {
		return ErrMaxBitfields
	}
	if _, err := fmt.Fprintf(sg.out, "    // offset: %d, size: %d\n    bitfield_at_%d: %s,\n\n",
		prop.Offset, prop.FieldSize, prop.Offset, storage); err != nil {
		return err
	}
	sg.bitfields = append(sg.bitfields, []*meta.Property{prop})
	sg.lastBitfieldOffset = prop.Offset
	sg.inBitfield = true
	sg.offset = prop.Offset + int32(prop.FieldSize)
	return nil
}

// alignTo reconciles the running offset with the property's declared one.
// A gap below the declared offset is padded. A declared offset behind the
// running offset means the host metadata disagrees with the layout built so
// far; the field is dropped with a WARNING comment and emit is false.
func (sg *structGen) alignTo(target int32, name string) (emit bool, err error) {
	switch {
	case target > sg.offset:
		if err := sg.addPadField(target - sg.offset); err != nil {
			return false, err
		}
		sg.offset = target
	case target < sg.offset:
		_, err := fmt.Fprintf(sg.out,
			"    // WARNING: Property \"%s\" thinks its offset is %d. We think its offset is %d.\n\n",
			name, target, sg.offset)
		return false, err
	}
	return true, nil
}

func (sg *structGen) addPadField(size int32) error {
	_, err := fmt.Fprintf(sg.out, "    // offset: %d, size: %d\n    pad_at_%d: [u8; %d],\n\n",
		sg.offset, size, sg.offset, size)
	return err
}

func (sg *structGen) addTailPadding() error {
	switch {
	case sg.offset < sg.s.PropertiesSize:
		return sg.addPadField(sg.s.PropertiesSize - sg.offset)
	case sg.offset > sg.s.PropertiesSize:
		_, err := fmt.Fprintf(sg.out,
			"    // WARNING: This structure thinks its size is %d. We think its size is %d.\n",
			sg.s.PropertiesSize, sg.offset)
		return err
	}
	return nil
}

func (sg *structGen) addBitfieldAccessors() error {
	if len(sg.bitfields) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(sg.out, "impl %s {\n", sg.s.Name.Text); err != nil {
		return err
	}
	for _, bag := range sg.bitfields {
		for _, prop := range bag {
			mask := uint64(prop.ByteMask) << (8 * uint(prop.ByteOffset))
			data := bitfieldAccessorData{
				Name:   cleanName(prop.Name).ident,
				Offset: prop.Offset,
				Mask:   fmt.Sprintf("%#x", mask),
			}
			if err := bitfieldAccessorTmpl.Execute(sg.out, data); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprint(sg.out, "}\n\n")
	return err
}

func (sg *structGen) addDerefImpls() error {
	if sg.inherited == "" {
		return nil
	}
	return derefImplTmpl.Execute(sg.out, derefImplData{
		Child:  sg.s.Name.Text,
		Parent: sg.inherited,
	})
}

func (sg *structGen) addFunctions() error {
	if len(sg.s.Functions) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(sg.out, "impl %s {\n", sg.s.Name.Text); err != nil {
		return err
	}
	for _, fn := range sg.s.Functions {
		if err := sg.processFunction(fn); err != nil {
			return fmt.Errorf("function %q: %w", fn.Name.Text, err)
		}
	}
	_, err := fmt.Fprint(sg.out, "}\n\n")
	return err
}
