package table

import (
	"fmt"
	"strings"

	"github.com/arloliu/mime2ext/errs"
	"github.com/arloliu/mime2ext/section"
)

// Validate checks every invariant Lookup relies on:
//   - packed data is ASCII and at most 65535 bytes
//   - group types are non-empty, distinct, at most 255 bytes, without '/'
//   - entries stay inside the packed data
//   - subtypes are non-empty, without '/' or ';', strictly ascending per group
//   - extensions are non-empty, without '/' or '.'
//
// Lookup itself never validates; Validate is meant for load and build time.
func (t *Table) Validate() error {
	if len(t.data) > section.MaxDataSize {
		return fmt.Errorf("%w: %d bytes", errs.ErrDataTooLarge, len(t.data))
	}
	if i := nonASCIIIndex(t.data); i >= 0 {
		return fmt.Errorf("%w: packed data byte %d", errs.ErrNonASCII, i)
	}

	seen := make(map[string]struct{}, len(t.groups))
	for _, g := range t.groups {
		if err := validateType(g.Type); err != nil {
			return err
		}
		if _, ok := seen[g.Type]; ok {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateType, g.Type)
		}
		seen[g.Type] = struct{}{}

		if err := t.validateEntries(g); err != nil {
			return err
		}
	}

	return nil
}

func (t *Table) validateEntries(g Group) error {
	prev := ""
	for i, e := range g.Entries {
		if e.end() > len(t.data) {
			return fmt.Errorf("%w: %s entry %d ends at %d, data is %d bytes",
				errs.ErrEntryOutOfRange, g.Type, i, e.end(), len(t.data))
		}

		subtype, ext := e.Subtype(t.data), e.Extension(t.data)
		if subtype == "" {
			return fmt.Errorf("%w: %s entry %d", errs.ErrEmptySubtype, g.Type, i)
		}
		if strings.ContainsAny(subtype, "/;") {
			return fmt.Errorf("%w: %s/%s", errs.ErrInvalidMimeType, g.Type, subtype)
		}
		if ext == "" {
			return fmt.Errorf("%w: %s/%s", errs.ErrEmptyExtension, g.Type, subtype)
		}
		if strings.ContainsAny(ext, "/.") {
			return fmt.Errorf("%w: %s/%s has %q", errs.ErrInvalidExtension, g.Type, subtype, ext)
		}

		if i > 0 {
			switch c := strings.Compare(prev, subtype); {
			case c == 0:
				return fmt.Errorf("%w: %s/%s", errs.ErrDuplicateSubtype, g.Type, subtype)
			case c > 0:
				return fmt.Errorf("%w: %s/%s after %s/%s", errs.ErrUnsortedEntries, g.Type, subtype, g.Type, prev)
			}
		}
		prev = subtype
	}

	return nil
}

func validateType(typ string) error {
	switch {
	case typ == "":
		return errs.ErrEmptyType
	case len(typ) > section.MaxFieldLen:
		return fmt.Errorf("%w: type %q", errs.ErrFieldTooLong, typ)
	case strings.IndexByte(typ, '/') >= 0:
		return fmt.Errorf("%w: type %q", errs.ErrInvalidMimeType, typ)
	case nonASCIIIndex(typ) >= 0:
		return fmt.Errorf("%w: type %q", errs.ErrNonASCII, typ)
	}

	return nil
}

func nonASCIIIndex(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return i
		}
	}

	return -1
}
