package builder

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/arloliu/mime2ext/errs"
	"github.com/arloliu/mime2ext/internal/options"
	"github.com/arloliu/mime2ext/section"
	"github.com/arloliu/mime2ext/table"
)

type pair struct {
	subtype   string
	extension string
}

// Build packs src into a lookup table.
//
// MIME types without extensions are dropped and only the first extension of
// each type is kept. The returned table satisfies every invariant checked by
// (*table.Table).Validate; any input that would break one is rejected with a
// sentinel error from package errs.
func Build(src Source, opts ...Option) (*table.Table, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	for mimetype := range cfg.overrides {
		if _, ok := src[mimetype]; !ok {
			return nil, fmt.Errorf("%w: %q", errs.ErrUnknownOverride, mimetype)
		}
	}

	grouped := make(map[string][]pair)
	dropped := 0
	for _, mimetype := range slices.Sorted(maps.Keys(src)) {
		typ, subtype, ok := strings.Cut(mimetype, "/")
		if !ok {
			return nil, fmt.Errorf("%w: %q has no '/'", errs.ErrInvalidMimeType, mimetype)
		}
		if !cfg.keepType(typ) {
			continue
		}

		ext, ok := cfg.overrides[mimetype]
		if !ok {
			exts := src[mimetype].Extensions
			if len(exts) == 0 {
				cfg.logger.Debug("drop mime type without extensions", zap.String("mimetype", mimetype))
				dropped++

				continue
			}
			ext = exts[0]
		}

		if err := checkEntry(typ, subtype, ext); err != nil {
			return nil, err
		}

		grouped[typ] = append(grouped[typ], pair{subtype: subtype, extension: ext})
	}

	t, err := pack(grouped)
	if err != nil {
		return nil, err
	}

	cfg.logger.Info("built mime table",
		zap.Int("groups", len(t.Groups())),
		zap.Int("entries", t.Len()),
		zap.Int("dropped", dropped),
		zap.Int("data_bytes", len(t.Data())),
		zap.Int("size_bytes", t.Size()),
	)

	return t, nil
}

// pack lays out the grouped pairs: groups sorted by type, entries by subtype,
// and every subtype immediately followed by its extension in one buffer.
func pack(grouped map[string][]pair) (*table.Table, error) {
	types := slices.Sorted(maps.Keys(grouped))
	if len(types) > section.MaxGroupCount {
		return nil, fmt.Errorf("%w: %d groups", errs.ErrTooManyGroups, len(types))
	}

	var data strings.Builder
	groups := make([]table.Group, 0, len(types))
	total := 0
	for _, typ := range types {
		pairs := grouped[typ]
		slices.SortFunc(pairs, func(a, b pair) int {
			return strings.Compare(a.subtype, b.subtype)
		})

		entries := make([]table.Entry, 0, len(pairs))
		for _, p := range pairs {
			loc := data.Len()
			if loc+len(p.subtype)+len(p.extension) > section.MaxDataSize {
				return nil, fmt.Errorf("%w: at %s/%s", errs.ErrDataTooLarge, typ, p.subtype)
			}

			entries = append(entries, table.Entry{
				Location:     uint16(loc),             //nolint:gosec
				SubtypeLen:   uint8(len(p.subtype)),   //nolint:gosec
				ExtensionLen: uint8(len(p.extension)), //nolint:gosec
			})
			data.WriteString(p.subtype)
			data.WriteString(p.extension)
		}

		total += len(entries)
		groups = append(groups, table.Group{Type: typ, Entries: entries})
	}

	if total > section.MaxEntryCount {
		return nil, fmt.Errorf("%w: %d entries", errs.ErrTooManyEntries, total)
	}

	t := table.New(data.String(), groups)
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// checkEntry rejects fields the packed layout cannot represent or Lookup could
// never match.
func checkEntry(typ, subtype, ext string) error {
	mimetype := typ + "/" + subtype

	switch {
	case typ == "":
		return fmt.Errorf("%w: %q", errs.ErrEmptyType, mimetype)
	case subtype == "":
		return fmt.Errorf("%w: %q", errs.ErrEmptySubtype, mimetype)
	case strings.ContainsAny(subtype, "/;"):
		return fmt.Errorf("%w: %q", errs.ErrInvalidMimeType, mimetype)
	case ext == "":
		return fmt.Errorf("%w: %q", errs.ErrEmptyExtension, mimetype)
	case strings.ContainsAny(ext, "./"):
		return fmt.Errorf("%w: %q for %q", errs.ErrInvalidExtension, ext, mimetype)
	}

	for _, field := range []string{typ, subtype, ext} {
		if len(field) > section.MaxFieldLen {
			return fmt.Errorf("%w: %q in %q", errs.ErrFieldTooLong, field, mimetype)
		}
		for i := 0; i < len(field); i++ {
			if field[i] >= 0x80 {
				return fmt.Errorf("%w: %q", errs.ErrNonASCII, mimetype)
			}
		}
	}

	return nil
}
