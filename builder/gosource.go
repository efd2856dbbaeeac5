package builder

import (
	"fmt"
	"go/format"
	"go/token"
	"io"
	"strconv"

	"github.com/arloliu/mime2ext/errs"
	"github.com/arloliu/mime2ext/internal/pool"
	"github.com/arloliu/mime2ext/table"
)

const (
	goSourceChunkSize = 72 // packed data bytes per string literal line
	tablePackage      = "table"
	tableImportPath   = "github.com/arloliu/mime2ext/table"
)

// WriteGoSource writes gofmt'd Go source declaring t as the unexported
// defaultData constant and defaultGroups variable of package pkg.
//
// Inside package table the declarations are exactly what Default wraps; other
// packages get table-qualified types and can call table.New(defaultData,
// defaultGroups). sourceName only appears in the generated header.
func WriteGoSource(w io.Writer, t *table.Table, pkg, sourceName string) error {
	if !token.IsIdentifier(pkg) {
		return fmt.Errorf("%w: %q", errs.ErrInvalidPackageName, pkg)
	}

	buf := pool.GetArtifactBuffer()
	defer pool.PutArtifactBuffer(buf)

	qualifier := ""
	fmt.Fprintf(buf, "// Code generated by mime2ext-gen from %s; DO NOT EDIT.\n\n", sourceName)
	fmt.Fprintf(buf, "package %s\n\n", pkg)
	if pkg != tablePackage {
		fmt.Fprintf(buf, "import %q\n\n", tableImportPath)
		qualifier = tablePackage + "."
	}
	fmt.Fprintf(buf, "// %d entries in %d groups, %d bytes of packed data.\n\n", t.Len(), len(t.Groups()), len(t.Data()))

	writeDataConst(buf, t.Data())

	fmt.Fprintf(buf, "\nvar defaultGroups = []%sGroup{\n", qualifier)
	for _, g := range t.Groups() {
		fmt.Fprintf(buf, "\t{Type: %s, Entries: []%sEntry{\n", strconv.Quote(g.Type), qualifier)
		for _, e := range g.Entries {
			fmt.Fprintf(buf, "\t\t{%d, %d, %d},\n", e.Location, e.SubtypeLen, e.ExtensionLen)
		}
		_, _ = buf.WriteString("\t}},\n")
	}
	_, _ = buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format generated source: %w", err)
	}

	_, err = w.Write(src)

	return err
}

func writeDataConst(buf *pool.ByteBuffer, data string) {
	if data == "" {
		_, _ = buf.WriteString("const defaultData = \"\"\n")
		return
	}

	_, _ = buf.WriteString("const defaultData = \"\" +\n")
	for len(data) > 0 {
		n := min(len(data), goSourceChunkSize)
		_, _ = buf.WriteString("\t")
		_, _ = buf.WriteString(strconv.Quote(data[:n]))
		data = data[n:]
		if len(data) > 0 {
			_, _ = buf.WriteString(" +")
		}
		_, _ = buf.WriteString("\n")
	}
}
