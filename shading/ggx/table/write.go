package table

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"
)

const (
	precision = 6
	rowSize   = 8
)

// Write writes the tables as Go source of package pkg. All tables must
// have the same size. The output is gofmt-formatted.
func Write(w io.Writer, pkg string, tables []Table) error {
	if len(tables) == 0 {
		return fmt.Errorf("%w: no tables", ErrInvalidConfig)
	}
	size := tables[0].Size
	for _, t := range tables {
		if t.Size != size || len(t.Albedo) != size*size || len(t.Average) != size {
			return fmt.Errorf("%w: table %d has inconsistent size", ErrInvalidConfig, t.Dimension)
		}
	}

	var b bytes.Buffer
	b.WriteString("// Code generated by ggxtables; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "const albedoSize = %d\n\n", size)
	b.WriteString("// albedoTables holds, per dimension, the directional albedo of the GGX\n")
	b.WriteString("// term with F0 = 1 over (roughness, cosine) and its cosine-weighted\n")
	b.WriteString("// average over roughness.\n")
	b.WriteString("var albedoTables = map[int]albedoData{\n")
	for _, t := range tables {
		fmt.Fprintf(&b, "%d: {\n", t.Dimension)
		b.WriteString("albedo: [albedoSize * albedoSize]float64{\n")
		writeValues(&b, t.Albedo)
		b.WriteString("},\n")
		b.WriteString("average: [albedoSize]float64{\n")
		writeValues(&b, t.Average)
		b.WriteString("},\n")
		b.WriteString("},\n")
	}
	b.WriteString("}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return fmt.Errorf("table: format source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

func writeValues(b *bytes.Buffer, values []float64) {
	for i, v := range values {
		if i > 0 {
			if i%rowSize == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(strconv.FormatFloat(min(max(v, 0), 1), 'f', precision, 64))
		b.WriteByte(',')
	}
	b.WriteByte('\n')
}
