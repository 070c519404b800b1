package table

import (
	"fmt"
	"math"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

const keyMeta = "key"

// Column types understood by Build.
var (
	Float64   arrow.DataType = arrow.PrimitiveTypes.Float64
	Int64     arrow.DataType = arrow.PrimitiveTypes.Int64
	Timestamp arrow.DataType = arrow.FixedWidthTypes.Timestamp_us
	String    arrow.DataType = arrow.BinaryTypes.String
)

// Column declares one named, typed column.
type Column struct {
	Name string
	Type arrow.DataType
}

// Schema is an ordered column list with an optional unique int64 key column.
type Schema struct {
	Columns []Column
	Key     string
}

// Names returns the column names in declared order.
func (s Schema) Names() []string {
	names := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		names[i] = col.Name
	}
	return names
}

// Row maps column names to values. Missing keys and nil values become nulls.
type Row map[string]any

// Table is an immutable table backed by an Arrow record.
type Table struct {
	schema Schema
	rec    arrow.Record
	cols   map[string]int
	index  map[int64]int
}

// Build assembles rows into a table with exactly the schema's columns.
func Build(mem memory.Allocator, schema Schema, rows []Row) (*Table, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	cols := make(map[string]int, len(schema.Columns))
	fields := make([]arrow.Field, len(schema.Columns))
	for i, col := range schema.Columns {
		if _, dup := cols[col.Name]; dup {
			return nil, fmt.Errorf("table: duplicate column %q", col.Name)
		}
		cols[col.Name] = i
		fields[i] = arrow.Field{Name: col.Name, Type: col.Type, Nullable: true}
	}

	var md *arrow.Metadata
	keyCol := -1
	if schema.Key != "" {
		idx, ok := cols[schema.Key]
		if !ok {
			return nil, fmt.Errorf("table: key column %q not in schema", schema.Key)
		}
		if schema.Columns[idx].Type.ID() != arrow.INT64 {
			return nil, fmt.Errorf("table: key column %q must be int64", schema.Key)
		}
		keyCol = idx
		meta := arrow.MetadataFrom(map[string]string{keyMeta: schema.Key})
		md = &meta
	}

	b := array.NewRecordBuilder(mem, arrow.NewSchema(fields, md))
	defer b.Release()

	var index map[int64]int
	if keyCol >= 0 {
		index = make(map[int64]int, len(rows))
	}

	for r, row := range rows {
		for c, col := range schema.Columns {
			value, ok := row[col.Name]
			if !ok || value == nil {
				if c == keyCol {
					return nil, &BuildError{Column: col.Name, Row: r, Reason: "key is null"}
				}
				b.Field(c).AppendNull()
				continue
			}
			if c == keyCol {
				key, ok := toInt64(value)
				if !ok {
					return nil, &BuildError{Column: col.Name, Row: r, Value: value}
				}
				if prev, dup := index[key]; dup {
					return nil, &BuildError{Column: col.Name, Row: r, Reason: fmt.Sprintf("duplicate key %d (row %d)", key, prev)}
				}
				index[key] = r
			}
			if err := appendValue(b.Field(c), value); err != nil {
				return nil, &BuildError{Column: col.Name, Row: r, Value: value}
			}
		}
	}

	return &Table{
		schema: schema,
		rec:    b.NewRecord(),
		cols:   cols,
		index:  index,
	}, nil
}

func appendValue(b array.Builder, value any) error {
	switch builder := b.(type) {
	case *array.Float64Builder:
		f, ok := toFloat64(value)
		if !ok {
			return errUnsupported
		}
		builder.Append(f)
	case *array.Int64Builder:
		n, ok := toInt64(value)
		if !ok {
			return errUnsupported
		}
		builder.Append(n)
	case *array.TimestampBuilder:
		ts, ok := value.(time.Time)
		if !ok {
			return errUnsupported
		}
		builder.Append(arrow.Timestamp(ts.UnixMicro()))
	case *array.StringBuilder:
		switch s := value.(type) {
		case string:
			builder.Append(s)
		case fmt.Stringer:
			builder.Append(s.String())
		default:
			return errUnsupported
		}
	default:
		return errUnsupported
	}
	return nil
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case time.Duration:
		return n.Seconds(), true
	default:
		return 0, false
	}
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

// Columns returns the column names in schema order.
func (t *Table) Columns() []string {
	return t.schema.Names()
}

// Schema returns the schema the table was built with.
func (t *Table) Schema() Schema {
	return t.schema
}

// Key returns the key column name, or "" for unkeyed tables.
func (t *Table) Key() string {
	return t.schema.Key
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return int(t.rec.NumRows())
}

// Record exposes the underlying Arrow record. It stays owned by the table.
func (t *Table) Record() arrow.Record {
	return t.rec
}

// Release frees the record's buffers.
func (t *Table) Release() {
	if t == nil || t.rec == nil {
		return
	}
	t.rec.Release()
	t.rec = nil
}

// RowByKey returns the row holding key in the key column.
func (t *Table) RowByKey(key int64) (int, bool) {
	row, ok := t.index[key]
	return row, ok
}

func (t *Table) column(name string) (arrow.Array, bool) {
	idx, ok := t.cols[name]
	if !ok {
		return nil, false
	}
	return t.rec.Column(idx), true
}

// IsNull reports whether the cell is null. Unknown columns read as null.
func (t *Table) IsNull(row int, col string) bool {
	arr, ok := t.column(col)
	if !ok {
		return true
	}
	return arr.IsNull(row)
}

// Value returns the cell as float64, int64, time.Time or string, or nil when
// the cell is null.
func (t *Table) Value(row int, col string) any {
	arr, ok := t.column(col)
	if !ok || arr.IsNull(row) {
		return nil
	}
	switch a := arr.(type) {
	case *array.Float64:
		return a.Value(row)
	case *array.Int64:
		return a.Value(row)
	case *array.Timestamp:
		return time.UnixMicro(int64(a.Value(row))).UTC()
	case *array.String:
		return a.Value(row)
	default:
		return a.ValueStr(row)
	}
}

// Float64 returns a float64 cell and whether it was non-null.
func (t *Table) Float64(row int, col string) (float64, bool) {
	v, ok := t.Value(row, col).(float64)
	return v, ok
}

// Int64 returns an int64 cell and whether it was non-null.
func (t *Table) Int64(row int, col string) (int64, bool) {
	v, ok := t.Value(row, col).(int64)
	return v, ok
}

// Time returns a timestamp cell and whether it was non-null.
func (t *Table) Time(row int, col string) (time.Time, bool) {
	v, ok := t.Value(row, col).(time.Time)
	return v, ok
}

// Float64s returns a column as a slice with NaN in place of nulls.
func (t *Table) Float64s(col string) []float64 {
	out := make([]float64, t.NumRows())
	for i := range out {
		v, ok := t.Float64(i, col)
		if !ok {
			v = math.NaN()
		}
		out[i] = v
	}
	return out
}
