// Package table builds columnar tables from sparse named-field rows.
//
// A Schema fixes the ordered column list up front; Build walks every row and
// looks each declared column up in the row's map, appending an explicit null
// when the field is absent. Tables therefore always carry the full schema,
// including when no rows are supplied. Storage is an Apache Arrow record.
package table
