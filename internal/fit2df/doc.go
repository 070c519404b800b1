// Package fit2df converts FIT activity recordings into two tables: one row
// per lap and one row per positioned track sample.
//
// Frames come from a fitdecode.Opener in file order. "record" frames become
// point rows (dropped when either position field is missing or null), "lap"
// frames become lap rows numbered from 1 by the converter itself. Points are
// stamped with the number of the lap they fall in. Both tables always carry
// their full column lists, with nulls where a frame lacked a field.
package fit2df
