package models

// Sheet is a loaded table: one header row and the data rows below it.
// Rows may be shorter than Header when trailing cells are empty.
type Sheet struct {
	Source string
	Name   string
	Header []string
	Rows   [][]string
}
