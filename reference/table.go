package reference

// Table identifies one of the two lookup tables of an Index.
type Table int

//go:generate go tool enumer -type Table -trimprefix Table table.go

const (
	// Defines table holds the `#define` lines.
	Defines Table = iota

	// Typedefs table holds the canonical function typedefs.
	Typedefs
)
