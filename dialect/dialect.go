package dialect

import "github.com/Konsultn-Engineering/sqlgen/datatype"

// Dialect is the vendor context handed to a datatype.Factory and to the
// statement walkers. The factory only forwards it.
type Dialect interface {
	Name() string
	QuoteIdentifier(name string) string
	Placeholder(n int) string
	// Supports reports whether the vendor can declare a column or cast target
	// of the given type.
	Supports(dt datatype.DataType) bool
}
