package dialect

import (
	"strconv"

	"github.com/Konsultn-Engineering/sqlgen/datatype"
)

type Postgres struct{}

func NewPostgresDialect() Dialect {
	return &Postgres{}
}

func (p Postgres) Name() string {
	return "postgres"
}

func (p Postgres) QuoteIdentifier(name string) string {
	return `"` + name + `"`
}

func (p Postgres) Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

func (p Postgres) Supports(dt datatype.DataType) bool {
	return dt != nil
}
