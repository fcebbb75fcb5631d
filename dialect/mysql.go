package dialect

import "github.com/Konsultn-Engineering/sqlgen/datatype"

type MySQL struct{}

func NewMySQLDialect() Dialect {
	return &MySQL{}
}

func (m MySQL) Name() string {
	return "mysql"
}

func (m MySQL) QuoteIdentifier(name string) string {
	return "`" + name + "`"
}

func (m MySQL) Placeholder(n int) string {
	return "?"
}

// Supports rejects INTERVAL columns, zoned TIME/TIMESTAMP and user-defined
// types, none of which MySQL can declare.
func (m MySQL) Supports(dt datatype.DataType) bool {
	if dt == nil {
		return false
	}
	switch dt.Kind() {
	case datatype.KindInterval, datatype.KindUserDefined:
		return false
	case datatype.KindTime, datatype.KindTimeStamp:
		t, ok := dt.(datatype.TimeType)
		return ok && !t.WithTimeZone().Value()
	default:
		return true
	}
}
