package datatype

import "strconv"

// Kind tags the variant of a DataType.
type Kind uint8

const (
	KindBigInt Kind = iota
	KindSmallInt
	KindInteger
	KindReal
	KindDoublePrecision
	KindBoolean
	KindDate
	KindFloat
	KindDecimal
	KindNumeric
	KindChar
	KindTime
	KindTimeStamp
	KindInterval
	KindUserDefined
)

var kindNames = [...]string{
	KindBigInt:          "BIGINT",
	KindSmallInt:        "SMALLINT",
	KindInteger:         "INTEGER",
	KindReal:            "REAL",
	KindDoublePrecision: "DOUBLE PRECISION",
	KindBoolean:         "BOOLEAN",
	KindDate:            "DATE",
	KindFloat:           "FLOAT",
	KindDecimal:         "DECIMAL",
	KindNumeric:         "NUMERIC",
	KindChar:            "CHAR",
	KindTime:            "TIME",
	KindTimeStamp:       "TIMESTAMP",
	KindInterval:        "INTERVAL",
	KindUserDefined:     "USER DEFINED",
}

// String returns the SQL keyword of the kind's family: CHAR also covers
// VARCHAR, TIME and TIMESTAMP cover their zoned forms. Use Name to label a
// particular value.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}
