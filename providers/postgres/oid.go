package postgres

import (
	"github.com/Konsultn-Engineering/sqlgen/datatype"
	"github.com/jackc/pgx/v5/pgtype"
)

var primitiveOIDs = map[datatype.Kind]uint32{
	datatype.KindBigInt:          pgtype.Int8OID,
	datatype.KindSmallInt:        pgtype.Int2OID,
	datatype.KindInteger:         pgtype.Int4OID,
	datatype.KindReal:            pgtype.Float4OID,
	datatype.KindDoublePrecision: pgtype.Float8OID,
	datatype.KindBoolean:         pgtype.BoolOID,
	datatype.KindDate:            pgtype.DateOID,
	datatype.KindDecimal:         pgtype.NumericOID,
	datatype.KindNumeric:         pgtype.NumericOID,
	datatype.KindInterval:        pgtype.IntervalOID,
}

// OID returns the PostgreSQL type OID of a built-in data type. User-defined
// types have no fixed OID; use a Resolver for those.
func OID(dt datatype.DataType) (uint32, bool) {
	if dt == nil {
		return 0, false
	}
	switch dt.Kind() {
	case datatype.KindFloat:
		// FLOAT(p) is REAL up to 24 bits of precision, DOUBLE PRECISION above.
		if t, ok := dt.(datatype.FloatType); ok {
			if p, set := t.Precision().Get(); set && p <= 24 {
				return pgtype.Float4OID, true
			}
		}
		return pgtype.Float8OID, true
	case datatype.KindChar:
		if t, ok := dt.(datatype.CharType); ok && t.Varying() {
			return pgtype.VarcharOID, true
		}
		return pgtype.BPCharOID, true
	case datatype.KindTime, datatype.KindTimeStamp:
		t, ok := dt.(datatype.TimeType)
		zoned := ok && t.WithTimeZone().Value()
		switch {
		case dt.Kind() == datatype.KindTime && zoned:
			return pgtype.TimetzOID, true
		case dt.Kind() == datatype.KindTime:
			return pgtype.TimeOID, true
		case zoned:
			return pgtype.TimestamptzOID, true
		default:
			return pgtype.TimestampOID, true
		}
	case datatype.KindUserDefined:
		return 0, false
	}
	oid, ok := primitiveOIDs[dt.Kind()]
	return oid, ok
}
