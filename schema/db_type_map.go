package schema

import (
	"reflect"
	"strings"
	"time"

	"github.com/Konsultn-Engineering/sqlgen/datatype"
	"github.com/google/uuid"
)

// Pre-initialize all reflect.Type values to avoid repeated allocations
var (
	stringType    = reflect.TypeOf("")
	boolType      = reflect.TypeOf(false)
	bytesType     = reflect.TypeOf([]byte{})
	interfaceType = reflect.TypeOf((*interface{})(nil)).Elem()
	timeType      = reflect.TypeOf(time.Time{})
	durationType  = reflect.TypeOf(time.Duration(0))
	uuidType      = reflect.TypeOf(uuid.UUID{})

	int16Type = reflect.TypeOf(int16(0))
	int32Type = reflect.TypeOf(int32(0))
	int64Type = reflect.TypeOf(int64(0))

	float32Type = reflect.TypeOf(float32(0))
	float64Type = reflect.TypeOf(float64(0))

	stringArrayType    = reflect.TypeOf([]string{})
	interfaceArrayType = reflect.TypeOf([]interface{}{})
)

var kindTypeMap = map[datatype.Kind]reflect.Type{
	datatype.KindBigInt:          int64Type,
	datatype.KindSmallInt:        int16Type,
	datatype.KindInteger:         int32Type,
	datatype.KindReal:            float32Type,
	datatype.KindDoublePrecision: float64Type,
	datatype.KindFloat:           float64Type,
	datatype.KindDecimal:         stringType, // Use string for precise decimals
	datatype.KindNumeric:         stringType,
	datatype.KindBoolean:         boolType,
	datatype.KindChar:            stringType,
	datatype.KindDate:            timeType,
	datatype.KindTime:            timeType,
	datatype.KindTimeStamp:       timeType,
	datatype.KindInterval:        durationType,
}

// UserTypeMap resolves the text of common user-defined types. Anything not
// listed scans into interface{}.
var UserTypeMap = map[string]reflect.Type{
	"TEXT":     stringType,
	"CLOB":     stringType,
	"CITEXT":   stringType,
	"UUID":     uuidType,
	"INET":     stringType,
	"CIDR":     stringType,
	"MACADDR":  stringType,
	"XML":      stringType,
	"MONEY":    stringType, // Use string for money types
	"BYTEA":    bytesType,
	"BLOB":     bytesType,
	"BINARY":   bytesType,
	"JSON":     interfaceType,
	"JSONB":    interfaceType,
	"TEXT[]":   stringArrayType,
	"ARRAY":    interfaceArrayType,
	"SERIAL":   int32Type,
	"SERIAL8":  int64Type,
	"TINYINT":  int16Type,
	"DATETIME": timeType,
}

// GoType returns the Go type a column of dt scans into, or nil for nil.
func GoType(dt datatype.DataType) reflect.Type {
	if dt == nil {
		return nil
	}
	if t, ok := kindTypeMap[dt.Kind()]; ok {
		return t
	}
	if u, ok := dt.(datatype.UserDefinedType); ok {
		return userType(u.TextualContent())
	}
	return interfaceType
}

func userType(text string) reflect.Type {
	name := strings.ToUpper(strings.TrimSpace(text))
	if t, ok := UserTypeMap[name]; ok {
		return t
	}

	// Strip a schema qualifier: public.citext -> CITEXT
	if dot := strings.LastIndexByte(name, '.'); dot != -1 {
		if t, ok := UserTypeMap[name[dot+1:]]; ok {
			return t
		}
	}

	// Handle parameterized names like BINARY(16)
	if paren := strings.IndexByte(name, '('); paren != -1 {
		if t, ok := UserTypeMap[strings.TrimSpace(name[:paren])]; ok {
			return t
		}
	}
	return interfaceType
}
