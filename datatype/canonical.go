package datatype

// Canonical instances for every parameter-free type shape. They are built
// during package initialization and shared by all callers for the lifetime
// of the process.
var (
	bigInt          = &primitive{kind: KindBigInt}
	smallInt        = &primitive{kind: KindSmallInt}
	integer         = &primitive{kind: KindInteger}
	realFloat       = &primitive{kind: KindReal}
	doublePrecision = &primitive{kind: KindDoublePrecision}
	boolean         = &primitive{kind: KindBoolean}
	date            = &primitive{kind: KindDate}

	plainFloat   = &floatType{}
	plainDecimal = &exact{kind: KindDecimal}
	plainNumeric = &exact{kind: KindNumeric}

	plainChar    = &char{}
	plainVarChar = &char{varying: true}

	plainTime           = &timeType{kind: KindTime}
	plainTimeWithTZ     = &timeType{kind: KindTime, withTimeZone: Bool(true)}
	plainTimeWithoutTZ  = &timeType{kind: KindTime, withTimeZone: Bool(false)}
	plainStamp          = &timeType{kind: KindTimeStamp}
	plainStampWithTZ    = &timeType{kind: KindTimeStamp, withTimeZone: Bool(true)}
	plainStampWithoutTZ = &timeType{kind: KindTimeStamp, withTimeZone: Bool(false)}
)

var canonical = map[DataType]struct{}{
	bigInt:              {},
	smallInt:            {},
	integer:             {},
	realFloat:           {},
	doublePrecision:     {},
	boolean:             {},
	date:                {},
	plainFloat:          {},
	plainDecimal:        {},
	plainNumeric:        {},
	plainChar:           {},
	plainVarChar:        {},
	plainTime:           {},
	plainTimeWithTZ:     {},
	plainTimeWithoutTZ:  {},
	plainStamp:          {},
	plainStampWithTZ:    {},
	plainStampWithoutTZ: {},
}

// IsCanonical reports whether dt is one of the shared parameter-free
// instances. Parameterized values are never canonical, even when they are
// structurally equal to one.
func IsCanonical(dt DataType) bool {
	if dt == nil {
		return false
	}
	_, ok := canonical[dt]
	return ok
}

func plainTimeOf(kind Kind, withTimeZone OptBool) *timeType {
	tz, set := withTimeZone.Get()
	switch {
	case kind == KindTime && !set:
		return plainTime
	case kind == KindTime && tz:
		return plainTimeWithTZ
	case kind == KindTime:
		return plainTimeWithoutTZ
	case !set:
		return plainStamp
	case tz:
		return plainStampWithTZ
	default:
		return plainStampWithoutTZ
	}
}
