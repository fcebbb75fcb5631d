package datatype

// Vendor is the dialect context a Factory is created with. The factory never
// interprets it; it is only handed back to whoever renders the types.
type Vendor interface {
	Name() string
}

// Factory builds DataType values. It holds no mutable state and is safe for
// concurrent use.
type Factory struct {
	vendor Vendor
}

func NewFactory(vendor Vendor) *Factory {
	return &Factory{vendor: vendor}
}

// Vendor returns the vendor the factory was created with, possibly nil.
func (f *Factory) Vendor() Vendor {
	return f.vendor
}

func (f *Factory) BigInt() DataType          { return bigInt }
func (f *Factory) SmallInt() DataType        { return smallInt }
func (f *Factory) Integer() DataType         { return integer }
func (f *Factory) Real() DataType            { return realFloat }
func (f *Factory) DoublePrecision() DataType { return doublePrecision }
func (f *Factory) Boolean() DataType         { return boolean }
func (f *Factory) Date() DataType            { return date }

func (f *Factory) Float(precision OptInt) FloatType {
	if !precision.IsSet() {
		return plainFloat
	}
	return &floatType{precision: precision}
}

// Decimal returns DECIMAL. Without a precision the scale is discarded and the
// canonical plain instance is returned.
func (f *Factory) Decimal(precision, scale OptInt) ExactType {
	if !precision.IsSet() {
		return plainDecimal
	}
	return &exact{kind: KindDecimal, precision: precision, scale: scale}
}

// Numeric follows the same rules as Decimal.
func (f *Factory) Numeric(precision, scale OptInt) ExactType {
	if !precision.IsSet() {
		return plainNumeric
	}
	return &exact{kind: KindNumeric, precision: precision, scale: scale}
}

func (f *Factory) Char(length OptInt) CharType {
	if !length.IsSet() {
		return plainChar
	}
	return &char{length: length}
}

func (f *Factory) VarChar(length OptInt) CharType {
	if !length.IsSet() {
		return plainVarChar
	}
	return &char{varying: true, length: length}
}

// Time returns TIME. Without a precision one of three canonical instances is
// picked by the time zone flag; with a precision a fresh value is built.
func (f *Factory) Time(precision OptInt, withTimeZone OptBool) TimeType {
	return timeOf(KindTime, precision, withTimeZone)
}

// TimeStamp follows the same rules as Time.
func (f *Factory) TimeStamp(precision OptInt, withTimeZone OptBool) TimeType {
	return timeOf(KindTimeStamp, precision, withTimeZone)
}

func timeOf(kind Kind, precision OptInt, withTimeZone OptBool) TimeType {
	if !precision.IsSet() {
		return plainTimeOf(kind, withTimeZone)
	}
	return &timeType{kind: kind, precision: precision, withTimeZone: withTimeZone}
}

// UserDefined always returns a fresh value. The text is not validated.
func (f *Factory) UserDefined(textualContent string) UserDefinedType {
	return &userDefined{text: textualContent}
}
