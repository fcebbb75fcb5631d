package datatype

import "github.com/Konsultn-Engineering/sqlgen/utils"

// DataType is a SQL data type value. The set of implementations is closed:
// every value is one of the variants declared in this package and is never
// mutated once returned by a Factory.
//
// Comparing two DataType values with == compares identity, which is only
// meaningful for canonical instances. Use Equal for structural comparison.
//
// The concrete variants are unexported; parameters are read through the
// FloatType, ExactType, CharType, TimeType, IntervalType and UserDefinedType
// interfaces. Primitive types (BIGINT, SMALLINT, INTEGER, REAL, DOUBLE
// PRECISION, BOOLEAN, DATE) have no parameters and are plain DataType values.
type DataType interface {
	Kind() Kind
	// Equal reports whether other has the same variant and parameters.
	Equal(other DataType) bool
	// Fingerprint is a structural hash; Equal values share a fingerprint.
	Fingerprint() uint64

	dataType()
}

// FloatType is FLOAT with an optional precision.
type FloatType interface {
	DataType
	Precision() OptInt
}

// ExactType is DECIMAL or NUMERIC. Scale is only ever present together with
// a precision.
type ExactType interface {
	DataType
	Precision() OptInt
	Scale() OptInt
}

// CharType is CHARACTER or CHARACTER VARYING with an optional length.
type CharType interface {
	DataType
	Varying() bool
	Length() OptInt
}

// TimeType is TIME or TIMESTAMP with an optional fractional precision and a
// tri-state time zone flag.
type TimeType interface {
	DataType
	Precision() OptInt
	WithTimeZone() OptBool
}

// IntervalType is an INTERVAL. Values only come out of YearMonthInterval
// and DayTimeInterval, so every IntervalType satisfies the SQL field rules.
type IntervalType interface {
	DataType
	StartField() IntervalField
	StartFieldPrecision() OptInt
	// EndField returns FieldNone for single-field intervals.
	EndField() IntervalField
	SecondFracs() OptInt
	IsSingleField() bool
	IsYearMonth() bool
}

// UserDefinedType is an opaque type reference whose text is passed through
// as is.
type UserDefinedType interface {
	DataType
	TextualContent() string
}

// primitive is a parameter-free type: BIGINT, SMALLINT, INTEGER, REAL,
// DOUBLE PRECISION, BOOLEAN or DATE.
type primitive struct {
	kind Kind
}

func (p *primitive) Kind() Kind { return p.kind }
func (p *primitive) dataType()  {}

func (p *primitive) Equal(other DataType) bool {
	o, ok := other.(*primitive)
	return ok && o != nil && o.kind == p.kind
}

func (p *primitive) Fingerprint() uint64 {
	return utils.NewHasher(p.kind.String()).Sum64()
}

type floatType struct {
	precision OptInt
}

func (f *floatType) Kind() Kind        { return KindFloat }
func (f *floatType) Precision() OptInt { return f.precision }
func (f *floatType) dataType()         {}

func (f *floatType) Equal(other DataType) bool {
	o, ok := other.(*floatType)
	return ok && o != nil && o.precision == f.precision
}

func (f *floatType) Fingerprint() uint64 {
	return utils.NewHasher(KindFloat.String()).
		OptInt(f.precision.Get()).
		Sum64()
}

type exact struct {
	kind      Kind
	precision OptInt
	scale     OptInt
}

func (e *exact) Kind() Kind        { return e.kind }
func (e *exact) Precision() OptInt { return e.precision }
func (e *exact) Scale() OptInt     { return e.scale }
func (e *exact) dataType()         {}

func (e *exact) Equal(other DataType) bool {
	o, ok := other.(*exact)
	return ok && o != nil &&
		o.kind == e.kind &&
		o.precision == e.precision &&
		o.scale == e.scale
}

func (e *exact) Fingerprint() uint64 {
	return utils.NewHasher(e.kind.String()).
		OptInt(e.precision.Get()).
		OptInt(e.scale.Get()).
		Sum64()
}

type char struct {
	varying bool
	length  OptInt
}

func (c *char) Kind() Kind     { return KindChar }
func (c *char) Varying() bool  { return c.varying }
func (c *char) Length() OptInt { return c.length }
func (c *char) dataType()      {}

func (c *char) Equal(other DataType) bool {
	o, ok := other.(*char)
	return ok && o != nil && o.varying == c.varying && o.length == c.length
}

func (c *char) Fingerprint() uint64 {
	return utils.NewHasher(KindChar.String()).
		Bool(c.varying).
		OptInt(c.length.Get()).
		Sum64()
}

type timeType struct {
	kind         Kind
	precision    OptInt
	withTimeZone OptBool
}

func (t *timeType) Kind() Kind            { return t.kind }
func (t *timeType) Precision() OptInt     { return t.precision }
func (t *timeType) WithTimeZone() OptBool { return t.withTimeZone }
func (t *timeType) dataType()             {}

func (t *timeType) Equal(other DataType) bool {
	o, ok := other.(*timeType)
	return ok && o != nil &&
		o.kind == t.kind &&
		o.precision == t.precision &&
		o.withTimeZone == t.withTimeZone
}

func (t *timeType) Fingerprint() uint64 {
	return utils.NewHasher(t.kind.String()).
		OptInt(t.precision.Get()).
		OptBool(t.withTimeZone.Get()).
		Sum64()
}

type interval struct {
	start          IntervalField
	startPrecision OptInt
	end            IntervalField
	secondFracs    OptInt
}

func (i *interval) Kind() Kind                  { return KindInterval }
func (i *interval) StartField() IntervalField   { return i.start }
func (i *interval) StartFieldPrecision() OptInt { return i.startPrecision }
func (i *interval) EndField() IntervalField     { return i.end }
func (i *interval) SecondFracs() OptInt         { return i.secondFracs }
func (i *interval) IsSingleField() bool         { return i.end == FieldNone }
func (i *interval) IsYearMonth() bool           { return i.start.IsYearMonth() }
func (i *interval) dataType()                   {}

func (i *interval) Equal(other DataType) bool {
	o, ok := other.(*interval)
	return ok && o != nil && *o == *i
}

func (i *interval) Fingerprint() uint64 {
	return utils.NewHasher(KindInterval.String()).
		Uint64(uint64(i.start)).
		OptInt(i.startPrecision.Get()).
		Uint64(uint64(i.end)).
		OptInt(i.secondFracs.Get()).
		Sum64()
}

type userDefined struct {
	text string
}

func (u *userDefined) Kind() Kind             { return KindUserDefined }
func (u *userDefined) TextualContent() string { return u.text }
func (u *userDefined) dataType()              {}

func (u *userDefined) Equal(other DataType) bool {
	o, ok := other.(*userDefined)
	return ok && o != nil && o.text == u.text
}

func (u *userDefined) Fingerprint() uint64 {
	return utils.NewHasher(KindUserDefined.String()).Text(u.text).Sum64()
}

var (
	_ DataType        = (*primitive)(nil)
	_ FloatType       = (*floatType)(nil)
	_ ExactType       = (*exact)(nil)
	_ CharType        = (*char)(nil)
	_ TimeType        = (*timeType)(nil)
	_ IntervalType    = (*interval)(nil)
	_ UserDefinedType = (*userDefined)(nil)
)
