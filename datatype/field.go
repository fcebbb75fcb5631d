package datatype

import "strconv"

// IntervalField is a temporal unit bounding an INTERVAL type. The zero value
// FieldNone stands for an absent field.
type IntervalField uint8

const (
	FieldNone IntervalField = iota
	FieldYear
	FieldMonth
	FieldDay
	FieldHour
	FieldMinute
	FieldSecond
)

var fieldNames = [...]string{
	FieldNone:   "",
	FieldYear:   "YEAR",
	FieldMonth:  "MONTH",
	FieldDay:    "DAY",
	FieldHour:   "HOUR",
	FieldMinute: "MINUTE",
	FieldSecond: "SECOND",
}

func (f IntervalField) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "IntervalField(" + strconv.Itoa(int(f)) + ")"
}

// IsYearMonth reports whether f belongs to the year-month interval family.
func (f IntervalField) IsYearMonth() bool {
	return f == FieldYear || f == FieldMonth
}

// IsDayTime reports whether f belongs to the day-time interval family.
func (f IntervalField) IsDayTime() bool {
	return f >= FieldDay && f <= FieldSecond
}
