package datatype

import "github.com/pkg/errors"

const (
	msgYearMonth   = "interval data types must be either YEAR or MONTH"
	msgDayTime     = "interval data types must be either DAY, HOUR, MINUTE, or SECOND, and the start field must not be SECOND if the end field is set"
	msgSecondFracs = "when specifying second fracs for single day-time intervals, the start field precision must be specified also"
)

// YearMonthInterval builds INTERVAL YEAR, MONTH or a range between them.
// Year-month intervals never carry fractional seconds.
func (f *Factory) YearMonthInterval(start IntervalField, startPrecision OptInt, end IntervalField) (IntervalType, error) {
	if start == FieldNone {
		return nil, errors.Wrap(ErrMissingArgument, "start field")
	}
	if !start.IsYearMonth() || (end != FieldNone && !end.IsYearMonth()) {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s (got %s, %s)", msgYearMonth, start, fieldOrNone(end))
	}
	return &interval{start: start, startPrecision: startPrecision, end: end}, nil
}

// DayTimeInterval builds a day-time INTERVAL. A secondFracs value that cannot
// apply to the requested shape is dropped silently; a single-field SECOND
// interval with fractional seconds but no start precision is rejected.
func (f *Factory) DayTimeInterval(start IntervalField, startPrecision OptInt, end IntervalField, secondFracs OptInt) (IntervalType, error) {
	if start == FieldNone {
		return nil, errors.Wrap(ErrMissingArgument, "start field")
	}
	if !start.IsDayTime() || (end != FieldNone && (!end.IsDayTime() || start == FieldSecond)) {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s (got %s, %s)", msgDayTime, start, fieldOrNone(end))
	}

	single := end == FieldNone
	if secondFracs.IsSet() && ((single && start != FieldSecond) || (!single && end != FieldSecond)) {
		secondFracs = OptInt{}
	}

	if single && secondFracs.IsSet() && !startPrecision.IsSet() {
		return nil, errors.Wrap(ErrInvalidArgument, msgSecondFracs)
	}

	return &interval{
		start:          start,
		startPrecision: startPrecision,
		end:            end,
		secondFracs:    secondFracs,
	}, nil
}

func fieldOrNone(f IntervalField) string {
	if f == FieldNone {
		return "none"
	}
	return f.String()
}
