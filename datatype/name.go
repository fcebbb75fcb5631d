package datatype

// Name returns a short SQL label for dt, precise enough for diagnostics:
// VARCHAR is told apart from CHAR, zoned times carry WITH TIME ZONE and
// user-defined types show their text. Parameters such as precision and
// length are left out.
func Name(dt DataType) string {
	switch t := dt.(type) {
	case nil:
		return "<nil>"
	case CharType:
		if t.Varying() {
			return "VARCHAR"
		}
	case TimeType:
		if t.WithTimeZone().Value() {
			return t.Kind().String() + " WITH TIME ZONE"
		}
	case UserDefinedType:
		if t.TextualContent() != "" {
			return t.Kind().String() + " " + t.TextualContent()
		}
	}
	return dt.Kind().String()
}
