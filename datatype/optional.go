package datatype

// OptInt is an optional integer parameter. The zero value is absent, which is
// distinct from a present zero.
type OptInt struct {
	v  int
	ok bool
}

// Int returns a present OptInt holding v.
func Int(v int) OptInt {
	return OptInt{v: v, ok: true}
}

// IntFrom converts a nullable pointer into an OptInt.
func IntFrom(p *int) OptInt {
	if p == nil {
		return OptInt{}
	}
	return Int(*p)
}

func (o OptInt) Get() (int, bool) { return o.v, o.ok }
func (o OptInt) IsSet() bool      { return o.ok }

// Value returns the held integer, or 0 when absent.
func (o OptInt) Value() int { return o.v }

// OptBool is a tri-state flag: unset, true or false. The zero value is unset.
type OptBool struct {
	v  bool
	ok bool
}

// Bool returns a set OptBool holding v.
func Bool(v bool) OptBool {
	return OptBool{v: v, ok: true}
}

// BoolFrom converts a nullable pointer into an OptBool.
func BoolFrom(p *bool) OptBool {
	if p == nil {
		return OptBool{}
	}
	return Bool(*p)
}

func (o OptBool) Get() (bool, bool) { return o.v, o.ok }
func (o OptBool) IsSet() bool       { return o.ok }
func (o OptBool) Value() bool       { return o.v }
