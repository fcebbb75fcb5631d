package ast

import (
	"fmt"
	"time"

	"github.com/Konsultn-Engineering/sqlgen/utils"
)

type ValueType int

const (
	ValueNull ValueType = iota
	ValueBool
	ValueInt
	ValueFloat
	ValueString
	ValueTime
)

type Value struct {
	Val       interface{}
	ValueType ValueType
}

func NewValue(val any) *Value {
	v := valuePool.Get().(*Value)
	v.Val = val
	v.ValueType = valueTypeOf(val)
	return v
}

func valueTypeOf(val any) ValueType {
	switch val.(type) {
	case nil:
		return ValueNull
	case bool:
		return ValueBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return ValueInt
	case float32, float64:
		return ValueFloat
	case time.Time:
		return ValueTime
	default:
		return ValueString
	}
}

func (v *Value) Type() NodeType           { return NodeValue }
func (v *Value) Accept(vis Visitor) error { return vis.VisitValue(v) }
func (v *Value) Fingerprint() uint64 {
	return utils.NewHasher("val").
		Uint64(uint64(v.ValueType)).
		Text(fmt.Sprint(v.Val)).
		Sum64()
}

func (v *Value) Release() {
	*v = Value{}
	valuePool.Put(v)
}
