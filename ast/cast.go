package ast

import (
	"github.com/Konsultn-Engineering/sqlgen/datatype"
	"github.com/Konsultn-Engineering/sqlgen/utils"
)

// CastExpr is CAST(Expr AS Target).
type CastExpr struct {
	Expr   Node
	Target datatype.DataType
}

func NewCast(expr Node, target datatype.DataType) *CastExpr {
	c := castPool.Get().(*CastExpr)
	c.Expr = expr
	c.Target = target
	return c
}

func (c *CastExpr) Type() NodeType         { return NodeCast }
func (c *CastExpr) Accept(v Visitor) error { return v.VisitCast(c) }
func (c *CastExpr) Fingerprint() uint64 {
	h := utils.NewHasher("cast").Uint64(typeFingerprint(c.Target))
	if c.Expr != nil {
		h.Uint64(c.Expr.Fingerprint())
	}
	return h.Sum64()
}

func (c *CastExpr) Release() {
	*c = CastExpr{}
	castPool.Put(c)
}
