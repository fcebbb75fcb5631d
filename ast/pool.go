package ast

import "sync"

var (
	columnPool = sync.Pool{
		New: func() any { return &Column{} },
	}

	tablePool = sync.Pool{
		New: func() any { return &Table{} },
	}

	valuePool = sync.Pool{
		New: func() any { return &Value{} },
	}

	castPool = sync.Pool{
		New: func() any { return &CastExpr{} },
	}
)
