package ast

type Visitor interface {
	VisitCreateTable(*CreateTableStmt) error
	VisitColumnDef(*ColumnDef) error
	VisitCast(*CastExpr) error

	VisitColumn(*Column) error
	VisitTable(*Table) error
	VisitValue(*Value) error
}
