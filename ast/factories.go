package ast

import "github.com/Konsultn-Engineering/sqlgen/datatype"

// High-level factory functions for statements that embed data types.

func CreateTable(name string, columns ...*ColumnDef) *CreateTableStmt {
	return &CreateTableStmt{
		Table:   NewTable("", name, ""),
		Columns: columns,
	}
}

func CreateTableIfNotExists(name string, columns ...*ColumnDef) *CreateTableStmt {
	stmt := CreateTable(name, columns...)
	stmt.IfNotExists = true
	return stmt
}

func Col(name string, dt datatype.DataType) *ColumnDef {
	return &ColumnDef{Name: name, Type: dt}
}

func PrimaryKeyCol(name string, dt datatype.DataType) *ColumnDef {
	return &ColumnDef{Name: name, Type: dt, PrimaryKey: true, NotNull: true}
}

func CastColumn(column string, dt datatype.DataType) *CastExpr {
	return NewCast(NewColumn("", column, ""), dt)
}

func CastValue(val any, dt datatype.DataType) *CastExpr {
	return NewCast(NewValue(val), dt)
}
