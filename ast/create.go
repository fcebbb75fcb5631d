package ast

import (
	"github.com/Konsultn-Engineering/sqlgen/datatype"
	"github.com/Konsultn-Engineering/sqlgen/utils"
)

type ColumnDef struct {
	Name       string
	Type       datatype.DataType
	NotNull    bool
	Unique     bool
	PrimaryKey bool
	Default    Node
	References *ForeignKeyRef
	Comment    string
}

func (c *ColumnDef) Accept(v Visitor) error { return v.VisitColumnDef(c) }

func (c *ColumnDef) Fingerprint() uint64 {
	h := utils.NewHasher("coldef").
		Text(c.Name).
		Uint64(typeFingerprint(c.Type)).
		Bool(c.NotNull).
		Bool(c.Unique).
		Bool(c.PrimaryKey).
		Text(c.Comment)
	if c.Default != nil {
		h.Uint64(c.Default.Fingerprint())
	}
	if c.References != nil {
		h.Uint64(c.References.fingerprint())
	}
	return h.Sum64()
}

type ForeignKeyRef struct {
	Table    string
	Columns  []string
	OnDelete string
	OnUpdate string
}

func (r *ForeignKeyRef) fingerprint() uint64 {
	h := utils.NewHasher("ref").Text(r.Table)
	for _, col := range r.Columns {
		h.Text(col)
	}
	return h.Text(r.OnDelete).Text(r.OnUpdate).Sum64()
}

type CreateTableStmt struct {
	Table       *Table
	Columns     []*ColumnDef
	IfNotExists bool
}

func (c *CreateTableStmt) Type() NodeType         { return NodeCreateTable }
func (c *CreateTableStmt) Accept(v Visitor) error { return v.VisitCreateTable(c) }

// Fingerprint is structural: statements whose column types are equal but
// separately constructed fingerprint the same.
func (c *CreateTableStmt) Fingerprint() uint64 {
	h := utils.NewHasher("create").Bool(c.IfNotExists)
	if c.Table != nil {
		h.Uint64(c.Table.Fingerprint())
	}
	for _, col := range c.Columns {
		h.Uint64(col.Fingerprint())
	}
	return h.Sum64()
}

// AddColumn appends a column definition and returns it for further tuning.
func (c *CreateTableStmt) AddColumn(name string, dt datatype.DataType) *ColumnDef {
	col := &ColumnDef{Name: name, Type: dt}
	c.Columns = append(c.Columns, col)
	return col
}

func typeFingerprint(dt datatype.DataType) uint64 {
	if dt == nil {
		return 0
	}
	return dt.Fingerprint()
}
