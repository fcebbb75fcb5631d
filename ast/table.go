package ast

import "github.com/Konsultn-Engineering/sqlgen/utils"

type Table struct {
	Schema string
	Name   string
	Alias  string
}

func NewTable(schema, name, alias string) *Table {
	t := tablePool.Get().(*Table)
	t.Schema = schema
	t.Name = name
	t.Alias = alias
	return t
}

func (t *Table) Type() NodeType         { return NodeTable }
func (t *Table) Accept(v Visitor) error { return v.VisitTable(t) }
func (t *Table) Fingerprint() uint64 {
	return utils.NewHasher("table").Text(t.Schema).Text(t.Name).Text(t.Alias).Sum64()
}

func (t *Table) Release() {
	*t = Table{}
	tablePool.Put(t)
}
