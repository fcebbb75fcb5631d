package ast

import (
	"testing"

	"github.com/Konsultn-Engineering/sqlgen/datatype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingVisitor struct {
	visited []string
}

func (r *recordingVisitor) VisitCreateTable(s *CreateTableStmt) error {
	r.visited = append(r.visited, "create:"+s.Table.Name)
	for _, col := range s.Columns {
		if err := col.Accept(r); err != nil {
			return err
		}
	}
	return nil
}

func (r *recordingVisitor) VisitColumnDef(c *ColumnDef) error {
	r.visited = append(r.visited, "coldef:"+c.Name+":"+c.Type.Kind().String())
	return nil
}

func (r *recordingVisitor) VisitCast(c *CastExpr) error {
	r.visited = append(r.visited, "cast:"+c.Target.Kind().String())
	return c.Expr.Accept(r)
}

func (r *recordingVisitor) VisitColumn(c *Column) error {
	r.visited = append(r.visited, "col:"+c.Name)
	return nil
}

func (r *recordingVisitor) VisitTable(t *Table) error {
	r.visited = append(r.visited, "table:"+t.Name)
	return nil
}

func (r *recordingVisitor) VisitValue(v *Value) error {
	r.visited = append(r.visited, "value")
	return nil
}

func TestCreateTableCarriesTypes(t *testing.T) {
	f := datatype.NewFactory(nil)

	stmt := CreateTable("orders",
		PrimaryKeyCol("id", f.BigInt()),
		Col("total", f.Decimal(datatype.Int(10), datatype.Int(2))),
	)
	stmt.AddColumn("note", f.VarChar(datatype.Int(200))).NotNull = true

	require.Len(t, stmt.Columns, 3)
	assert.Same(t, f.BigInt(), stmt.Columns[0].Type)
	assert.True(t, stmt.Columns[0].PrimaryKey)
	assert.True(t, stmt.Columns[2].NotNull)

	v := &recordingVisitor{}
	require.NoError(t, stmt.Accept(v))
	assert.Equal(t, []string{
		"create:orders",
		"coldef:id:BIGINT",
		"coldef:total:DECIMAL",
		"coldef:note:CHAR",
	}, v.visited)
}

func TestCreateTableFingerprintIsStructural(t *testing.T) {
	f := datatype.NewFactory(nil)

	build := func() *CreateTableStmt {
		return CreateTable("events",
			Col("at", f.TimeStamp(datatype.Int(6), datatype.Bool(true))),
			Col("amount", f.Numeric(datatype.Int(12), datatype.Int(4))),
		)
	}

	a, b := build(), build()
	assert.NotSame(t, a.Columns[0].Type, b.Columns[0].Type)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	c := build()
	c.Columns[1].Type = f.Numeric(datatype.Int(12), datatype.Int(3))
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())

	d := build()
	d.IfNotExists = true
	assert.NotEqual(t, a.Fingerprint(), d.Fingerprint())
}

func TestColumnDefFingerprintNilType(t *testing.T) {
	a := &ColumnDef{Name: "x"}
	b := &ColumnDef{Name: "x"}
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	b.References = &ForeignKeyRef{Table: "users", Columns: []string{"id"}}
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestCastExpr(t *testing.T) {
	f := datatype.NewFactory(nil)
	iv, err := f.DayTimeInterval(datatype.FieldDay, datatype.OptInt{}, datatype.FieldSecond, datatype.Int(3))
	require.NoError(t, err)

	cast := CastColumn("elapsed", iv)
	defer cast.Release()

	v := &recordingVisitor{}
	require.NoError(t, cast.Accept(v))
	assert.Equal(t, []string{"cast:INTERVAL", "col:elapsed"}, v.visited)

	other, err := f.DayTimeInterval(datatype.FieldDay, datatype.OptInt{}, datatype.FieldSecond, datatype.Int(3))
	require.NoError(t, err)
	same := CastColumn("elapsed", other)
	assert.Equal(t, cast.Fingerprint(), same.Fingerprint())

	asChar := CastColumn("elapsed", f.Char(datatype.OptInt{}))
	assert.NotEqual(t, cast.Fingerprint(), asChar.Fingerprint())
}

func TestValueTypes(t *testing.T) {
	assert.Equal(t, ValueNull, NewValue(nil).ValueType)
	assert.Equal(t, ValueBool, NewValue(true).ValueType)
	assert.Equal(t, ValueInt, NewValue(int64(3)).ValueType)
	assert.Equal(t, ValueFloat, NewValue(1.5).ValueType)
	assert.Equal(t, ValueString, NewValue("x").ValueType)

	assert.NotEqual(t, NewValue(1).Fingerprint(), NewValue("1").Fingerprint())
	assert.NotEqual(t, CastValue("1", datatype.NewFactory(nil).Integer()).Fingerprint(),
		CastValue("1", datatype.NewFactory(nil).BigInt()).Fingerprint())
}

func BenchmarkCreateTableFingerprint(b *testing.B) {
	f := datatype.NewFactory(nil)
	stmt := CreateTable("users",
		PrimaryKeyCol("id", f.BigInt()),
		Col("email", f.VarChar(datatype.Int(255))),
		Col("balance", f.Decimal(datatype.Int(18), datatype.Int(2))),
		Col("created_at", f.TimeStamp(datatype.OptInt{}, datatype.Bool(true))),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = stmt.Fingerprint()
	}
	b.ReportAllocs()
}
