package visitor

import (
	"errors"
	"testing"

	"github.com/Konsultn-Engineering/sqlgen/ast"
	"github.com/Konsultn-Engineering/sqlgen/datatype"
	"github.com/Konsultn-Engineering/sqlgen/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventsTable(t *testing.T, f *datatype.Factory) *ast.CreateTableStmt {
	t.Helper()
	retention, err := f.YearMonthInterval(datatype.FieldYear, datatype.OptInt{}, datatype.FieldMonth)
	require.NoError(t, err)

	return ast.CreateTable("events",
		ast.PrimaryKeyCol("id", f.BigInt()),
		ast.Col("at", f.TimeStamp(datatype.Int(6), datatype.Bool(true))),
		ast.Col("retention", retention),
		ast.Col("mood", f.UserDefined("mood")),
		ast.Col("label", f.VarChar(datatype.Int(64))),
	)
}

func TestTypeCheckerPostgresAcceptsAll(t *testing.T) {
	d := dialect.NewPostgresDialect()
	f := datatype.NewFactory(d)
	stmt := eventsTable(t, f)

	c := NewTypeChecker(d)
	defer c.Release()

	require.NoError(t, c.Check(stmt))
	types := c.Types()
	require.Len(t, types, 5)
	assert.Same(t, f.BigInt(), types[0])
	assert.Equal(t, datatype.KindInterval, types[2].Kind())
}

func TestTypeCheckerMySQLReportsUnsupported(t *testing.T) {
	d := dialect.NewMySQLDialect()
	f := datatype.NewFactory(d)
	stmt := eventsTable(t, f)

	c := NewTypeChecker(d)
	defer c.Release()

	err := c.Check(stmt)
	require.Error(t, err)

	var unsupported *UnsupportedTypeError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "mysql", unsupported.Dialect)
	assert.Equal(t, "`at`", unsupported.Column)

	msg := err.Error()
	assert.Contains(t, msg, "column `at`: type TIMESTAMP WITH TIME ZONE is not supported")
	assert.Contains(t, msg, "column `retention`: type INTERVAL is not supported")
	assert.Contains(t, msg, "column `mood`: type USER DEFINED mood is not supported")
	assert.NotContains(t, msg, "`label`")
	assert.Len(t, c.Types(), 5)
}

func TestTypeCheckerCasts(t *testing.T) {
	d := dialect.NewTiDBDialect()
	f := datatype.NewFactory(d)
	iv, err := f.DayTimeInterval(datatype.FieldHour, datatype.OptInt{}, datatype.FieldSecond, datatype.Int(2))
	require.NoError(t, err)

	c := NewTypeChecker(d)
	defer c.Release()

	require.NoError(t, c.Check(ast.CastColumn("price", f.Decimal(datatype.Int(8), datatype.Int(2)))))

	err = c.Check(ast.CastValue("01:02:03", iv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tidb: cast to INTERVAL is not supported")
	require.Len(t, c.Types(), 1)
	assert.Same(t, iv, c.Types()[0])
}

func TestTypeCheckerMissingType(t *testing.T) {
	d := dialect.NewPostgresDialect()
	c := NewTypeChecker(d)
	defer c.Release()

	stmt := ast.CreateTable("broken", &ast.ColumnDef{Name: "x"})
	err := c.Check(stmt)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingType))
	assert.Contains(t, err.Error(), `"x"`)
	assert.Empty(t, c.Types())
}

func TestTypeCheckerDefaultExpression(t *testing.T) {
	d := dialect.NewMySQLDialect()
	f := datatype.NewFactory(d)

	col := ast.Col("created", f.Date())
	col.Default = ast.CastValue("2024-01-01", f.TimeStamp(datatype.OptInt{}, datatype.Bool(true)))

	c := NewTypeChecker(d)
	defer c.Release()

	err := c.Check(ast.CreateTable("t", col))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cast to TIMESTAMP")
	assert.Len(t, c.Types(), 2)
}

func TestUnsupportedTypeErrorNamesVariant(t *testing.T) {
	f := datatype.NewFactory(nil)

	tests := []struct {
		name   string
		column string
		dt     datatype.DataType
		want   string
	}{
		{"VarChar", "`label`", f.VarChar(datatype.Int(64)), "x: column `label`: type VARCHAR is not supported"},
		{"Char", "`code`", f.Char(datatype.Int(2)), "x: column `code`: type CHAR is not supported"},
		{"PlainTime", "`t`", f.Time(datatype.OptInt{}, datatype.Bool(false)), "x: column `t`: type TIME is not supported"},
		{"ZonedTime", "`t`", f.Time(datatype.Int(3), datatype.Bool(true)), "x: column `t`: type TIME WITH TIME ZONE is not supported"},
		{"CastVarChar", "", f.VarChar(datatype.OptInt{}), "x: cast to VARCHAR is not supported"},
		{"CastUserDefined", "", f.UserDefined("app.status"), "x: cast to USER DEFINED app.status is not supported"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &UnsupportedTypeError{Dialect: "x", Column: tt.column, Type: tt.dt}
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestTypeCheckerNilStatement(t *testing.T) {
	c := NewTypeChecker(dialect.NewPostgresDialect())
	defer c.Release()

	var stmt *ast.CreateTableStmt
	for name, root := range map[string]ast.Node{"NilInterface": nil, "TypedNil": stmt} {
		t.Run(name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { err = c.Check(root) })
			assert.True(t, errors.Is(err, ErrNilStatement))
			assert.Empty(t, c.Types())
		})
	}

	f := datatype.NewFactory(nil)
	require.NoError(t, c.Check(ast.CreateTable("ok", ast.Col("id", f.BigInt()))))
	assert.Len(t, c.Types(), 1)
}
