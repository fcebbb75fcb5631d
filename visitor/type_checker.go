package visitor

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/Konsultn-Engineering/sqlgen/ast"
	"github.com/Konsultn-Engineering/sqlgen/datatype"
	"github.com/Konsultn-Engineering/sqlgen/dialect"
)

var (
	// ErrMissingType is reported for a column definition without a data type.
	ErrMissingType = errors.New("column has no data type")
	// ErrNilStatement is returned by Check when there is nothing to walk.
	ErrNilStatement = errors.New("nil statement")
)

// UnsupportedTypeError reports a type the target dialect cannot declare.
type UnsupportedTypeError struct {
	Dialect string
	Column  string // quoted column name, empty for cast targets
	Type    datatype.DataType
}

func (e *UnsupportedTypeError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s: cast to %s is not supported", e.Dialect, datatype.Name(e.Type))
	}
	return fmt.Sprintf("%s: column %s: type %s is not supported", e.Dialect, e.Column, datatype.Name(e.Type))
}

var checkerPool = sync.Pool{
	New: func() any {
		return &TypeChecker{
			types: make([]datatype.DataType, 0, 8),
		}
	},
}

// TypeChecker walks a statement, collecting every data type it references
// and reporting the ones the dialect cannot declare. It renders nothing.
type TypeChecker struct {
	dialect dialect.Dialect
	types   []datatype.DataType
	errs    []error
}

func NewTypeChecker(d dialect.Dialect) *TypeChecker {
	c := checkerPool.Get().(*TypeChecker)
	c.dialect = d
	c.Reset()
	return c
}

func (c *TypeChecker) Release() {
	c.dialect = nil
	c.Reset()
	checkerPool.Put(c)
}

func (c *TypeChecker) Reset() {
	clear(c.types)
	c.types = c.types[:0]
	c.errs = nil
}

// Check walks root and returns every problem found, joined.
func (c *TypeChecker) Check(root ast.Node) error {
	c.Reset()
	if isNilNode(root) {
		return ErrNilStatement
	}
	if err := root.Accept(c); err != nil {
		return err
	}
	return errors.Join(c.errs...)
}

// isNilNode catches both a nil interface and a typed nil such as a
// (*ast.CreateTableStmt)(nil).
func isNilNode(n ast.Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Types returns the data types seen by the last Check, in traversal order.
// The slice is only valid until the next Check or Release.
func (c *TypeChecker) Types() []datatype.DataType {
	return c.types
}

func (c *TypeChecker) record(column string, dt datatype.DataType) {
	if dt == nil {
		c.errs = append(c.errs, fmt.Errorf("%s: %w", column, ErrMissingType))
		return
	}
	c.types = append(c.types, dt)
	if !c.dialect.Supports(dt) {
		c.errs = append(c.errs, &UnsupportedTypeError{
			Dialect: c.dialect.Name(),
			Column:  column,
			Type:    dt,
		})
	}
}

func (c *TypeChecker) VisitCreateTable(stmt *ast.CreateTableStmt) error {
	if stmt.Table != nil {
		if err := stmt.Table.Accept(c); err != nil {
			return err
		}
	}
	for _, col := range stmt.Columns {
		if err := col.Accept(c); err != nil {
			return err
		}
	}
	return nil
}

func (c *TypeChecker) VisitColumnDef(col *ast.ColumnDef) error {
	c.record(c.dialect.QuoteIdentifier(col.Name), col.Type)
	if col.Default != nil {
		return col.Default.Accept(c)
	}
	return nil
}

func (c *TypeChecker) VisitCast(cast *ast.CastExpr) error {
	c.record("", cast.Target)
	if cast.Expr != nil {
		return cast.Expr.Accept(c)
	}
	return nil
}

func (c *TypeChecker) VisitColumn(*ast.Column) error { return nil }
func (c *TypeChecker) VisitTable(*ast.Table) error   { return nil }
func (c *TypeChecker) VisitValue(*ast.Value) error   { return nil }

var _ ast.Visitor = (*TypeChecker)(nil)
