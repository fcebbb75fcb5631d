package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Konsultn-Engineering/sqlgen/cache"
	"github.com/Konsultn-Engineering/sqlgen/datatype"
	"github.com/Konsultn-Engineering/sqlgen/dialect"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const DefaultCacheSize = 256

var (
	// ErrUnknownType is returned when a user-defined type is not in pg_type.
	ErrUnknownType = errors.New("unknown type")
	// ErrInvalidTypeName is returned for type references that cannot be
	// parsed as an optionally schema-qualified identifier.
	ErrInvalidTypeName = errors.New("invalid type name")
)

// Querier is the part of a pgx connection the resolver needs. Both
// *pgxpool.Pool and *pgx.Conn satisfy it.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	_ Querier = (*pgxpool.Pool)(nil)
	_ Querier = (*pgx.Conn)(nil)
)

// Resolver maps data types to OIDs, consulting the catalog for user-defined
// types and caching what it finds.
type Resolver struct {
	q       Querier
	cache   *cache.TypeCache
	dialect dialect.Dialect
}

// NewResolver builds a resolver. A nil cache gets one of DefaultCacheSize.
func NewResolver(q Querier, c *cache.TypeCache) (*Resolver, error) {
	if c == nil {
		var err error
		if c, err = cache.NewTypeCache(DefaultCacheSize); err != nil {
			return nil, err
		}
	}
	return &Resolver{q: q, cache: c, dialect: dialect.NewPostgresDialect()}, nil
}

func (r *Resolver) Resolve(ctx context.Context, dt datatype.DataType) (uint32, error) {
	if oid, ok := OID(dt); ok {
		return oid, nil
	}
	u, ok := dt.(datatype.UserDefinedType)
	if !ok {
		return 0, fmt.Errorf("resolve %v: %w", dt, ErrUnknownType)
	}
	return r.resolveName(ctx, u.TextualContent())
}

func (r *Resolver) resolveName(ctx context.Context, name string) (uint32, error) {
	schema, typ, err := splitQualified(name)
	if err != nil {
		return 0, fmt.Errorf("resolve %q: %w", name, err)
	}
	key := schema + "\x00" + typ
	if oid, ok := r.cache.Get(key); ok {
		return oid, nil
	}

	var oid uint32
	if schema == "" {
		err = r.q.QueryRow(ctx, r.byNameQuery(), typ).Scan(&oid)
	} else {
		err = r.q.QueryRow(ctx, r.byQualifiedNameQuery(), schema, typ).Scan(&oid)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("resolve %q: %w: %w", name, ErrUnknownType, err)
	}
	if err != nil {
		return 0, fmt.Errorf("resolve %q: %w", name, err)
	}

	r.cache.Set(key, oid)
	return oid, nil
}

func (r *Resolver) byNameQuery() string {
	return "SELECT t.oid FROM pg_catalog.pg_type t WHERE t.typname = " + r.dialect.Placeholder(1) +
		" AND pg_catalog.pg_type_is_visible(t.oid)"
}

func (r *Resolver) byQualifiedNameQuery() string {
	return "SELECT t.oid FROM pg_catalog.pg_type t" +
		" JOIN pg_catalog.pg_namespace n ON n.oid = t.typnamespace" +
		" WHERE n.nspname = " + r.dialect.Placeholder(1) +
		" AND t.typname = " + r.dialect.Placeholder(2)
}

// splitQualified splits a type reference into its optional schema and its
// name, folding them the way the server folds identifiers: unquoted parts
// are lower-cased, double-quoted parts keep their case with "" unescaped.
func splitQualified(name string) (schema, typ string, err error) {
	parts, err := identifierParts(strings.TrimSpace(name))
	if err != nil {
		return "", "", err
	}
	switch len(parts) {
	case 1:
		return "", parts[0], nil
	case 2:
		return parts[0], parts[1], nil
	default:
		return "", "", fmt.Errorf("%w: %d name parts", ErrInvalidTypeName, len(parts))
	}
}

func identifierParts(name string) ([]string, error) {
	var (
		parts  []string
		cur    strings.Builder
		quoted bool
	)
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '.':
			if cur.Len() == 0 && !quoted {
				return nil, fmt.Errorf("%w: empty name part", ErrInvalidTypeName)
			}
			parts = append(parts, cur.String())
			cur.Reset()
			quoted = false
		case quoted:
			return nil, fmt.Errorf("%w: text after quoted identifier", ErrInvalidTypeName)
		case c == '"' && cur.Len() == 0:
			end, err := closingQuote(name, i+1)
			if err != nil {
				return nil, err
			}
			if end == i+1 {
				return nil, fmt.Errorf("%w: empty quoted identifier", ErrInvalidTypeName)
			}
			cur.WriteString(strings.ReplaceAll(name[i+1:end], `""`, `"`))
			i = end
			quoted = true
		case c == '"':
			return nil, fmt.Errorf("%w: stray quote", ErrInvalidTypeName)
		default:
			cur.WriteByte(toLowerASCII(c))
		}
	}
	if cur.Len() == 0 {
		return nil, fmt.Errorf("%w: empty name part", ErrInvalidTypeName)
	}
	return append(parts, cur.String()), nil
}

// closingQuote returns the index of the quote ending an identifier whose
// body starts at from.
func closingQuote(name string, from int) (int, error) {
	for i := from; i < len(name); i++ {
		if name[i] != '"' {
			continue
		}
		if i+1 < len(name) && name[i+1] == '"' {
			i++
			continue
		}
		return i, nil
	}
	return 0, fmt.Errorf("%w: unterminated quoted identifier", ErrInvalidTypeName)
}

func toLowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
