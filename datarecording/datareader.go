package datarecording

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// QueryParams selects rows of a table.
type QueryParams struct {
	// Where is a condition with ? placeholders, without the WHERE keyword,
	// for example "Domain = ? AND Kind = ?".
	Where string
	Args  []any

	// Limit of zero returns every row. Offset only applies with a Limit.
	Limit  int
	Offset int

	// OrderBy is a sort clause without the ORDER BY keywords, for example
	// "Time DESC".
	OrderBy string
}

func (p QueryParams) selectSQL(tableName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "SELECT * FROM %s", tableName)
	p.writeWhere(&b)

	if p.OrderBy != "" {
		b.WriteString(" ORDER BY " + p.OrderBy)
	}

	if p.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", p.Limit)

		if p.Offset > 0 {
			fmt.Fprintf(&b, " OFFSET %d", p.Offset)
		}
	}

	return b.String()
}

func (p QueryParams) countSQL(tableName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "SELECT COUNT(*) FROM %s", tableName)
	p.writeWhere(&b)

	return b.String()
}

func (p QueryParams) writeWhere(b *strings.Builder) {
	if p.Where != "" {
		b.WriteString(" WHERE " + p.Where)
	}
}

// DataReader reads a recording back into structs.
type DataReader interface {
	// MapTable binds a table to the struct type its rows are read into.
	MapTable(tableName string, sampleEntry any)

	// ListTables returns the mapped tables, sorted.
	ListTables() []string

	// Query returns pointers to the mapped struct type for the selected
	// rows, together with the number of rows that match Where.
	Query(ctx context.Context, tableName string, params QueryParams) (
		results []any,
		totalCount int,
		err error,
	)

	Close() error
}

type sqliteReader struct {
	db      *sql.DB
	typeMap map[string]reflect.Type
}

// NewReader opens a recording for reading.
func NewReader(dbFilename string) (DataReader, error) {
	db, err := sql.Open("sqlite3", dbFilename)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", dbFilename)
	}

	return NewReaderWithDB(db), nil
}

// NewReaderWithDB creates a DataReader on an open database.
func NewReaderWithDB(db *sql.DB) DataReader {
	return &sqliteReader{
		db:      db,
		typeMap: make(map[string]reflect.Type),
	}
}

func (r *sqliteReader) MapTable(tableName string, sampleEntry any) {
	r.typeMap[tableName] = reflect.TypeOf(sampleEntry)
}

func (r *sqliteReader) ListTables() []string {
	tables := make([]string, 0, len(r.typeMap))
	for name := range r.typeMap {
		tables = append(tables, name)
	}

	sort.Strings(tables)

	return tables
}

func (r *sqliteReader) Query(
	ctx context.Context,
	tableName string,
	params QueryParams,
) ([]any, int, error) {
	entryType, ok := r.typeMap[tableName]
	if !ok {
		return nil, 0, errors.Errorf("table %s is not mapped", tableName)
	}

	var total int

	err := r.db.QueryRowContext(ctx, params.countSQL(tableName),
		params.Args...).Scan(&total)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "count %s", tableName)
	}

	rows, err := r.db.QueryContext(ctx, params.selectSQL(tableName),
		params.Args...)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "query %s", tableName)
	}
	defer rows.Close()

	results, err := scanInto(rows, entryType)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "read %s", tableName)
	}

	return results, total, nil
}

// scanInto reads every row into a new value of entryType. Columns without a
// field of the same name are skipped.
func scanInto(rows *sql.Rows, entryType reflect.Type) ([]any, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var results []any

	for rows.Next() {
		entry := reflect.New(entryType)
		targets := make([]any, len(columns))

		for i, col := range columns {
			field := entry.Elem().FieldByName(col)
			if field.IsValid() && field.CanSet() {
				targets[i] = field.Addr().Interface()
				continue
			}

			var skipped any
			targets[i] = &skipped
		}

		if err := rows.Scan(targets...); err != nil {
			return nil, err
		}

		results = append(results, entry.Interface())
	}

	return results, rows.Err()
}

func (r *sqliteReader) Close() error {
	return r.db.Close()
}
