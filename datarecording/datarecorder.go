// Package datarecording stores what the display core did in SQLite databases.
package datarecording

import (
	"database/sql"
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/fatih/structs"
	"github.com/pkg/errors"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// DataRecorder buffers rows of flat structs and writes them to tables.
type DataRecorder interface {
	// CreateTable creates a table whose columns are the exported fields of
	// sampleEntry. Entries that are not flat structs panic.
	CreateTable(tableName string, sampleEntry any)

	// InsertData buffers an entry of the type the table was created with.
	InsertData(tableName string, entry any)

	// ListTables returns the tables in creation order.
	ListTables() []string

	// Flush writes the buffered entries in one transaction.
	Flush()

	// Close flushes and closes the database. Later calls do nothing.
	Close() error
}

// DefaultBatchSize is the number of buffered entries that triggers a flush.
const DefaultBatchSize = 100000

// New creates a DataRecorder that writes to path.sqlite3. An empty path picks
// a unique name. An existing file is never overwritten.
func New(path string) DataRecorder {
	if path == "" {
		path = "dsisim_recording_" + xid.New().String()
	}

	filename := path + ".sqlite3"
	if _, err := os.Stat(filename); err == nil {
		panic(errors.Errorf("file %s already exists", filename))
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(errors.Wrapf(err, "open %s", filename))
	}

	fmt.Fprintf(os.Stderr, "Recording to %s\n", filename)

	return NewWithDB(db)
}

// NewWithDB creates a DataRecorder on an open database.
func NewWithDB(db *sql.DB) DataRecorder {
	w := &sqliteWriter{
		db:        db,
		batchSize: DefaultBatchSize,
		tables:    make(map[string]*table),
	}

	atexit.Register(w.Flush)

	return w
}

type table struct {
	name      string
	entryType reflect.Type
	insertSQL string
	pending   [][]any
}

type sqliteWriter struct {
	db *sql.DB

	lock      sync.Mutex
	order     []string
	tables    map[string]*table
	batchSize int
	buffered  int
	closed    bool
}

var storableKinds = map[reflect.Kind]bool{
	reflect.Bool:    true,
	reflect.Int:     true,
	reflect.Int8:    true,
	reflect.Int16:   true,
	reflect.Int32:   true,
	reflect.Int64:   true,
	reflect.Uint:    true,
	reflect.Uint8:   true,
	reflect.Uint16:  true,
	reflect.Uint32:  true,
	reflect.Uint64:  true,
	reflect.Float32: true,
	reflect.Float64: true,
	reflect.String:  true,
}

func columnsOf(entry any) ([]string, error) {
	if !structs.IsStruct(entry) {
		return nil, errors.Errorf("entry %T is not a struct", entry)
	}

	fields := structs.Fields(entry)
	columns := make([]string, 0, len(fields))

	for _, f := range fields {
		if !f.IsExported() {
			continue
		}

		if !storableKinds[f.Kind()] {
			return nil, errors.Errorf("field %s of %T cannot be stored",
				f.Name(), entry)
		}

		columns = append(columns, f.Name())
	}

	return columns, nil
}

func (w *sqliteWriter) CreateTable(tableName string, sampleEntry any) {
	columns, err := columnsOf(sampleEntry)
	if err != nil {
		panic(err)
	}

	w.lock.Lock()
	defer w.lock.Unlock()

	w.mustExec(fmt.Sprintf("CREATE TABLE %s (\n\t%s\n);",
		tableName, strings.Join(columns, ",\n\t")))

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")

	w.tables[tableName] = &table{
		name:      tableName,
		entryType: reflect.TypeOf(sampleEntry),
		insertSQL: fmt.Sprintf("INSERT INTO %s VALUES (%s)",
			tableName, placeholders),
	}
	w.order = append(w.order, tableName)
}

func (w *sqliteWriter) InsertData(tableName string, entry any) {
	w.lock.Lock()
	defer w.lock.Unlock()

	t, exists := w.tables[tableName]
	if !exists {
		panic(fmt.Sprintf("table %s does not exist", tableName))
	}

	if reflect.TypeOf(entry) != t.entryType {
		panic(fmt.Sprintf("entry %T does not fit table %s", entry, tableName))
	}

	t.pending = append(t.pending, structs.Values(entry))

	w.buffered++
	if w.buffered >= w.batchSize {
		w.flush()
	}
}

func (w *sqliteWriter) ListTables() []string {
	w.lock.Lock()
	defer w.lock.Unlock()

	return append([]string(nil), w.order...)
}

func (w *sqliteWriter) Flush() {
	w.lock.Lock()
	defer w.lock.Unlock()

	w.flush()
}

func (w *sqliteWriter) flush() {
	if w.buffered == 0 || w.closed {
		return
	}

	tx, err := w.db.Begin()
	if err != nil {
		panic(errors.Wrap(err, "begin flush"))
	}

	for _, name := range w.order {
		t := w.tables[name]
		if len(t.pending) == 0 {
			continue
		}

		if err := writeRows(tx, t); err != nil {
			_ = tx.Rollback()
			panic(err)
		}

		t.pending = nil
	}

	if err := tx.Commit(); err != nil {
		panic(errors.Wrap(err, "commit flush"))
	}

	w.buffered = 0
}

func writeRows(tx *sql.Tx, t *table) error {
	stmt, err := tx.Prepare(t.insertSQL)
	if err != nil {
		return errors.Wrapf(err, "prepare insert into %s", t.name)
	}
	defer stmt.Close()

	for _, row := range t.pending {
		if _, err := stmt.Exec(row...); err != nil {
			return errors.Wrapf(err, "insert into %s", t.name)
		}
	}

	return nil
}

func (w *sqliteWriter) Close() error {
	w.lock.Lock()
	defer w.lock.Unlock()

	if w.closed {
		return nil
	}

	w.flush()
	w.closed = true

	return w.db.Close()
}

func (w *sqliteWriter) mustExec(query string) {
	if _, err := w.db.Exec(query); err != nil {
		panic(errors.Wrapf(err, "execute %q", query))
	}
}
