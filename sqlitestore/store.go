// Package sqlitestore is a SQLite-backed attribute store implementing the
// provider batch-executor contract.
//
// It stores contacts in the provider's flat row shape: one contacts table for
// parent records and one data table holding kind-tagged attribute rows, with
// the generic data column layout of the wire contract. Apply commits a whole
// operation batch in a single transaction, resolving positional
// back-references to real row identifiers; on any failure nothing is visible.
//
// SQLite access uses github.com/mattn/go-sqlite3 (CGO required).
package sqlitestore

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/spachava753/rolodex/contact"
	"github.com/spachava753/rolodex/convert"
	"github.com/spachava753/rolodex/provider"
)

// ErrorCode classifies store errors.
type ErrorCode string

const (
	// ErrorCodeBatch indicates a malformed operation batch (bad back-reference
	// or a child insert with no parent).
	ErrorCodeBatch ErrorCode = "batch"
	// ErrorCodeStore indicates a storage failure.
	ErrorCodeStore ErrorCode = "store"
)

// Error is a typed package error for store operations.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error returns the formatted error message.
func (e *Error) Error() string {
	if e == nil {
		return "sqlitestore: <nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("sqlitestore: %s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("sqlitestore: %s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

func batchErr(message string) error {
	return &Error{Code: ErrorCodeBatch, Message: message}
}

func storeErr(message string, err error) error {
	return &Error{Code: ErrorCodeStore, Message: message, Err: err}
}

const schema = `
CREATE TABLE IF NOT EXISTS contacts (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	account_type  TEXT NOT NULL DEFAULT '',
	account_name  TEXT NOT NULL DEFAULT '',
	lookup        TEXT NOT NULL DEFAULT '',
	display_name  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS data (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	contact_id  INTEGER NOT NULL REFERENCES contacts(id),
	mimetype    TEXT NOT NULL,
	data1       TEXT,
	data2       TEXT,
	data3       TEXT,
	data4       TEXT,
	data5       TEXT,
	data6       TEXT,
	data7       TEXT,
	data8       TEXT,
	data9       TEXT,
	data10      TEXT,
	data15      BLOB
);

CREATE INDEX IF NOT EXISTS idx_data_contact ON data(contact_id);
`

// dataColumns is the insert/select order of the generic data columns.
var dataColumns = []string{
	provider.KeyData1,
	provider.KeyData2,
	provider.KeyData3,
	provider.KeyData4,
	provider.KeyData5,
	provider.KeyData6,
	provider.KeyData7,
	provider.KeyData8,
	provider.KeyData9,
	provider.KeyData10,
}

// Store is a SQLite-backed attribute store. It satisfies provider.Executor.
type Store struct {
	db *sql.DB
}

var _ provider.Executor = (*Store)(nil)

// Open opens (creating if needed) the store at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, storeErr("path is required", nil)
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", strings.ReplaceAll(path, " ", "%20"))
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, storeErr("opening database failed", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, storeErr("connecting to database failed", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, storeErr("initializing schema failed", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Apply commits an operation batch in one transaction and returns the
// committed identifiers aligned index-by-index with ops.
//
// Child inserts resolve their back-reference to the real identifier assigned
// to the referenced parent insert. The parent's display name is refreshed
// from the batch's structured-name row when one is present. On any failure
// the transaction rolls back and none of the batch's effects are visible.
func (s *Store) Apply(ops []provider.Operation) ([]string, error) {
	if len(ops) == 0 {
		return []string{}, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, storeErr("beginning transaction failed", err)
	}
	defer tx.Rollback()

	ids := make([]string, len(ops))
	parentRowIDs := map[int]int64{}

	for i, op := range ops {
		if op.Parent {
			result, err := tx.Exec(
				`INSERT INTO contacts (account_type, account_name, display_name) VALUES (?, ?, ?)`,
				op.Values[provider.KeyAccountType],
				op.Values[provider.KeyAccountName],
				displayNameFromBatch(ops),
			)
			if err != nil {
				return nil, storeErr("inserting contact failed", err)
			}
			rowID, err := result.LastInsertId()
			if err != nil {
				return nil, storeErr("reading contact id failed", err)
			}
			parentRowIDs[i] = rowID
			ids[i] = fmt.Sprintf("%d", rowID)
			continue
		}

		parentID, ok := parentRowIDs[int(op.ParentRef)]
		if !ok {
			return nil, batchErr(fmt.Sprintf("operation %d references %d, which is not an earlier parent insert", i, op.ParentRef))
		}

		columns := []string{"contact_id", "mimetype"}
		args := []any{parentID, string(op.Kind)}
		for _, column := range dataColumns {
			if value, exists := op.Values[column]; exists {
				columns = append(columns, column)
				args = append(args, value)
			}
		}
		if len(op.Blob) > 0 {
			columns = append(columns, provider.KeyData15)
			args = append(args, op.Blob)
		}

		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
		result, err := tx.Exec(
			fmt.Sprintf(`INSERT INTO data (%s) VALUES (%s)`, strings.Join(columns, ", "), placeholders),
			args...,
		)
		if err != nil {
			return nil, storeErr("inserting data row failed", err)
		}
		rowID, err := result.LastInsertId()
		if err != nil {
			return nil, storeErr("reading data row id failed", err)
		}
		ids[i] = fmt.Sprintf("%d", rowID)
	}

	if err := tx.Commit(); err != nil {
		return nil, storeErr("committing batch failed", err)
	}
	return ids, nil
}

// displayNameFromBatch derives the contact-level display name from the
// batch's structured-name insert: the explicit display value when present,
// otherwise given plus family.
func displayNameFromBatch(ops []provider.Operation) string {
	for _, op := range ops {
		if op.Kind != provider.KindName {
			continue
		}
		if display := op.Values[provider.KeyNameDisplay]; display != "" {
			return display
		}
		parts := make([]string, 0, 2)
		if given := op.Values[provider.KeyNameGiven]; given != "" {
			parts = append(parts, given)
		}
		if family := op.Values[provider.KeyNameFamily]; family != "" {
			parts = append(parts, family)
		}
		return strings.Join(parts, " ")
	}
	return ""
}

// Rows returns the attribute rows for the given contact ids, projected to the
// requested fields. A nil fields slice requests everything readable.
//
// Rows come back ordered by contact id then row id, so rows for the same
// contact are contiguous and in insertion order, as folding requires.
func (s *Store) Rows(contactIDs []string, fields []contact.Field) ([]provider.Row, error) {
	if len(contactIDs) == 0 {
		return []provider.Row{}, nil
	}
	projection := convert.Plan(fields)

	selects := make([]string, 0, len(projection.Columns))
	for _, column := range projection.Columns {
		expr, ok := columnExprs[column]
		if !ok {
			expr = "COALESCE(d." + column + ", '')"
		}
		selects = append(selects, expr)
	}

	args := make([]any, 0, len(contactIDs)+len(projection.Kinds))
	where := "d.contact_id IN (" + placeholderList(len(contactIDs)) + ")"
	for _, id := range contactIDs {
		args = append(args, id)
	}
	if len(projection.Kinds) > 0 {
		where += " AND d.mimetype IN (" + placeholderList(len(projection.Kinds)) + ")"
		for _, kind := range projection.Kinds {
			args = append(args, string(kind))
		}
	}

	query := fmt.Sprintf(`
SELECT %s
FROM data d
JOIN contacts c ON c.id = d.contact_id
WHERE %s
ORDER BY d.contact_id, d.id`,
		strings.Join(selects, ", "), where)

	dbRows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, storeErr("querying rows failed", err)
	}
	defer dbRows.Close()

	rows := make([]provider.Row, 0, 32)
	for dbRows.Next() {
		values := make([]any, len(projection.Columns))
		pointers := make([]any, len(values))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := dbRows.Scan(pointers...); err != nil {
			return nil, storeErr("scanning row failed", err)
		}

		row := provider.Row{Values: map[string]string{}}
		for i, column := range projection.Columns {
			switch column {
			case provider.KeyRowID:
				row.ID = scanString(values[i])
			case provider.KeyContactID:
				row.ContactID = scanString(values[i])
			case provider.KeyDisplayName:
				row.DisplayName = scanString(values[i])
			case provider.KeyMimetype:
				row.Kind = provider.Kind(scanString(values[i]))
			case provider.KeyLookup:
				// Bookkeeping only; folding does not consume it.
			case provider.KeyPhotoBlob:
				if blob, ok := values[i].([]byte); ok && len(blob) > 0 {
					row.Blob = append([]byte(nil), blob...)
				}
			default:
				if value := scanString(values[i]); value != "" {
					row.Values[column] = value
				}
			}
		}
		rows = append(rows, row)
	}
	if err := dbRows.Err(); err != nil {
		return nil, storeErr("iterating rows failed", err)
	}
	return rows, nil
}

// columnExprs maps projected bookkeeping columns onto their table expressions.
var columnExprs = map[string]string{
	provider.KeyRowID:       "d.id",
	provider.KeyContactID:   "d.contact_id",
	provider.KeyLookup:      "COALESCE(c.lookup, '')",
	provider.KeyDisplayName: "COALESCE(c.display_name, '')",
	provider.KeyMimetype:    "d.mimetype",
	provider.KeyPhotoBlob:   "d.data15",
}

// Insert converts doc into an operation batch for the given account namespace
// and applies it, returning the committed contact id.
func (s *Store) Insert(accountType string, accountName string, doc contact.Document) (string, error) {
	ops := convert.BuildOps(accountType, accountName, doc)
	ids, err := s.Apply(ops)
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

// Get reads the given contacts back as canonical documents, projected to the
// requested fields. Contacts with no stored attribute rows are absent from
// the result.
func (s *Store) Get(contactIDs []string, fields []contact.Field) (map[string]contact.Document, error) {
	rows, err := s.Rows(contactIDs, fields)
	if err != nil {
		return nil, err
	}
	return convert.Fold(rows), nil
}

func placeholderList(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func scanString(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case []byte:
		return string(typed)
	case string:
		return typed
	default:
		return fmt.Sprint(typed)
	}
}
