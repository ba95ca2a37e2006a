package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"spesegen/internal/core"

	_ "modernc.org/sqlite"
)

const insertExpenseSQL = `INSERT INTO expenses
    (Date, Category, Payment_Mode, Description, Amount_Paid, Cashback, Month)
    VALUES (?, ?, ?, ?, ?, ?, ?)`

// SelectAllSQL reads every row of the expenses table.
const SelectAllSQL = "SELECT * FROM expenses"

// Store is the adapter over the local SQLite file. The file is opened and
// closed inside every operation; a Store holds no connection between calls.
type Store struct {
	path string
}

func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: empty database path", core.ErrStoreUnavailable)
	}
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("%w: create db directory: %w", core.ErrStoreUnavailable, err)
		}
	}
	return &Store{path: dbPath}, nil
}

func (s *Store) open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite database: %w", core.ErrStoreUnavailable, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping database: %w", core.ErrStoreUnavailable, err)
	}
	return db, nil
}

// EnsureSchema creates the expenses table if it does not exist yet. Calling
// it repeatedly is a no-op.
func (s *Store) EnsureSchema(ctx context.Context) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("%w: %w", core.ErrStoreUnavailable, err)
	}

	slog.DebugContext(ctx, "Schema ensured", "db_path", s.path)
	return nil
}

// Append inserts all records in one transaction. Either every row becomes
// visible or none does.
func (s *Store) Append(ctx context.Context, records []core.Expense) error {
	if len(records) == 0 {
		return nil
	}

	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	start := time.Now()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return core.NewQueryError(insertExpenseSQL, fmt.Errorf("begin transaction: %w", err))
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertExpenseSQL)
	if err != nil {
		return core.NewQueryError(insertExpenseSQL, err)
	}
	defer stmt.Close()

	for _, e := range records {
		_, err := stmt.ExecContext(ctx,
			e.Date.String(),
			e.Category,
			e.PaymentMode,
			e.Description,
			core.Float(e.AmountPaid),
			core.Float(e.Cashback),
			e.Month,
		)
		if err != nil {
			return core.NewQueryError(insertExpenseSQL, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return core.NewQueryError(insertExpenseSQL, fmt.Errorf("commit: %w", err))
	}

	slog.InfoContext(ctx, "Expenses appended",
		"count", len(records),
		"db_path", s.path,
		"duration_ms", time.Since(start).Milliseconds())

	return nil
}

// Query runs an interactive statement. Only single SELECT (or WITH ... SELECT)
// statements are accepted, and the connection is switched to query_only so
// the engine refuses writes that slip past the keyword check.
func (s *Store) Query(ctx context.Context, sqlText string) (core.Table, error) {
	if err := CheckReadOnly(sqlText); err != nil {
		return core.Table{}, core.NewQueryError(sqlText, err)
	}

	db, err := s.open(ctx)
	if err != nil {
		return core.Table{}, err
	}
	defer db.Close()

	conn, err := db.Conn(ctx)
	if err != nil {
		return core.Table{}, fmt.Errorf("%w: acquire connection: %w", core.ErrStoreUnavailable, err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "PRAGMA query_only = ON"); err != nil {
		return core.Table{}, core.NewQueryError(sqlText, fmt.Errorf("enable query_only: %w", err))
	}

	rows, err := conn.QueryContext(ctx, sqlText)
	if err != nil {
		return core.Table{}, core.NewQueryError(sqlText, err)
	}
	defer rows.Close()

	return scanTable(sqlText, rows)
}

// QueryTrusted runs sqlText with full privileges. It backs the fixed report
// catalog and must never receive user input.
func (s *Store) QueryTrusted(ctx context.Context, sqlText string) (core.Table, error) {
	db, err := s.open(ctx)
	if err != nil {
		return core.Table{}, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, sqlText)
	if err != nil {
		return core.Table{}, core.NewQueryError(sqlText, err)
	}
	defer rows.Close()

	return scanTable(sqlText, rows)
}

// All returns every stored expense row.
func (s *Store) All(ctx context.Context) (core.Table, error) {
	return s.QueryTrusted(ctx, SelectAllSQL)
}

func scanTable(sqlText string, rows *sql.Rows) (core.Table, error) {
	cols, err := rows.Columns()
	if err != nil {
		return core.Table{}, core.NewQueryError(sqlText, err)
	}

	t := core.Table{Columns: cols, Rows: [][]any{}}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return core.Table{}, core.NewQueryError(sqlText, err)
		}
		for i, v := range values {
			values[i] = normalize(v)
		}
		t.Rows = append(t.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return core.Table{}, core.NewQueryError(sqlText, err)
	}

	return t, nil
}

func normalize(v any) any {
	switch x := v.(type) {
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(time.RFC3339)
	case bool:
		if x {
			return int64(1)
		}
		return int64(0)
	default:
		return v
	}
}
