package sqlite

import (
	"context"
	"database/sql"

	"todo-cli/internal/errors"
	"todo-cli/internal/storage"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// HandleDatabaseError converts database errors to structured app errors
func HandleDatabaseError(operation string, err error) error {
	return errors.NewStorageError(operation, err)
}

// ScanRecord scans a single task record from a database row
func ScanRecord(scanner Scanner) (storage.Record, error) {
	var record storage.Record
	err := scanner.Scan(&record.ID, &record.Title, &record.IsCompleted)
	return record, err
}

// ScanRecords scans every remaining row. The result is never nil.
func ScanRecords(rows Rows) ([]storage.Record, error) {
	records := []storage.Record{}
	for rows.Next() {
		record, err := ScanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// QueryRecords executes a query that returns task rows and scans them
func QueryRecords(ctx context.Context, db *sql.DB, query string, args ...interface{}) ([]storage.Record, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, HandleDatabaseError("query tasks", err)
	}
	defer rows.Close()

	records, err := ScanRecords(rows)
	if err != nil {
		return nil, HandleDatabaseError("scan tasks", err)
	}

	return records, nil
}
