// Package persistence keeps the two flat tables on disk: the lot ledger
// and the per-game description templates. Both stores follow the same
// discipline: every mutation is a read-all, mutate, write-all sequence
// executed under the store's lock, and the write replaces the file
// atomically so a failure never leaves a half-written table behind.
package persistence

import (
	"context"
	"encoding/csv"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"tg_ledger/internal/domain"
	"tg_ledger/internal/domain/entity"
	"tg_ledger/pkg/errcodes"
)

// Ledger is the durable table of lots. It is the single shared mutable
// resource of the whole system: the table is rewritten wholesale, so any
// unguarded concurrent writer would silently discard the other's update.
type Ledger struct {
	path string
	mu   sync.Mutex
}

func NewLedger(path string) *Ledger {
	return &Ledger{path: path}
}

// LoadAll returns the full ordered lot table. A missing file is first-run
// empty; every other failure is surfaced as StorageUnavailable instead of
// being conflated with an empty ledger.
func (l *Ledger) LoadAll(_ context.Context) ([]entity.Lot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.loadLocked()
}

// Update runs one exclusive read-modify-write round: fn receives the
// current table and returns the table to persist. The lock covers only
// the file read, fn, and the file write; callers must not do network
// sends inside fn.
func (l *Ledger) Update(_ context.Context, fn func(lots []entity.Lot) ([]entity.Lot, error)) ([]entity.Lot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lots, err := l.loadLocked()
	if err != nil {
		return nil, err
	}

	updated, err := fn(lots)
	if err != nil {
		return nil, err
	}

	if err := writeTable(l.path, ledgerColumns, len(updated), func(i int) []string {
		return lotToRecord(updated[i])
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// Snapshot returns the raw table bytes for export. A missing file exports
// as just the header row.
func (l *Ledger) Snapshot(_ context.Context) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	raw, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []byte(headerLine(ledgerColumns)), nil
	}
	if err != nil {
		return nil, domain.WrapError(err, errcodes.StorageUnavailable, "Хранилище недоступно")
	}

	return raw, nil
}

func (l *Ledger) loadLocked() ([]entity.Lot, error) {
	records, err := readTable(l.path, ledgerColumns)
	if err != nil {
		return nil, err
	}

	lots := make([]entity.Lot, 0, len(records))
	for _, record := range records {
		lot, err := recordToLot(record)
		if err != nil {
			return nil, domain.WrapError(err, errcodes.StorageUnavailable, "Хранилище повреждено")
		}
		lots = append(lots, lot)
	}

	return lots, nil
}

// readTable reads a whole CSV table, validating the header.
func readTable(path string, columns []string) ([][]string, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.WrapError(err, errcodes.StorageUnavailable, "Хранилище недоступно")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(columns)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, domain.WrapError(err, errcodes.StorageUnavailable, "Хранилище повреждено")
	}

	if len(rows) == 0 {
		return nil, nil
	}

	if !slices.Equal(rows[0], columns) {
		return nil, domain.NewError(errcodes.StorageUnavailable, "Хранилище повреждено")
	}

	return rows[1:], nil
}

// writeTable rewrites the whole table through a temp file and rename, so
// the previous version survives any mid-write failure.
func writeTable(path string, columns []string, rows int, record func(i int) []string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.WrapError(err, errcodes.StorageUnavailable, "Хранилище недоступно")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return domain.WrapError(err, errcodes.StorageUnavailable, "Хранилище недоступно")
	}
	defer os.Remove(tmp.Name())

	writer := csv.NewWriter(tmp)

	if err := writer.Write(columns); err != nil {
		tmp.Close()
		return domain.WrapError(err, errcodes.StorageUnavailable, "Хранилище недоступно")
	}

	for i := range rows {
		if err := writer.Write(record(i)); err != nil {
			tmp.Close()
			return domain.WrapError(err, errcodes.StorageUnavailable, "Хранилище недоступно")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return domain.WrapError(err, errcodes.StorageUnavailable, "Хранилище недоступно")
	}

	if err := tmp.Close(); err != nil {
		return domain.WrapError(err, errcodes.StorageUnavailable, "Хранилище недоступно")
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return domain.WrapError(err, errcodes.StorageUnavailable, "Хранилище недоступно")
	}

	return nil
}

func headerLine(columns []string) string {
	line := ""
	for i, column := range columns {
		if i > 0 {
			line += ","
		}
		line += column
	}
	return line + "\n"
}
