package cheatsheet

import (
	"database/sql"
	"fmt"

	"github.com/sql-tutor/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const entryColumns = `id, command, category, syntax, example, COALESCE(description, ''), created_at`

func (s *Store) List() ([]models.CheatSheetEntry, error) {
	rows, err := s.db.Query(
		`SELECT ` + entryColumns + ` FROM cheat_sheet_entries ORDER BY category, command`,
	)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return scanEntries(rows)
}

func (s *Store) ByCategory(category string) ([]models.CheatSheetEntry, error) {
	rows, err := s.db.Query(
		`SELECT `+entryColumns+` FROM cheat_sheet_entries WHERE category = $1 ORDER BY command`,
		category,
	)
	if err != nil {
		return nil, fmt.Errorf("entries by category: %w", err)
	}
	return scanEntries(rows)
}

func (s *Store) Search(term string) ([]models.CheatSheetEntry, error) {
	pattern := "%" + term + "%"
	rows, err := s.db.Query(
		`SELECT `+entryColumns+` FROM cheat_sheet_entries
		 WHERE command ILIKE $1 OR description ILIKE $1 OR example ILIKE $1
		 ORDER BY command`,
		pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]models.CheatSheetEntry, error) {
	defer rows.Close()

	var entries []models.CheatSheetEntry
	for rows.Next() {
		var e models.CheatSheetEntry
		if err := rows.Scan(&e.ID, &e.Command, &e.Category, &e.Syntax,
			&e.Example, &e.Description, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
