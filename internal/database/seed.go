package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/sql-tutor/backend/internal/catalog"
	"github.com/sql-tutor/backend/internal/models"
)

// Seed upserts the built-in learning modules, curated questions, and
// cheat sheet reference entries. Safe to run on every startup.
func Seed(db *sql.DB, cat *catalog.Catalog) error {
	if err := seedModules(db, cat); err != nil {
		return err
	}
	if err := seedQuestions(db, cat); err != nil {
		return err
	}
	return seedCheatSheet(db)
}

func seedModules(db *sql.DB, cat *catalog.Catalog) error {
	for _, m := range cat.Modules() {
		_, err := db.Exec(
			`INSERT INTO learning_modules (id, name, description) VALUES ($1, $2, $3)
			 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description`,
			m.ID, m.Name, m.Description,
		)
		if err != nil {
			return fmt.Errorf("seed module %d: %w", m.ID, err)
		}
	}
	return nil
}

func seedQuestions(db *sql.DB, cat *catalog.Catalog) error {
	for _, m := range cat.Modules() {
		for _, difficulty := range []models.Difficulty{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard} {
			for i, tpl := range cat.Templates(m.ID, difficulty) {
				key := fmt.Sprintf("%d_%s_curated_%d", m.ID, difficulty, i+1)
				hints, err := json.Marshal(tpl.Hints)
				if err != nil {
					return fmt.Errorf("marshal hints for %s: %w", key, err)
				}
				_, err = db.Exec(
					`INSERT INTO questions (question_key, module_id, difficulty, question, expected_sql, hints, source)
					 VALUES ($1, $2, $3, $4, $5, $6, 'curated')
					 ON CONFLICT (question_key) DO UPDATE SET
					     question = EXCLUDED.question,
					     expected_sql = EXCLUDED.expected_sql,
					     hints = EXCLUDED.hints`,
					key, m.ID, string(difficulty), tpl.Question, tpl.ExpectedSQL, hints,
				)
				if err != nil {
					return fmt.Errorf("seed question %s: %w", key, err)
				}
			}
		}
	}
	return nil
}

var cheatSheetSeed = []models.CheatSheetEntry{
	{
		Category:    "Basic Queries",
		Command:     "SELECT",
		Syntax:      "SELECT column1, column2 FROM table_name WHERE condition;",
		Example:     "SELECT name, email FROM customers WHERE city = 'New York';",
		Description: "Retrieve rows from a table, optionally filtered by a condition",
	},
	{
		Category:    "Data Modification",
		Command:     "UPDATE",
		Syntax:      "UPDATE table_name SET column1 = value1 WHERE condition;",
		Example:     "UPDATE products SET price = 29.99 WHERE product_id = 123;",
		Description: "Change values in existing rows that match a condition",
	},
	{
		Category:    "Table Creation",
		Command:     "CREATE TABLE",
		Syntax:      "CREATE TABLE table_name (column1 datatype, column2 datatype);",
		Example:     "CREATE TABLE users (id INT PRIMARY KEY, name VARCHAR(100), email VARCHAR(255));",
		Description: "Define a new table with typed columns",
	},
	{
		Category:    "Joins",
		Command:     "INNER JOIN",
		Syntax:      "SELECT * FROM table1 INNER JOIN table2 ON table1.id = table2.foreign_id;",
		Example:     "SELECT c.name, o.total FROM customers c INNER JOIN orders o ON c.id = o.customer_id;",
		Description: "Combine rows from two tables where the join condition matches",
	},
	{
		Category:    "Aggregation",
		Command:     "GROUP BY",
		Syntax:      "SELECT column, COUNT(*) FROM table_name GROUP BY column;",
		Example:     "SELECT category, AVG(price) FROM products GROUP BY category;",
		Description: "Summarize rows into groups for aggregate functions",
	},
	{
		Category:    "Subqueries",
		Command:     "Subquery",
		Syntax:      "SELECT * FROM table_name WHERE column IN (SELECT column FROM other_table);",
		Example:     "SELECT * FROM products WHERE category_id IN (SELECT id FROM categories WHERE active = 1);",
		Description: "Nest a query inside another query's condition",
	},
}

func seedCheatSheet(db *sql.DB) error {
	for _, entry := range cheatSheetSeed {
		_, err := db.Exec(
			`INSERT INTO cheat_sheet_entries (command, category, syntax, example, description)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (command) DO UPDATE SET
			     category = EXCLUDED.category,
			     syntax = EXCLUDED.syntax,
			     example = EXCLUDED.example,
			     description = EXCLUDED.description`,
			entry.Command, entry.Category, entry.Syntax, entry.Example, entry.Description,
		)
		if err != nil {
			return fmt.Errorf("seed cheat sheet %q: %w", entry.Command, err)
		}
	}
	return nil
}
