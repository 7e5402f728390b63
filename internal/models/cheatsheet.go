package models

import "time"

type CheatSheetEntry struct {
	ID          int64     `json:"id"`
	Command     string    `json:"command"`
	Category    string    `json:"category"`
	Syntax      string    `json:"syntax"`
	Example     string    `json:"example"`
	Description string    `json:"description,omitempty"`
	Tags        string    `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type DynamicExampleRequest struct {
	Command  string `json:"command"`
	Syntax   string `json:"syntax,omitempty"`
	Category string `json:"category,omitempty"`
}

type DynamicExample struct {
	Scenario         string `json:"scenario"`
	BusinessContext  string `json:"business_context"`
	TableDescription string `json:"table_description"`
	SQLExample       string `json:"sql_example"`
	Explanation      string `json:"explanation"`
	SampleData       string `json:"sample_data"`
}
