package entities

import "time"

const BackupVersion = "1.0"

// Backup is the full export document. Collections are copied verbatim.
type Backup struct {
	Timestamp     time.Time       `json:"timestamp"`
	Version       string          `json:"version"`
	Clients       []Client        `json:"clients"`
	Projects      []Project       `json:"projects"`
	Materials     []Material      `json:"materials"`
	MaterialUsage []MaterialUsage `json:"materialUsage"`
	Transactions  []Transaction   `json:"transactions"`
	Quotes        []Quote         `json:"quotes"`
	Invoices      []Invoice       `json:"invoices"`
	Settings      AppSettings     `json:"settings"`
}
