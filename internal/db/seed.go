package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Option list defaults applied on first run. The status order matters:
// the first entry is the default assigned to every generated row.
var seedOptions = map[string][]string{
	"platform": {"Instagram", "Facebook", "TikTok"},
	"format":   {"Beitrag", "Story", "Reel", "Karussell"},
	"status":   {"in Planung", "in Arbeit", "freigegeben", "veröffentlicht"},
	"topic":    {"Regionales", "Veranstaltungen", "Finanzwissen", "Team & Einblicke", "Nachhaltigkeit"},
}

const (
	seedThemeName    = "Volkach"
	seedThemePrompt  = "Erstelle eine kreative Content-Idee zum Thema {theme} für die Region Volkach für {platform} als {post_type}."
	seedThemeExample = "Führung Volkach\nWanderroute Prichsenstadt"
)

// Seed populates an empty settings store with the default option lists
// and an example theme. A store that already holds any options is left
// untouched.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM list_options").Scan(&count); err != nil {
		return fmt.Errorf("seed check options: %w", err)
	}
	if count > 0 {
		return nil
	}

	for kind, values := range seedOptions {
		for pos, value := range values {
			if _, err := db.Exec(
				`INSERT INTO list_options (kind, value, position) VALUES (?, ?, ?)`,
				kind, value, pos,
			); err != nil {
				return fmt.Errorf("seed %s options: %w", kind, err)
			}
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := db.Exec(
		`INSERT OR IGNORE INTO themes (id, name, prompt, examples, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), seedThemeName, seedThemePrompt, seedThemeExample, now, now,
	); err != nil {
		return fmt.Errorf("seed theme: %w", err)
	}

	return nil
}
