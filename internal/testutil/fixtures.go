package testutil

import "github.com/mhennig/kalender/internal/domain"

// SampleSettings returns an in-memory settings snapshot matching the
// seeded defaults, for tests that don't need a database.
func SampleSettings() *domain.Settings {
	return &domain.Settings{
		Platforms: []string{"Instagram", "Facebook", "TikTok"},
		Themes: []*domain.Theme{
			{
				ID:       "theme-volkach",
				Name:     "Volkach",
				Prompt:   "Erstelle eine kreative Content-Idee zum Thema {theme} für {platform} als {post_type}.",
				Examples: []string{"Führung Volkach", "Wanderroute Prichsenstadt"},
			},
		},
		Formats:  []string{"Beitrag", "Story", "Reel", "Karussell"},
		Statuses: []string{"in Planung", "in Arbeit", "freigegeben", "veröffentlicht"},
		Topics:   []string{"Regionales", "Veranstaltungen", "Finanzwissen", "Team & Einblicke", "Nachhaltigkeit"},
	}
}
