package domain

import (
	"fmt"
	"strings"
	"time"
)

// OptionKind identifies one of the editable option lists in the settings store.
type OptionKind string

const (
	KindPlatform OptionKind = "platform"
	KindFormat   OptionKind = "format"
	KindStatus   OptionKind = "status"
	KindTopic    OptionKind = "topic"
)

// ValidOptionKinds is the canonical set of option list kinds.
var ValidOptionKinds = map[OptionKind]bool{
	KindPlatform: true,
	KindFormat:   true,
	KindStatus:   true,
	KindTopic:    true,
}

// Theme is a named prompt template plus fallback example ideas.
// The template may contain the placeholders {platform}, {post_type}
// and {theme}, which are substituted per slot during generation.
type Theme struct {
	ID        string
	Name      string
	Prompt    string
	Examples  []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TrimmedExamples returns the theme's examples with whitespace trimmed
// and empty entries dropped.
func (t *Theme) TrimmedExamples() []string {
	out := make([]string, 0, len(t.Examples))
	for _, e := range t.Examples {
		e = strings.TrimSpace(e)
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}

// Validate checks that the theme has a name and a prompt template.
func (t *Theme) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("theme name is required")
	}
	if strings.TrimSpace(t.Prompt) == "" {
		return fmt.Errorf("theme %q: prompt template is required", t.Name)
	}
	return nil
}

// Slot is an allocated (date, platform) pair awaiting content.
// Slots are immutable once produced by the allocator.
type Slot struct {
	Date     time.Time
	Platform string
}

// Row is one line of the generated content calendar.
type Row struct {
	Date          time.Time
	ISOWeek       int
	WeekdayName   string
	Platform      string
	Topic         string
	ContentFormat string
	Content       string
	Status        string
}

// FormattedDate returns the row date in the day.month.year display format.
func (r *Row) FormattedDate() string {
	return r.Date.Format("02.01.2006")
}

// Settings is a read-only snapshot of the option lists and themes used
// for one generation pass. The first status is the default assigned to
// every generated row.
type Settings struct {
	Platforms []string
	Themes    []*Theme
	Formats   []string
	Statuses  []string
	Topics    []string
}

// DefaultStatus returns the status assigned to generated rows.
func (s *Settings) DefaultStatus() string {
	if len(s.Statuses) == 0 {
		return ""
	}
	return s.Statuses[0]
}

// Validate checks that every list required for generation is non-empty.
// All problems are reported at once so the user can fix them in one go.
func (s *Settings) Validate() error {
	var missing []string
	if len(s.Platforms) == 0 {
		missing = append(missing, "platforms")
	}
	if len(s.Themes) == 0 {
		missing = append(missing, "themes")
	}
	if len(s.Formats) == 0 {
		missing = append(missing, "content formats")
	}
	if len(s.Statuses) == 0 {
		missing = append(missing, "statuses")
	}
	if len(s.Topics) == 0 {
		missing = append(missing, "topics")
	}
	if len(missing) > 0 {
		return fmt.Errorf("settings incomplete: %s must not be empty", strings.Join(missing, ", "))
	}
	return nil
}
