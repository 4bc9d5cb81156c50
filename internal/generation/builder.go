package generation

import (
	"context"
	"strings"

	"github.com/mhennig/kalender/internal/domain"
)

// FallbackContent is used whenever no content can be produced for a slot,
// either because text generation failed after retries or because a theme
// has no usable example ideas.
const FallbackContent = "Idee konnte nicht automatisch generiert werden."

// Rand supplies indices for the random theme, format and example choices.
// Production code passes a math/rand source; tests substitute a scripted
// sequence to assert exact output rows.
type Rand interface {
	Intn(n int) int
}

// TextGenerator produces content for a fully substituted prompt.
// A nil generator switches the builder to example-based content.
type TextGenerator interface {
	GenerateIdea(ctx context.Context, prompt string) (string, error)
}

// ProgressFunc receives the running row count for user feedback.
// It has no effect on control flow.
type ProgressFunc func(done, total int)

// BuildPrompt substitutes the slot values into a theme's prompt template.
// All occurrences of each placeholder are replaced; the tokens do not
// overlap, so substitution order is irrelevant.
func BuildPrompt(template, platform, postType, topic string) string {
	return strings.NewReplacer(
		"{platform}", platform,
		"{post_type}", postType,
		"{theme}", topic,
	).Replace(template)
}

// Builder resolves allocated slots into display rows. It is a stateful
// fold over the slot sequence: the topic rotation index is shared across
// all slots and advances in allocation order.
type Builder struct {
	settings *domain.Settings
	rng      Rand
	gen      TextGenerator

	topicIndex int
}

// NewBuilder creates a Builder over the given settings snapshot.
func NewBuilder(settings *domain.Settings, rng Rand, gen TextGenerator) *Builder {
	return &Builder{settings: settings, rng: rng, gen: gen}
}

// BuildRow resolves a single slot. Topic assignment is round-robin over
// the topic list; theme and content format are chosen uniformly at
// random, independently per slot. A generation failure never propagates:
// the row degrades to FallbackContent and processing continues.
func (b *Builder) BuildRow(ctx context.Context, slot domain.Slot) domain.Row {
	topic := b.settings.Topics[b.topicIndex%len(b.settings.Topics)]
	b.topicIndex++

	theme := b.settings.Themes[b.rng.Intn(len(b.settings.Themes))]
	format := b.settings.Formats[b.rng.Intn(len(b.settings.Formats))]

	_, week := slot.Date.ISOWeek()

	return domain.Row{
		Date:          slot.Date,
		ISOWeek:       week,
		WeekdayName:   domain.WeekdayName(slot.Date),
		Platform:      slot.Platform,
		Topic:         topic,
		ContentFormat: format,
		Content:       b.content(ctx, theme, slot.Platform, format, topic),
		Status:        b.settings.DefaultStatus(),
	}
}

// BuildRows resolves all slots in order and reports progress after each
// completed row.
func (b *Builder) BuildRows(ctx context.Context, slots []domain.Slot, progress ProgressFunc) []domain.Row {
	rows := make([]domain.Row, 0, len(slots))
	for _, slot := range slots {
		rows = append(rows, b.BuildRow(ctx, slot))
		if progress != nil {
			progress(len(rows), len(slots))
		}
	}
	return rows
}

func (b *Builder) content(ctx context.Context, theme *domain.Theme, platform, format, topic string) string {
	if b.gen != nil {
		prompt := BuildPrompt(theme.Prompt, platform, format, topic)
		text, err := b.gen.GenerateIdea(ctx, prompt)
		if err != nil {
			return FallbackContent
		}
		return text
	}

	examples := theme.TrimmedExamples()
	if len(examples) == 0 {
		return FallbackContent
	}
	return examples[b.rng.Intn(len(examples))]
}
