package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mhennig/kalender/internal/cli/formatter"
	"github.com/mhennig/kalender/internal/domain"
	"github.com/mhennig/kalender/internal/service"
)

// kalenderHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func kalenderHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateDate accepts a YYYY-MM-DD date string.
func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateIntRange accepts an integer within [min, max].
func validateIntRange(min, max int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil || v < min || v > max {
			return fmt.Errorf("enter a number between %d and %d", min, max)
		}
		return nil
	}
}

// validateRequired rejects blank input.
func validateRequired(title string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", title)
		}
		return nil
	}
}

// runThemeForm edits the theme in place through an interactive form.
// Examples are entered one per line.
func runThemeForm(theme *domain.Theme) error {
	examples := packLines(theme.Examples)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Theme Name").
				Placeholder("Volkach").
				Value(&theme.Name).
				Validate(validateRequired("name")),
			huh.NewInput().
				Title("Prompt Template").
				Description("Placeholders: {platform}, {post_type}, {theme}").
				Value(&theme.Prompt).
				Validate(validateRequired("prompt")),
			huh.NewText().
				Title("Example Ideas").
				Description("One idea per line; used when no API key is configured").
				Value(&examples),
		),
	).WithTheme(kalenderHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}
	theme.Examples = splitLines(examples)
	return nil
}

// runGenerateWizard fills in the request fields the flags left empty.
// Frequencies are asked per selected platform.
func runGenerateWizard(req *service.GenerateRequest, platforms []string, aiAvailable bool) error {
	var (
		startStr = req.StartDate.Format("2006-01-02")
		daysStr  = strconv.Itoa(req.NumDays)
		selected []string
	)
	if req.StartDate.IsZero() {
		startStr = time.Now().Format("2006-01-02")
	}

	platformOptions := make([]huh.Option[string], 0, len(platforms))
	for _, p := range platforms {
		opt := huh.NewOption(p, p)
		if _, ok := req.Frequencies[p]; ok || len(req.Frequencies) == 0 {
			opt = opt.Selected(true)
		}
		platformOptions = append(platformOptions, opt)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Customer Name").
				Placeholder("Raiffeisenbank Mainschleife-Steigerwald eG").
				Value(&req.Customer).
				Validate(validateRequired("customer name")),
			huh.NewInput().
				Title("Start Date").
				Description("YYYY-MM-DD").
				Value(&startStr).
				Validate(validateDate),
			huh.NewInput().
				Title("Period (days)").
				Description("30 to 365 days").
				Value(&daysStr).
				Validate(validateIntRange(30, 365)),
			huh.NewMultiSelect[string]().
				Title("Platforms").
				Options(platformOptions...).
				Value(&selected),
		),
	).WithTheme(kalenderHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	req.StartDate, _ = time.Parse("2006-01-02", startStr)
	req.NumDays, _ = strconv.Atoi(daysStr)

	frequencies := make(map[string]int, len(selected))
	for _, platform := range selected {
		freqStr := strconv.Itoa(req.Frequencies[platform])
		if req.Frequencies[platform] == 0 {
			freqStr = "2"
		}
		freqForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title(fmt.Sprintf("Posts per week on %s", platform)).
					Value(&freqStr).
					Validate(validateIntRange(0, 14)),
			),
		).WithTheme(kalenderHuhTheme()).WithShowHelp(false)
		if err := freqForm.Run(); err != nil {
			return err
		}
		frequencies[platform], _ = strconv.Atoi(freqStr)
	}
	req.Frequencies = frequencies

	if aiAvailable && !req.Offline {
		useAI := true
		confirm := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Generate content ideas with AI?").
					Affirmative("Yes").
					Negative("No, use example ideas").
					Value(&useAI),
			),
		).WithTheme(kalenderHuhTheme()).WithShowHelp(false)
		if err := confirm.Run(); err != nil {
			return err
		}
		req.Offline = !useAI
	}

	return nil
}
