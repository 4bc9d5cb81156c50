package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mhennig/kalender/internal/cli/formatter"
	"github.com/mhennig/kalender/internal/domain"
	"github.com/mhennig/kalender/internal/export"
	"github.com/mhennig/kalender/internal/service"
)

const (
	minDays = 30
	maxDays = 365

	previewLimit    = 10
	progressBarSize = 24
)

// generateOptions holds the generate command's flag values.
type generateOptions struct {
	customer  string
	start     string
	days      int
	freqs     []string
	outDir    string
	outFormat string
	offline   bool
	requireAI bool
}

func (o *generateOptions) install(fs *pflag.FlagSet) {
	fs.StringVar(&o.customer, "customer", "", "Customer name embedded in the export file name")
	fs.StringVar(&o.start, "start", "", "Start date (YYYY-MM-DD), defaults to today")
	fs.IntVar(&o.days, "days", 90, fmt.Sprintf("Planning period in days (%d-%d)", minDays, maxDays))
	fs.StringArrayVar(&o.freqs, "freq", nil, "Posts per week for a platform (platform=N, repeatable)")
	fs.StringVar(&o.outDir, "out", ".", "Output directory")
	fs.StringVar(&o.outFormat, "format", "xlsx", "Export format (xlsx|csv|both)")
	fs.BoolVar(&o.offline, "offline", false, "Use theme example ideas instead of AI generation")
	fs.BoolVar(&o.requireAI, "ai", false, "Fail instead of falling back when AI generation is unavailable")
}

func newGenerateCmd(app *App) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a content calendar and export it",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			if opts.offline && opts.requireAI {
				return fmt.Errorf("--offline and --ai are mutually exclusive")
			}
			if opts.outFormat != "xlsx" && opts.outFormat != "csv" && opts.outFormat != "both" {
				return fmt.Errorf("invalid --format %q, expected xlsx, csv or both", opts.outFormat)
			}

			frequencies, err := parseFrequencies(opts.freqs)
			if err != nil {
				return err
			}

			req := service.GenerateRequest{
				Customer:    opts.customer,
				NumDays:     opts.days,
				Frequencies: frequencies,
				Offline:     opts.offline,
				RequireAI:   opts.requireAI,
			}
			if opts.start != "" {
				req.StartDate, err = time.Parse("2006-01-02", opts.start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", opts.start, err)
				}
			}

			needsWizard := req.Customer == "" || len(req.Frequencies) == 0
			if needsWizard {
				if !app.interactive() {
					return fmt.Errorf("--customer and at least one --freq are required in non-interactive mode")
				}
				platforms, err := app.Settings.Options(ctx, domain.KindPlatform)
				if err != nil {
					return err
				}
				if err := runGenerateWizard(&req, platforms, app.LLMClient != nil); err != nil {
					return err
				}
			}
			if req.StartDate.IsZero() {
				req.StartDate = startOfDay(time.Now())
			}
			if req.NumDays < minDays || req.NumDays > maxDays {
				return fmt.Errorf("--days must be between %d and %d, got %d", minDays, maxDays, req.NumDays)
			}

			req.Progress = func(done, total int) {
				fmt.Fprintf(out, "\r%s", formatter.ProgressLine(done, total, progressBarSize))
			}

			result, err := app.Calendar.Generate(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprint(out, "\r\033[K")

			if len(result.Rows) == 0 {
				for _, w := range result.Warnings {
					fmt.Fprintln(out, formatter.StyleYellow.Render("WARNUNG: "+w))
				}
				return nil
			}

			files, err := writeCalendarFiles(opts.outDir, opts.outFormat, req.Customer, result)
			if err != nil {
				return err
			}

			fmt.Fprint(out, formatter.FormatCalendarPreview(result.Rows, previewLimit))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatGenerateSummary(len(result.Rows), files, result.Warnings))
			return nil
		},
	}

	opts.install(cmd.Flags())

	return cmd
}

// parseFrequencies parses repeated platform=N flag values.
func parseFrequencies(entries []string) (map[string]int, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	frequencies := make(map[string]int, len(entries))
	for _, entry := range entries {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("invalid --freq %q, expected platform=N", entry)
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid --freq %q, expected a non-negative count", entry)
		}
		frequencies[parts[0]] = n
	}
	return frequencies, nil
}

func writeCalendarFiles(dir, format, customer string, result *service.GenerateResult) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	var files []string
	write := func(ext string, fn func(f *os.File) error) error {
		path := filepath.Join(dir, export.Filename(customer, ext))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		if err := fn(f); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		files = append(files, path)
		return nil
	}

	if format == "xlsx" || format == "both" {
		if err := write("xlsx", func(f *os.File) error {
			return export.WriteXLSX(f, result.Rows, result.Settings)
		}); err != nil {
			return nil, err
		}
	}
	if format == "csv" || format == "both" {
		if err := write("csv", func(f *os.File) error {
			return export.WriteCSV(f, result.Rows)
		}); err != nil {
			return nil, err
		}
	}
	return files, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
