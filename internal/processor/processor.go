package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/snonux/kotrans/internal/batch"
	"codeberg.org/snonux/kotrans/internal/cli"
	"codeberg.org/snonux/kotrans/internal/engine"
	"codeberg.org/snonux/kotrans/internal/translation"
)

// stdinName selects standard input as the batch file.
const stdinName = "-"

// Processor handles the command-line translation logic
type Processor struct {
	flags      *cli.Flags
	translator *translation.Translator

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewProcessor creates a new processor writing to the standard streams.
func NewProcessor(flags *cli.Flags, translator *translation.Translator) *Processor {
	return &Processor{
		flags:      flags,
		translator: translator,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

// SetIO replaces the streams used for batch input and all output.
func (p *Processor) SetIO(stdin io.Reader, stdout, stderr io.Writer) {
	p.stdin = stdin
	p.stdout = stdout
	p.stderr = stderr
}

// ProcessSingle translates one input and prints the result. A failed
// translation prints the original text and a warning; it is not an error.
func (p *Processor) ProcessSingle(ctx context.Context, text string) error {
	result := p.translate(ctx, text, p.flags.Comment)

	if p.flags.Detailed {
		return p.printJSON(result)
	}

	if !result.Success && result.Error != "" {
		fmt.Fprintf(p.stderr, "Warning: %s\n", result.Error)
	}
	_, err := fmt.Fprintln(p.stdout, result.TranslatedText)
	return err
}

// ProcessBatch translates every entry of the batch file. Entries that carry
// a translation are added to the dictionary before anything is translated.
func (p *Processor) ProcessBatch(ctx context.Context) error {
	entries, err := p.readBatch()
	if err != nil {
		return err
	}

	// First pass: extend the dictionary with supplied terms
	termCount := 0
	for _, entry := range entries {
		if entry.NeedsTranslation() {
			continue
		}
		if err := p.translator.AddTerm(entry.Text, entry.Translation); err != nil {
			fmt.Fprintf(p.stderr, "Warning: cannot add term '%s': %v\n", entry.Text, err)
			continue
		}
		termCount++
	}

	// Track statistics
	translatedCount := 0
	unchangedCount := 0
	translations := make(map[string]string)

	for _, entry := range entries {
		if !entry.NeedsTranslation() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		result := p.translate(ctx, entry.Text, entry.Comment || p.flags.Comment)
		if p.flags.Detailed {
			if err := p.printJSON(result); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(p.stdout, "%s = %s\n", entry.Text, result.TranslatedText)
		}

		if result.Success {
			translatedCount++
			translations[entry.Text] = result.TranslatedText
		} else {
			unchangedCount++
		}
	}

	// Print summary
	fmt.Fprintf(p.stderr, "\n=== Batch Translation Summary ===\n")
	fmt.Fprintf(p.stderr, "Total entries: %d\n", len(entries))
	fmt.Fprintf(p.stderr, "Terms added: %d\n", termCount)
	fmt.Fprintf(p.stderr, "Translated: %d\n", translatedCount)
	if unchangedCount > 0 {
		fmt.Fprintf(p.stderr, "Unchanged: %d\n", unchangedCount)
	}
	fmt.Fprintf(p.stderr, "=================================\n")

	if p.flags.OutputDir == "" {
		return nil
	}
	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := translation.SaveTranslations(p.flags.OutputDir, translations); err != nil {
		return err
	}
	fmt.Fprintf(p.stderr, "Translations saved to: %s\n", p.flags.OutputDir)
	return nil
}

// ListStrategies prints every registered strategy, or only those able to
// handle text when it is not empty.
func (p *Processor) ListStrategies(text string) error {
	names := p.translator.Strategies()
	header := "Registered strategies (by priority):"
	if text != "" {
		names = p.translator.AvailableStrategies(text)
		header = fmt.Sprintf("Strategies able to translate %q:", text)
	}

	fmt.Fprintln(p.stdout, header)
	if len(names) == 0 {
		fmt.Fprintln(p.stdout, "  none")
		return nil
	}
	for i, name := range names {
		fmt.Fprintf(p.stdout, "  %d. %s\n", i+1, name)
	}
	return nil
}

func (p *Processor) translate(ctx context.Context, text string, isComment bool) engine.Result {
	switch {
	case p.flags.Strategy != "":
		return p.translator.TranslateWithStrategy(ctx, text, p.flags.Strategy)
	case isComment:
		return p.translator.TranslateComment(ctx, text)
	default:
		return p.translator.TranslateDetailed(ctx, text)
	}
}

func (p *Processor) readBatch() ([]batch.Entry, error) {
	if strings.TrimSpace(p.flags.BatchFile) == stdinName {
		return batch.Read(p.stdin)
	}
	return batch.ReadBatchFile(p.flags.BatchFile)
}

func (p *Processor) printJSON(result engine.Result) error {
	enc := json.NewEncoder(p.stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
