// Package fs provides CSV import and export of audit data.
package fs

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/seolens/seolens"
)

// Export file names, written into the target directory.
const (
	ContentFileName    = "extracted_content.csv"
	MetricsFileName    = "metrics.csv"
	DuplicatesFileName = "duplicates.csv"
)

// Exporter writes an audit's pages and duplicate pairs as CSV files.
type Exporter struct {
	Pages      seolens.PageService
	Duplicates seolens.DuplicateService

	// ThinWordLimit is the word count threshold used for the is_thin column.
	// Non-positive values fall back to seolens.DefaultThinWordLimit.
	ThinWordLimit int
}

// ExportAudit writes extracted_content.csv, metrics.csv, and duplicates.csv
// for the audit into dir. Each file is written atomically: content goes to a
// temporary file that is renamed into place only after a complete write.
func (e *Exporter) ExportAudit(ctx context.Context, auditID, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	pages, err := e.Pages.FindPages(ctx, seolens.PageFilter{AuditID: &auditID})
	if err != nil {
		return fmt.Errorf("load pages: %w", err)
	}

	pairs, err := e.Duplicates.FindDuplicatesByAudit(ctx, auditID)
	if err != nil {
		return fmt.Errorf("load duplicate pairs: %w", err)
	}

	if err := writeCSVAtomic(filepath.Join(dir, ContentFileName), contentRecords(pages)); err != nil {
		return err
	}
	if err := writeCSVAtomic(filepath.Join(dir, MetricsFileName), e.metricsRecords(pages)); err != nil {
		return err
	}
	return writeCSVAtomic(filepath.Join(dir, DuplicatesFileName), duplicateRecords(pairs))
}

func contentRecords(pages []*seolens.Page) [][]string {
	records := [][]string{{"url", "title", "body_text", "word_count"}}
	for _, page := range pages {
		records = append(records, []string{
			page.URL,
			page.Title,
			page.BodyText,
			strconv.Itoa(page.Metrics.WordCount),
		})
	}
	return records
}

func (e *Exporter) metricsRecords(pages []*seolens.Page) [][]string {
	records := [][]string{{"url", "word_count", "sentence_count", "flesch_reading_ease", "is_thin", "quality"}}
	for _, page := range pages {
		records = append(records, []string{
			page.URL,
			strconv.Itoa(page.Metrics.WordCount),
			strconv.Itoa(page.Metrics.SentenceCount),
			strconv.FormatFloat(page.Metrics.ReadingEase, 'f', 2, 64),
			strconv.FormatBool(page.Metrics.Thin(e.ThinWordLimit)),
			string(page.Quality),
		})
	}
	return records
}

func duplicateRecords(pairs []seolens.DuplicatePair) [][]string {
	records := [][]string{{"url_a", "url_b", "similarity"}}
	for _, pair := range pairs {
		records = append(records, []string{
			pair.URLA,
			pair.URLB,
			strconv.FormatFloat(pair.Similarity, 'f', 4, 64),
		})
	}
	return records
}

// writeCSVAtomic writes records to path via a temp file and rename, so a
// partial write never replaces an existing export.
func writeCSVAtomic(path string, records [][]string) error {
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}
