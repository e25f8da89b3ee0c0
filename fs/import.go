package fs

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/seolens/seolens"
)

// Importer analyzes offline HTML corpora from CSV files, running the same
// extract/analyze/classify pipeline as a crawl but without fetching.
type Importer struct {
	Extractors []seolens.Extractor // tried in order until one yields text
	Analyzer   seolens.TextAnalyzer
	Classifier seolens.Classifier
	Pages      seolens.PageService
}

// ImportResult holds the outcome of a CSV import.
type ImportResult struct {
	Saved  int
	Failed int
}

// ImportFile imports a CSV file from disk. See Import for the format.
func (i *Importer) ImportFile(ctx context.Context, auditID, path string) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return i.Import(ctx, auditID, f)
}

// Import reads a CSV corpus with header `url,html_content` and saves an
// analyzed page per row. A row that fails extraction or saving is counted
// and skipped; a malformed header or unreadable CSV aborts with EINVALID.
func (i *Importer) Import(ctx context.Context, auditID string, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	header, err := reader.Read()
	if err != nil {
		return nil, seolens.Errorf(seolens.EINVALID, "read CSV header: %v", err)
	}
	if len(header) != 2 || header[0] != "url" || header[1] != "html_content" {
		return nil, seolens.Errorf(seolens.EINVALID, "CSV header must be url,html_content")
	}

	var result ImportResult
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, seolens.Errorf(seolens.EINVALID, "read CSV row: %v", err)
		}

		if err := i.importRow(ctx, auditID, record[0], record[1]); err != nil {
			result.Failed++
			continue
		}
		result.Saved++
	}

	return &result, nil
}

func (i *Importer) importRow(ctx context.Context, auditID, url, html string) error {
	extracted, err := extract(i.Extractors, html)
	if err != nil {
		return err
	}

	metrics := i.Analyzer.Analyze(extracted.Text)
	page := &seolens.Page{
		AuditID:  auditID,
		URL:      url,
		Title:    extracted.Title,
		BodyText: extracted.Text,
		Metrics:  metrics,
		Quality:  i.Classifier.Classify(metrics),
	}
	return i.Pages.CreatePage(ctx, page)
}

func extract(extractors []seolens.Extractor, html string) (*seolens.ExtractResult, error) {
	var lastErr error
	for _, extractor := range extractors {
		extracted, err := extractor.Extract(html)
		if err == nil {
			return extracted, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = seolens.Errorf(seolens.EINTERNAL, "no extractors configured")
	}
	return nil, lastErr
}
