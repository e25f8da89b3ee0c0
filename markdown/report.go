// Package markdown renders audit summary reports as markdown documents.
package markdown

import (
	"context"
	"fmt"
	"io"
	"strconv"

	md "github.com/nao1215/markdown"
	"github.com/seolens/seolens"
)

// maxListedPages limits how many thin pages the report itemizes.
const maxListedPages = 20

// Reporter writes a markdown summary of an audit: corpus overview, quality
// distribution, thin pages, and near-duplicate pairs.
type Reporter struct {
	Audits     seolens.AuditService
	Pages      seolens.PageService
	Duplicates seolens.DuplicateService

	// ThinWordLimit is the word count threshold used when listing thin
	// pages. Non-positive values fall back to seolens.DefaultThinWordLimit.
	ThinWordLimit int
}

// WriteReport renders the report for an audit to w.
func (r *Reporter) WriteReport(ctx context.Context, auditID string, w io.Writer) error {
	audit, err := r.Audits.FindAuditByID(ctx, auditID)
	if err != nil {
		return err
	}

	summary, err := r.Pages.SummarizeAudit(ctx, auditID)
	if err != nil {
		return fmt.Errorf("summarize audit: %w", err)
	}

	thin := true
	thinPages, err := r.Pages.FindPages(ctx, seolens.PageFilter{
		AuditID: &auditID,
		Thin:    &thin,
		SortBy:  seolens.SortByWordCount,
	})
	if err != nil {
		return fmt.Errorf("load thin pages: %w", err)
	}

	pairs, err := r.Duplicates.FindDuplicatesByAudit(ctx, auditID)
	if err != nil {
		return fmt.Errorf("load duplicate pairs: %w", err)
	}

	doc := md.NewMarkdown(w)

	doc.H1("Content Audit: " + audit.Name)
	doc.PlainText("")

	r.writeOverview(doc, audit, summary)
	r.writeQuality(doc, summary)
	r.writeThinPages(doc, thinPages)
	r.writeDuplicates(doc, pairs)

	return doc.Build()
}

func (r *Reporter) writeOverview(doc *md.Markdown, audit *seolens.Audit, summary *seolens.AuditSummary) {
	doc.H2("Overview")
	doc.PlainText("")
	doc.Table(md.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", audit.SourceURL},
			{"Pages", strconv.Itoa(summary.Pages)},
			{"Average words", strconv.FormatFloat(summary.AvgWords, 'f', 0, 64)},
			{"Thin pages", strconv.Itoa(summary.ThinPages)},
			{"Duplicate pairs", strconv.Itoa(summary.DuplicatePairs)},
		},
	})
	doc.PlainText("")

	switch {
	case summary.Pages == 0:
		doc.Note("No pages have been analyzed for this audit yet.")
	case summary.ThinPages > 0 || summary.DuplicatePairs > 0:
		doc.Warningf(
			"%d thin page(s) and %d duplicate pair(s) need attention.",
			summary.ThinPages, summary.DuplicatePairs,
		)
	default:
		doc.Tip("No thin content or near-duplicates detected.")
	}
	doc.PlainText("")
}

func (r *Reporter) writeQuality(doc *md.Markdown, summary *seolens.AuditSummary) {
	doc.H2("Quality Distribution")
	doc.PlainText("")

	labels := []seolens.QualityLabel{seolens.QualityHigh, seolens.QualityMedium, seolens.QualityLow}
	rows := make([][]string, 0, len(labels))
	for _, label := range labels {
		rows = append(rows, []string{string(label), strconv.Itoa(summary.Quality[string(label)])})
	}
	doc.Table(md.TableSet{
		Header: []string{"Quality", "Pages"},
		Rows:   rows,
	})
	doc.PlainText("")
}

func (r *Reporter) writeThinPages(doc *md.Markdown, pages []*seolens.Page) {
	doc.H2("Thin Pages")
	doc.PlainText("")

	if len(pages) == 0 {
		doc.PlainText("No thin pages found.")
		doc.PlainText("")
		return
	}

	listed := pages
	if len(listed) > maxListedPages {
		listed = listed[:maxListedPages]
	}

	rows := make([][]string, len(listed))
	for i, page := range listed {
		rows[i] = []string{
			page.URL,
			strconv.Itoa(page.Metrics.WordCount),
			string(page.Quality),
		}
	}
	doc.Table(md.TableSet{
		Header: []string{"URL", "Words", "Quality"},
		Rows:   rows,
	})
	if len(pages) > maxListedPages {
		doc.PlainTextf("...and %d more.", len(pages)-maxListedPages)
	}
	doc.PlainText("")
}

func (r *Reporter) writeDuplicates(doc *md.Markdown, pairs []seolens.DuplicatePair) {
	doc.H2("Near-Duplicate Pairs")
	doc.PlainText("")

	if len(pairs) == 0 {
		doc.PlainText("No near-duplicate pairs found.")
		doc.PlainText("")
		return
	}

	rows := make([][]string, len(pairs))
	for i, pair := range pairs {
		rows[i] = []string{
			pair.URLA,
			pair.URLB,
			fmt.Sprintf("%.0f%%", pair.Similarity*100),
		}
	}
	doc.Table(md.TableSet{
		Header: []string{"URL A", "URL B", "Similarity"},
		Rows:   rows,
	})
	doc.PlainText("")
}
