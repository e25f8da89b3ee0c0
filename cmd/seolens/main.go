package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/seolens/seolens"
	"github.com/seolens/seolens/crawl"
	"github.com/seolens/seolens/fs"
	"github.com/seolens/seolens/gin"
	"github.com/seolens/seolens/gofeed"
	"github.com/seolens/seolens/goquery"
	"github.com/seolens/seolens/markdown"
	"github.com/seolens/seolens/quality"
	"github.com/seolens/seolens/sqlite"
	"github.com/seolens/seolens/textstat"
	"github.com/seolens/seolens/tfidf"
	"github.com/seolens/seolens/trafilatura"
	"github.com/seolens/seolens/yaml"

	seohttp "github.com/seolens/seolens/http"
	seoslog "github.com/seolens/seolens/slog"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Config file path. Missing files yield default settings.
	ConfigPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	AuditService     seolens.AuditService
	PageService      seolens.PageService
	DuplicateService seolens.DuplicateService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		ConfigPath: defaultConfigPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := yaml.LoadConfig(m.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config %q: %w", m.ConfigPath, err)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Config: cfg,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("seolens"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'seolens --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SEOLENS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.AuditService = sqlite.NewAuditService(m.DB)
	m.PageService = sqlite.NewPageService(m.DB, cfg.ThinWordLimit)
	m.DuplicateService = sqlite.NewDuplicateService(m.DB)
	deps.DB = m.DB
	deps.Audits = m.AuditService
	deps.Pages = m.PageService
	deps.Duplicates = m.DuplicateService

	logger := newLogger(stderr)
	deps.Sitemaps = seoslog.NewLoggingSitemapService(seohttp.NewSitemapService(nil), logger)
	deps.Feeds = seoslog.NewLoggingFeedService(gofeed.NewFeedService(), logger)

	// The analysis stack is shared by crawling, importing, and ad hoc
	// analysis. The selector cascade runs first; trafilatura picks up
	// pages the cascade cannot handle.
	deps.Analyzer = textstat.NewAnalyzer()
	deps.Classifier = quality.NewClassifier(cfg.Quality, cfg.ThinWordLimit)
	deps.Ranker = tfidf.NewRanker()
	deps.Extractors = []seolens.Extractor{
		newCascadeExtractor(cfg),
		trafilatura.NewExtractor(),
	}

	switch cmd {
	case "add":
		if !cli.Add.Preview {
			fetcher := seoslog.NewLoggingFetcher(seohttp.NewFetcher(), logger)
			defer fetcher.Close()

			deps.Pipeline = &crawl.Pipeline{
				Sitemaps:    deps.Sitemaps,
				Feeds:       deps.Feeds,
				Fetcher:     fetcher,
				Extractors:  deps.Extractors,
				Analyzer:    deps.Analyzer,
				Classifier:  deps.Classifier,
				Pages:       deps.Pages,
				Duplicates:  deps.Duplicates,
				Detector:    tfidf.NewDetector(cfg.DuplicateThreshold),
				RateLimiter: crawl.NewDomainLimiter(cfg.RequestsPerSecond),
				Concurrency: cfg.Concurrency,
			}
		}
	case "analyze":
		deps.Fetcher = seoslog.NewLoggingFetcher(seohttp.NewFetcher(), logger)
	case "import":
		deps.Importer = &fs.Importer{
			Extractors: deps.Extractors,
			Analyzer:   deps.Analyzer,
			Classifier: deps.Classifier,
			Pages:      deps.Pages,
		}
	case "export":
		deps.Exporter = &fs.Exporter{
			Pages:         deps.Pages,
			Duplicates:    deps.Duplicates,
			ThinWordLimit: cfg.ThinWordLimit,
		}
	case "report":
		deps.Reporter = &markdown.Reporter{
			Audits:        deps.Audits,
			Pages:         deps.Pages,
			Duplicates:    deps.Duplicates,
			ThinWordLimit: cfg.ThinWordLimit,
		}
	case "serve":
		server := gin.NewServer()
		server.Audits = deps.Audits
		server.Pages = deps.Pages
		server.Duplicates = deps.Duplicates
		server.Fetcher = seoslog.NewLoggingFetcher(seohttp.NewFetcher(), logger)
		server.Extractors = deps.Extractors
		server.Analyzer = deps.Analyzer
		server.Classifier = deps.Classifier
		server.Ranker = deps.Ranker
		server.RelatedTopN = cfg.RelatedTopN
		deps.Server = server
	}

	if deps.Fetcher != nil {
		defer deps.Fetcher.Close()
	}

	return kongCtx.Run(deps)
}

// newLogger builds the operational logger. Fetch and discovery logs are
// noise during interactive use, so they only appear when SEOLENS_DEBUG
// is set.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("SEOLENS_DEBUG") != "" {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newCascadeExtractor builds the selector cascade extractor, honoring any
// selector overrides from the config file.
func newCascadeExtractor(cfg seolens.Config) seolens.Extractor {
	if len(cfg.Selectors) > 0 {
		return goquery.NewExtractorWithSelectors(cfg.Selectors)
	}
	return goquery.NewExtractor()
}

func defaultDBPath() string {
	if path := os.Getenv("SEOLENS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "seolens.db"
	}
	dir := filepath.Join(home, ".seolens")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "seolens.db")
}

func defaultConfigPath() string {
	if path := os.Getenv("SEOLENS_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "seolens.yml"
	}
	return filepath.Join(home, ".seolens", "config.yml")
}
