// Package gin provides the HTTP dashboard API.
package gin

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/seolens/seolens"
)

// shutdownTimeout is how long Close waits for in-flight requests.
const shutdownTimeout = 5 * time.Second

// Server serves the dashboard API over HTTP.
type Server struct {
	router *gin.Engine
	server *http.Server

	Audits     seolens.AuditService
	Pages      seolens.PageService
	Duplicates seolens.DuplicateService

	// Ad hoc analysis dependencies, used by POST /api/analyze.
	Fetcher    seolens.Fetcher
	Extractors []seolens.Extractor
	Analyzer   seolens.TextAnalyzer
	Classifier seolens.Classifier
	Ranker     seolens.RelatedRanker

	// RelatedTopN caps the related page list per analysis. Non-positive
	// values use the ranker's default.
	RelatedTopN int
}

// NewServer creates a new Server with all routes registered.
func NewServer() *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{router: gin.New()}
	s.router.Use(gin.Recovery())

	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/api/audits", s.handleListAudits)
	s.router.GET("/api/audits/:id/summary", s.handleAuditSummary)
	s.router.GET("/api/audits/:id/pages", s.handleAuditPages)
	s.router.GET("/api/audits/:id/duplicates", s.handleAuditDuplicates)
	s.router.POST("/api/analyze", s.handleAnalyze)

	return s
}

// ServeHTTP makes the server usable directly as an http.Handler, which the
// tests rely on.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Open begins listening on addr. It blocks until the server stops.
func (s *Server) Open(addr string) error {
	s.server = &http.Server{Addr: addr, Handler: s.router}
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// errorResponse writes the JSON error envelope for a domain error.
func errorResponse(c *gin.Context, err error) {
	code := seolens.ErrorCode(err)
	c.JSON(statusFromCode(code), gin.H{
		"error": gin.H{
			"code":    code,
			"message": seolens.ErrorMessage(err),
		},
	})
}

func statusFromCode(code string) int {
	switch code {
	case seolens.EINVALID:
		return http.StatusBadRequest
	case seolens.ENOTFOUND:
		return http.StatusNotFound
	case seolens.ECONFLICT:
		return http.StatusConflict
	case seolens.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) handleListAudits(c *gin.Context) {
	audits, err := s.Audits.FindAudits(c.Request.Context(), seolens.AuditFilter{})
	if err != nil {
		errorResponse(c, err)
		return
	}
	if audits == nil {
		audits = []*seolens.Audit{}
	}
	c.JSON(http.StatusOK, gin.H{"audits": audits})
}

func (s *Server) handleAuditSummary(c *gin.Context) {
	id := c.Param("id")
	if _, err := s.Audits.FindAuditByID(c.Request.Context(), id); err != nil {
		errorResponse(c, err)
		return
	}

	summary, err := s.Pages.SummarizeAudit(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) handleAuditPages(c *gin.Context) {
	id := c.Param("id")
	filter := seolens.PageFilter{AuditID: &id}

	if quality := c.Query("quality"); quality != "" {
		label := seolens.QualityLabel(quality)
		if !label.Valid() {
			errorResponse(c, seolens.Errorf(seolens.EINVALID, "unknown quality label %q", quality))
			return
		}
		filter.Quality = &label
	}
	if thinParam := c.Query("thin"); thinParam != "" {
		thin, err := strconv.ParseBool(thinParam)
		if err != nil {
			errorResponse(c, seolens.Errorf(seolens.EINVALID, "invalid thin parameter %q", thinParam))
			return
		}
		filter.Thin = &thin
	}
	if offsetParam := c.Query("offset"); offsetParam != "" {
		offset, err := strconv.Atoi(offsetParam)
		if err != nil || offset < 0 {
			errorResponse(c, seolens.Errorf(seolens.EINVALID, "invalid offset parameter %q", offsetParam))
			return
		}
		filter.Offset = offset
	}
	if limitParam := c.Query("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit < 0 {
			errorResponse(c, seolens.Errorf(seolens.EINVALID, "invalid limit parameter %q", limitParam))
			return
		}
		filter.Limit = limit
	}
	if sortBy := c.Query("sort"); sortBy != "" {
		filter.SortBy = seolens.SortOrder(sortBy)
	}

	pages, err := s.Pages.FindPages(c.Request.Context(), filter)
	if err != nil {
		errorResponse(c, err)
		return
	}
	if pages == nil {
		pages = []*seolens.Page{}
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

func (s *Server) handleAuditDuplicates(c *gin.Context) {
	pairs, err := s.Duplicates.FindDuplicatesByAudit(c.Request.Context(), c.Param("id"))
	if err != nil {
		errorResponse(c, err)
		return
	}
	if pairs == nil {
		pairs = []seolens.DuplicatePair{}
	}
	c.JSON(http.StatusOK, gin.H{"duplicates": pairs})
}

// analyzeRequest is the body of POST /api/analyze.
type analyzeRequest struct {
	URL     string `json:"url"`
	AuditID string `json:"auditId"`
}

// analyzeResponse holds a one-off page analysis and, when an audit is given,
// the corpus pages most similar to the analyzed URL.
type analyzeResponse struct {
	URL     string                `json:"url"`
	Title   string                `json:"title"`
	Metrics seolens.TextMetrics   `json:"metrics"`
	Quality seolens.QualityLabel  `json:"quality"`
	Related []seolens.RelatedPage `json:"related"`
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, seolens.Errorf(seolens.EINVALID, "invalid request body: %v", err))
		return
	}
	if req.URL == "" {
		errorResponse(c, seolens.Errorf(seolens.EINVALID, "url is required"))
		return
	}

	ctx := c.Request.Context()

	html, err := s.Fetcher.Fetch(ctx, req.URL)
	if err != nil {
		errorResponse(c, err)
		return
	}

	extracted, err := s.extract(html)
	if err != nil {
		errorResponse(c, err)
		return
	}

	metrics := s.Analyzer.Analyze(extracted.Text)
	resp := analyzeResponse{
		URL:     req.URL,
		Title:   extracted.Title,
		Metrics: metrics,
		Quality: s.Classifier.Classify(metrics),
		Related: []seolens.RelatedPage{},
	}

	if req.AuditID != "" && s.Ranker != nil {
		corpus, err := s.Pages.FindPages(ctx, seolens.PageFilter{AuditID: &req.AuditID})
		if err != nil {
			errorResponse(c, err)
			return
		}
		if related := s.Ranker.Rank(req.URL, extracted.Text, corpus, s.RelatedTopN); related != nil {
			resp.Related = related
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) extract(html string) (*seolens.ExtractResult, error) {
	var lastErr error
	for _, extractor := range s.Extractors {
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
