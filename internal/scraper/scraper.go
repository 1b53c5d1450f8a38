// Package scraper fetches full article pages and extracts readable text,
// for feeds that only syndicate a teaser paragraph.
package scraper

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"newsbrief/internal/ratelimit"
)

// maxContentLength caps extracted text; paragraphs are kept whole.
const maxContentLength = 4000

// Article is the extracted page content.
type Article struct {
	Title   string
	Content string
	URL     string
}

// Scraper pulls article bodies over HTTP.
type Scraper struct {
	client  *http.Client
	limiter *ratelimit.HostLimiter
	log     *slog.Logger
}

// New builds a scraper with the given timeout and optional host limiter.
func New(timeout time.Duration, limiter *ratelimit.HostLimiter, log *slog.Logger) *Scraper {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &Scraper{
		client:  &http.Client{Timeout: timeout},
		limiter: limiter,
		log:     log,
	}
}

// Extract fetches one URL and returns its readable text.
func (s *Scraper) Extract(url string) (*Article, error) {
	if s.limiter != nil {
		s.limiter.Wait(url)
	}

	resp, err := s.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("load page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	content := extractContent(doc)
	if content == "" {
		return nil, fmt.Errorf("no readable content")
	}

	return &Article{
		Title:   extractTitle(doc),
		Content: content,
		URL:     url,
	}, nil
}

// ExtractAll fetches up to maxArticles URLs with bounded concurrency and
// returns the successful extractions keyed by URL.
func (s *Scraper) ExtractAll(urls []string, concurrency, maxArticles int) map[string]*Article {
	if concurrency <= 0 {
		concurrency = 1
	}
	if maxArticles > 0 && len(urls) > maxArticles {
		urls = urls[:maxArticles]
	}

	result := make(map[string]*Article, len(urls))
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)

	for _, url := range urls {
		wg.Add(1)
		sem <- struct{}{}
		go func(url string) {
			defer wg.Done()
			defer func() { <-sem }()

			article, err := s.Extract(url)
			if err != nil {
				s.log.Debug("article extraction failed", "url", url, "error", err)
				return
			}
			if len(article.Content) < 100 {
				return
			}
			mu.Lock()
			result[url] = article
			mu.Unlock()
		}(url)
	}
	wg.Wait()

	s.log.Info("full content extracted", "ok", len(result), "requested", len(urls))
	return result
}

// extractContent tries common article body selectors and keeps the first
// one that produces enough paragraphs.
func extractContent(doc *goquery.Document) string {
	selectors := []string{
		"article p",
		".article-body p",
		".article-content p",
		".post-content p",
		".entry-content p",
		".content p",
		"main p",
		"p",
	}

	var paragraphs []string
	for _, selector := range selectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			text := strings.TrimSpace(sel.Text())
			if len(text) > 20 {
				paragraphs = append(paragraphs, text)
			}
		})
		if len(paragraphs) >= 3 {
			break
		}
		paragraphs = paragraphs[:0]
	}

	return clampParagraphs(paragraphs)
}

func extractTitle(doc *goquery.Document) string {
	for _, selector := range []string{"h1", ".article-title", ".headline", ".entry-title", "title"} {
		title := strings.TrimSpace(doc.Find(selector).First().Text())
		if title != "" {
			return title
		}
	}
	return ""
}

// clampParagraphs joins paragraphs up to the content cap, never cutting a
// paragraph in half.
func clampParagraphs(paragraphs []string) string {
	var b strings.Builder
	for _, p := range paragraphs {
		if b.Len() > 0 && b.Len()+len(p) > maxContentLength {
			break
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(p)
	}
	return b.String()
}
