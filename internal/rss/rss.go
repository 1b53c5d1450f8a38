// Package rss loads the feed list and turns syndicated entries into
// documents ready for the pipeline.
package rss

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
	"gopkg.in/yaml.v3"

	"newsbrief/internal/metrics"
	"newsbrief/internal/news"
	"newsbrief/internal/ratelimit"
	"newsbrief/internal/retry"
	"newsbrief/internal/storage"
	"newsbrief/internal/textproc"
)

// FeedGroup is one named group of feed URLs in the YAML config. The group
// name is organizational only; classification decides the document category.
type FeedGroup struct {
	Category string   `yaml:"category"`
	URLs     []string `yaml:"urls"`
}

// FeedsConfig is the YAML feeds file structure:
//
//	feeds:
//	  - category: technology
//	    urls:
//	      - https://techcrunch.com/feed/
type FeedsConfig struct {
	Feeds []FeedGroup `yaml:"feeds"`
}

// LoadFeeds reads the feed groups from a YAML file.
func LoadFeeds(path string) ([]FeedGroup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open feeds config: %w", err)
	}
	defer f.Close()

	var cfg FeedsConfig
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse feeds config: %w", err)
	}
	return cfg.Feeds, nil
}

// Fetcher downloads and parses feeds into documents.
type Fetcher struct {
	parser  *gofeed.Parser
	limiter *ratelimit.HostLimiter
	seen    *storage.FileCache // may be nil

	maxPerFeed int
	maxAge     time.Duration
	timeout    time.Duration
	retries    int
	retryDelay time.Duration
	log        *slog.Logger
}

// FetcherOptions tunes a Fetcher.
type FetcherOptions struct {
	MaxPerFeed int
	MaxAge     time.Duration
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
}

// NewFetcher builds a fetcher. The seen cache is optional; with it, entries
// already digested in previous runs are filtered out.
func NewFetcher(limiter *ratelimit.HostLimiter, seen *storage.FileCache, opts FetcherOptions, log *slog.Logger) *Fetcher {
	parser := gofeed.NewParser()
	parser.UserAgent = "newsbrief/1.0"
	if opts.MaxPerFeed <= 0 {
		opts.MaxPerFeed = 10
	}
	if opts.Retries <= 0 {
		opts.Retries = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &Fetcher{
		parser:     parser,
		limiter:    limiter,
		seen:       seen,
		maxPerFeed: opts.MaxPerFeed,
		maxAge:     opts.MaxAge,
		timeout:    opts.Timeout,
		retries:    opts.Retries,
		retryDelay: opts.RetryDelay,
		log:        log,
	}
}

// FetchAll downloads every feed and returns the fresh, deduplicated
// documents in fetch order. A failing feed is logged and skipped, never
// fatal.
func (f *Fetcher) FetchAll(ctx context.Context, groups []FeedGroup) []*news.Document {
	var docs []*news.Document
	seenLinks := make(map[string]struct{})
	okFeeds, totalFeeds := 0, 0

	for _, group := range groups {
		for _, url := range group.URLs {
			totalFeeds++
			feed, err := f.fetchFeed(ctx, url)
			if err != nil {
				f.log.Warn("feed fetch failed", "url", url, "error", err)
				metrics.Global.IncrementFeedErrors()
				continue
			}
			okFeeds++

			added := 0
			for _, item := range feed.Items {
				if added >= f.maxPerFeed {
					break
				}
				doc, ok := f.buildDocument(feed, item, seenLinks)
				if !ok {
					continue
				}
				docs = append(docs, doc)
				added++
			}
			f.log.Debug("feed fetched", "url", url, "items", added)
		}
	}

	f.log.Info("feeds fetched", "ok", okFeeds, "total", totalFeeds, "documents", len(docs))
	metrics.Global.IncrementDocumentsFetched(int64(len(docs)))
	return docs
}

func (f *Fetcher) fetchFeed(ctx context.Context, url string) (*gofeed.Feed, error) {
	if f.limiter != nil {
		f.limiter.Wait(url)
	}

	var feed *gofeed.Feed
	err := retry.Do(ctx, retry.Config{
		MaxAttempts: f.retries,
		Delay:       f.retryDelay,
		Backoff:     true,
	}, func() error {
		fetchCtx := ctx
		if f.timeout > 0 {
			var cancel context.CancelFunc
			fetchCtx, cancel = context.WithTimeout(ctx, f.timeout)
			defer cancel()
		}
		var err error
		feed, err = f.parser.ParseURLWithContext(url, fetchCtx)
		return err
	})
	return feed, err
}

// buildDocument converts one feed item into a document, or reports false
// when the item is stale, a duplicate, or already digested.
func (f *Fetcher) buildDocument(feed *gofeed.Feed, item *gofeed.Item, seenLinks map[string]struct{}) (*news.Document, bool) {
	if item.Link == "" {
		return nil, false
	}
	if _, dup := seenLinks[item.Link]; dup {
		metrics.Global.IncrementDuplicatesFiltered()
		return nil, false
	}
	seenLinks[item.Link] = struct{}{}

	published := time.Now()
	if item.PublishedParsed != nil {
		published = *item.PublishedParsed
	}
	if f.maxAge > 0 && time.Since(published) > f.maxAge {
		return nil, false
	}

	if f.seen != nil {
		if hash := f.seen.Hash(item.Title, item.Link); f.seen.Seen(hash) {
			metrics.Global.IncrementDuplicatesFiltered()
			return nil, false
		}
	}

	content := item.Content
	if content == "" {
		content = item.Description
	}
	content = textproc.CleanText(content)

	doc := news.New(uuid.NewString(), textproc.CleanText(item.Title), item.Link, feed.Title, published, content)
	if item.Author != nil {
		doc.Author = item.Author.Name
	}
	if item.Image != nil {
		doc.ImageURL = item.Image.URL
	}
	return doc, true
}
