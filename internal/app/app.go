// Package app wires the collaborators around the scoring pipeline and runs
// one digest generation batch.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"newsbrief/internal/config"
	"newsbrief/internal/deliver"
	"newsbrief/internal/metrics"
	"newsbrief/internal/news"
	"newsbrief/internal/pipeline"
	"newsbrief/internal/ratelimit"
	"newsbrief/internal/reader"
	"newsbrief/internal/relevance"
	"newsbrief/internal/render"
	"newsbrief/internal/rss"
	"newsbrief/internal/scraper"
	"newsbrief/internal/storage"
)

// App owns the long-lived collaborators of a digest run.
type App struct {
	cfg      *config.Config
	readers  *reader.Store
	seen     *storage.FileCache
	fetcher  *rss.Fetcher
	scraper  *scraper.Scraper
	pipeline *pipeline.Processor
	writer   *deliver.FileWriter
	telegram *deliver.Telegram
	log      *slog.Logger
}

// New builds the application from config.
func New(cfg *config.Config, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	limiter := ratelimit.NewHostLimiter(cfg.HostInterval)
	seen := storage.NewFileCache(cfg.CacheFilePath, cfg.CacheTTLHours)

	a := &App{
		cfg:     cfg,
		readers: reader.NewStore(cfg.ProfilesPath),
		seen:    seen,
		fetcher: rss.NewFetcher(limiter, seen, rss.FetcherOptions{
			MaxPerFeed: cfg.MaxArticlesPerFeed,
			MaxAge:     cfg.NewsMaxAge,
			Timeout:    cfg.RequestTimeout,
			Retries:    cfg.RetryAttempts,
			RetryDelay: cfg.RetryDelay,
		}, log.With("component", "rss")),
		scraper: scraper.New(cfg.RequestTimeout, limiter, log.With("component", "scraper")),
		pipeline: pipeline.New(nil, pipeline.Options{
			KeywordMinLength: cfg.KeywordMinLength,
			KeywordMaxCount:  cfg.KeywordMaxCount,
			SummarySentences: cfg.SummarySentences,
			Concurrency:      cfg.ProcessingJobs,
		}, log.With("component", "pipeline")),
		writer: deliver.NewFileWriter(cfg.OutputDir),
		log:    log,
	}
	if cfg.TelegramToken != "" {
		a.telegram = deliver.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
	}
	return a
}

// Run executes one batch: fetch, enrich, and generate a digest per reader.
// userIDs restricts the run to specific readers; empty means all.
func (a *App) Run(ctx context.Context, userIDs []string) error {
	start := time.Now()
	defer func() {
		metrics.Global.RecordProcessingTime(time.Since(start))
	}()

	if err := a.readers.Load(); err != nil {
		return fmt.Errorf("load reader profiles: %w", err)
	}
	if err := a.seen.Load(); err != nil {
		a.log.Warn("seen cache load failed, starting empty", "error", err)
	}

	profiles := a.selectReaders(userIDs)
	if len(profiles) == 0 {
		a.log.Warn("no readers found, nothing to do")
		return nil
	}

	groups, err := rss.LoadFeeds(a.cfg.FeedsConfigPath)
	if err != nil {
		return fmt.Errorf("load feeds config: %w", err)
	}

	docs := a.fetcher.FetchAll(ctx, groups)
	if len(docs) == 0 {
		a.log.Warn("no documents fetched, nothing to do")
		return nil
	}

	if a.cfg.ScrapeFullContent {
		a.scrapeFullContent(docs)
	}

	processed := a.pipeline.Process(docs)
	a.log.Info("documents enriched", "processed", len(processed), "fetched", len(docs))

	now := time.Now()
	for _, profile := range profiles {
		relevance.ScoreAll(processed, profile)
		sel := relevance.Select(processed, profile)
		if len(sel.Documents) == 0 {
			a.log.Info("no relevant documents for reader", "reader", profile.Name)
			continue
		}

		markdown := render.Markdown(profile, sel, now)
		if _, err := a.writer.Write(profile, markdown, now); err != nil {
			a.log.Error("digest write failed", "reader", profile.Name, "error", err)
			continue
		}
		metrics.Global.IncrementDigestsGenerated()

		for _, doc := range sel.Documents {
			a.seen.Mark(a.seen.Hash(doc.Title, doc.URL), doc.Title, doc.URL, doc.Source, doc.Category)
		}
	}

	if err := a.seen.Save(); err != nil {
		a.log.Warn("seen cache save failed", "error", err)
	}

	if a.telegram != nil {
		msg := fmt.Sprintf("📰 <b>newsbrief</b>: %d documents processed, digests for %d readers", len(processed), len(profiles))
		if err := a.telegram.Send(msg); err != nil {
			a.log.Warn("telegram notification failed", "error", err)
		}
	}

	metrics.Global.SetLastRun()
	a.log.Info("digest run completed", "readers", len(profiles), "duration", time.Since(start))
	return nil
}

// selectReaders resolves the requested reader ids, or all readers when none
// are given. Unknown ids are logged and skipped.
func (a *App) selectReaders(userIDs []string) []*reader.Profile {
	if len(userIDs) == 0 {
		return a.readers.All()
	}
	var profiles []*reader.Profile
	for _, id := range userIDs {
		if p := a.readers.Get(id); p != nil {
			profiles = append(profiles, p)
		} else {
			a.log.Warn("unknown reader id", "id", id)
		}
	}
	return profiles
}

// scrapeFullContent replaces teaser descriptions with extracted article
// bodies where extraction succeeds and yields more text.
func (a *App) scrapeFullContent(docs []*news.Document) {
	urls := make([]string, 0, len(docs))
	byURL := make(map[string]*news.Document, len(docs))
	for _, doc := range docs {
		urls = append(urls, doc.URL)
		byURL[doc.URL] = doc
	}

	articles := a.scraper.ExtractAll(urls, a.cfg.ScrapeConcurrency, a.cfg.ScrapeMaxArticles)
	for url, article := range articles {
		doc := byURL[url]
		if len(article.Content) > len(doc.Content) {
			doc.Content = article.Content
		}
	}
}
