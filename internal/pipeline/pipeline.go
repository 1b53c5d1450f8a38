// Package pipeline runs the per-document enrichment stages over a batch:
// keywords, category, sentiment, summary. Stages share no cross-document
// state, so documents can be processed concurrently; a failure in one
// document never aborts the batch.
package pipeline

import (
	"fmt"
	"log/slog"
	"sync"

	"newsbrief/internal/classify"
	"newsbrief/internal/keywords"
	"newsbrief/internal/metrics"
	"newsbrief/internal/news"
	"newsbrief/internal/sentiment"
	"newsbrief/internal/summary"
)

// Options tunes the enrichment stages.
type Options struct {
	KeywordMinLength int
	KeywordMaxCount  int
	SummarySentences int
	// Concurrency bounds the worker pool; values below 2 mean sequential
	// processing.
	Concurrency int
}

// Processor enriches documents using a fixed classifier table.
type Processor struct {
	classifier *classify.Classifier
	opts       Options
	log        *slog.Logger
}

// New builds a processor. A nil classifier uses the default category table.
func New(classifier *classify.Classifier, opts Options, log *slog.Logger) *Processor {
	if classifier == nil {
		classifier = classify.NewClassifier(nil)
	}
	if opts.KeywordMinLength <= 0 {
		opts.KeywordMinLength = keywords.DefaultMinLength
	}
	if opts.KeywordMaxCount <= 0 {
		opts.KeywordMaxCount = keywords.DefaultMaxCount
	}
	if opts.SummarySentences <= 0 {
		opts.SummarySentences = summary.DefaultSentenceCount
	}
	if log == nil {
		log = slog.Default()
	}
	return &Processor{classifier: classifier, opts: opts, log: log}
}

// Process enriches every document and returns the ones that survived.
// A document whose enrichment fails is logged and dropped from the result;
// input order is preserved for the survivors.
func (p *Processor) Process(docs []*news.Document) []*news.Document {
	if len(docs) == 0 {
		p.log.Warn("no documents to process")
		return nil
	}

	failed := make([]error, len(docs))
	if p.opts.Concurrency > 1 {
		sem := make(chan struct{}, p.opts.Concurrency)
		var wg sync.WaitGroup
		for i, doc := range docs {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int, doc *news.Document) {
				defer wg.Done()
				defer func() { <-sem }()
				failed[i] = p.enrich(doc)
			}(i, doc)
		}
		wg.Wait()
	} else {
		for i, doc := range docs {
			failed[i] = p.enrich(doc)
		}
	}

	processed := make([]*news.Document, 0, len(docs))
	for i, doc := range docs {
		if failed[i] != nil {
			p.log.Error("document enrichment failed", "title", doc.Title, "error", failed[i])
			metrics.Global.IncrementProcessingFailures()
			continue
		}
		processed = append(processed, doc)
		metrics.Global.IncrementDocumentsProcessed()
	}
	return processed
}

// enrich runs the four stages on one document. Each stage writes exactly
// one field. Panics are converted to errors so one bad document cannot take
// the batch down.
func (p *Processor) enrich(doc *news.Document) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("stage panic: %v", r)
		}
	}()

	doc.Keywords = keywords.Extract(doc.Content, p.opts.KeywordMinLength, p.opts.KeywordMaxCount)
	doc.Category = p.classifier.Categorize(doc.Keywords)
	doc.Sentiment = sentiment.Score(doc.Content)
	doc.Summary = summary.Summarize(doc.Content, p.opts.SummarySentences)
	return nil
}
