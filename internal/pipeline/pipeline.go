// Package pipeline orchestrates the full grooming run: cleaning,
// deduplication, key uniquification, DOI enrichment, and the final
// duplicate audit.
package pipeline

import (
	"context"

	"github.com/matsen/bibtidy/internal/cache"
	"github.com/matsen/bibtidy/internal/dedup"
	"github.com/matsen/bibtidy/internal/match"
	"github.com/matsen/bibtidy/internal/normalize"
	"github.com/matsen/bibtidy/internal/record"
)

// Searcher retrieves candidate metadata records for an entry. A nil
// Searcher disables enrichment entirely.
type Searcher interface {
	Search(ctx context.Context, title string, authorSurnames []string, year string) ([]match.Candidate, error)
}

// Options configures a pipeline run.
type Options struct {
	// Searcher supplies external candidates for entries missing a DOI.
	Searcher Searcher
	// Cache records past search outcomes. Nil disables caching.
	Cache *cache.Cache
	// Audit collects per-candidate match decisions into the report.
	Audit bool
}

// Enrichment records one identifier attached to an entry.
type Enrichment struct {
	EntryID string
	DOI     string
}

// Report summarizes what a run did to the collection.
type Report struct {
	Loaded   int
	Merges   []dedup.MergeRecord
	Renamed  int
	Enriched []Enrichment
	Warnings []string
	AuditLog []string
}

// MergedCount returns the number of entries removed by merging.
func (r *Report) MergedCount() int {
	n := 0
	for _, m := range r.Merges {
		n += len(m.RemovedIDs)
	}
	return n
}

// Run executes the grooming pipeline over the collection and returns the
// surviving entries plus a report. The input slice must not be used
// afterwards; the pipeline owns the collection for the duration of the
// run and hands back a fresh reference.
//
// Enrichment is best-effort: a failed search skips that entry and moves
// on, so one network error never aborts the batch.
func Run(ctx context.Context, entries []*record.Entry, opts Options) ([]*record.Entry, *Report) {
	report := &Report{Loaded: len(entries)}

	CleanAll(entries)

	entries, merges := dedup.Deduplicate(entries)
	report.Merges = merges

	report.Renamed = dedup.UniquifyKeys(entries)

	if opts.Searcher != nil {
		enrich(ctx, entries, opts, report)
	}

	report.Warnings = append(report.Warnings, ValidateEntries(entries)...)
	report.Warnings = append(report.Warnings, dedup.CheckFuzzyDuplicates(entries)...)

	return entries, report
}

// enrich fills in missing DOIs from the external search, one entry at a
// time. The cache is consulted first; a cached miss skips the network
// entirely.
func enrich(ctx context.Context, entries []*record.Entry, opts Options, report *Report) {
	var log *match.AuditLog
	if opts.Audit {
		log = &match.AuditLog{}
	}
	matcher := &match.Matcher{Threshold: match.DefaultThreshold, Log: log}

	for _, e := range entries {
		if ctx.Err() != nil {
			break
		}
		if e.Has(record.FieldDOI) {
			continue
		}
		title := e.Get(record.FieldTitle)
		if title == "" {
			continue
		}

		if doi, found, err := opts.Cache.Get(title); err == nil && found {
			if doi != "" {
				e.Set(record.FieldDOI, doi)
				report.Enriched = append(report.Enriched, Enrichment{EntryID: e.ID, DOI: doi})
			}
			continue
		}

		candidates, err := opts.Searcher.Search(ctx, title, record.AuthorSurnames(e), normalize.Year(e.Get(record.FieldYear)))
		if err != nil {
			// Treated as no candidates; nothing is cached so a later
			// run will retry.
			continue
		}

		doi, ok := matcher.Select(e, candidates)
		if ok {
			e.Set(record.FieldDOI, doi)
			report.Enriched = append(report.Enriched, Enrichment{EntryID: e.ID, DOI: doi})
		}
		_ = opts.Cache.Put(title, doi)
	}

	report.AuditLog = log.Lines()
}
