package sync

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// progressInterval controls how often long runs report progress.
const progressInterval = 100

// RunResult summarizes one sync run. TotalFetched counts raw top-level items
// before unwrapping; Created+Updated+Skipped+Errors equals the record count
// after unwrapping, which may differ. A result is built fresh per run and is
// immutable once returned.
type RunResult struct {
	TotalFetched int      `json:"totalFetched"`
	Created      int      `json:"created"`
	Updated      int      `json:"updated"`
	Skipped      int      `json:"skipped"`
	Errors       int      `json:"errors"`
	Details      []string `json:"details,omitempty"`
}

// Entity is a mapped record handed from an adapter's Map to its Upsert.
type Entity any

// Adapter provides the entity-specific pieces of a sync run: mapping a raw
// record to its canonical shape and upserting it by the entity's unique key.
type Adapter interface {
	// Label names the entity type in logs and messages.
	Label() string
	// Identify returns the record's identifying value for diagnostics, or
	// "" when it cannot be resolved.
	Identify(item RawItem) string
	// Map converts one unwrapped raw record. ok=false means unmappable:
	// the record is counted as skipped, never as an error.
	Map(item RawItem) (Entity, bool)
	// DedupeKey returns the in-run duplicate-suppression key for a mapped
	// entity, or "" to disable suppression for this entity type.
	DedupeKey(e Entity) string
	// Upsert persists the entity, reporting whether a new row was created.
	// A failure here affects only this record; the run continues.
	Upsert(ctx context.Context, e Entity) (created bool, err error)
}

// reconcile folds the fetched items through unwrap, map, dedupe, and upsert,
// accumulating a RunResult. A single malformed record never aborts the run.
func reconcile(ctx context.Context, log *zap.Logger, raw []RawItem, adapter Adapter) *RunResult {
	result := &RunResult{TotalFetched: len(raw)}

	var records []RawItem
	for _, item := range raw {
		records = append(records, Unwrap(item)...)
	}
	total := len(records)

	log.Info("Sync started",
		zap.String("entity", adapter.Label()),
		zap.Int("fetched", result.TotalFetched),
		zap.Int("records", total))

	seen := make(map[string]struct{})

	for i, record := range records {
		processed := i + 1
		if processed%progressInterval == 0 || processed == total {
			log.Info("Sync progress",
				zap.String("entity", adapter.Label()),
				zap.Int("processed", processed),
				zap.Int("total", total))
		}

		entity, ok := adapter.Map(record)
		if !ok {
			result.Skipped++
			if key := adapter.Identify(record); key != "" {
				result.Details = append(result.Details, "skipped: "+key)
			} else {
				result.Details = append(result.Details,
					fmt.Sprintf("skipped: no identifying field (keys: [%s])", record.KeyList()))
			}
			continue
		}

		if dk := adapter.DedupeKey(entity); dk != "" {
			if _, dup := seen[dk]; dup {
				result.Skipped++
				continue
			}
			seen[dk] = struct{}{}
		}

		created, err := adapter.Upsert(ctx, entity)
		if err != nil {
			result.Errors++
			key := adapter.Identify(record)
			if key == "" {
				key = "?"
			}
			result.Details = append(result.Details, key+": "+err.Error())
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	log.Info("Sync finished",
		zap.String("entity", adapter.Label()),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("skipped", result.Skipped),
		zap.Int("errors", result.Errors))

	return result
}
