package ingest

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/AngelCh415/FUNNEL_GO/internal/models"
	"github.com/AngelCh415/FUNNEL_GO/internal/store"
	"github.com/AngelCh415/FUNNEL_GO/internal/telemetry"
)

// CachedLedger serves mapped ledger rows from a cache, fetching from the
// provider on a miss. Concurrent misses share a single fetch.
type CachedLedger struct {
	provider LedgerProvider
	cache    store.LedgerCache
	loc      *time.Location
	log      *slog.Logger
	metrics  *telemetry.PipelineMetrics
	group    singleflight.Group
}

func NewCachedLedger(p LedgerProvider, cache store.LedgerCache, loc *time.Location, log *slog.Logger, m *telemetry.PipelineMetrics) *CachedLedger {
	if log == nil {
		log = slog.Default()
	}
	if m == nil {
		m = telemetry.NewPipelineMetrics(nil)
	}
	return &CachedLedger{provider: p, cache: cache, loc: loc, log: log, metrics: m}
}

func (c *CachedLedger) Transactions(ctx context.Context) ([]models.Transaction, error) {
	rows, ok, err := c.cache.Load(ctx)
	if err != nil {
		c.log.Warn("ledger cache load failed", "err", err)
	} else if ok {
		c.metrics.CacheLookup(true)
		return rows, nil
	}
	c.metrics.CacheLookup(false)

	ch := c.group.DoChan("ledger", func() (any, error) {
		// a cancelled first caller must not fail everyone sharing the fetch
		fctx := context.WithoutCancel(ctx)
		if rows, ok, err := c.cache.Load(fctx); err == nil && ok {
			return rows, nil
		}
		t0 := time.Now()
		raw, err := c.provider.FetchLedger(fctx)
		c.metrics.ObserveFetch("ledger", err, time.Since(t0))
		if err != nil {
			return nil, err
		}
		rows := MapRows(raw, c.loc)
		undated := 0
		for _, r := range rows {
			if !r.HasDate() {
				undated++
			}
		}
		c.metrics.SetLedgerRows(len(rows))
		c.log.Info("ledger fetched", "rows", len(rows), "undated", undated, "ms", time.Since(t0).Milliseconds())
		if err := c.cache.Save(fctx, rows); err != nil {
			c.log.Warn("ledger cache save failed", "err", err)
		}
		return rows, nil
	})
	// the shared fetch keeps going for the other callers and fills the cache
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]models.Transaction), nil
	}
}

// Refresh drops the cached ledger so the next read fetches again.
func (c *CachedLedger) Refresh(ctx context.Context) error {
	return c.cache.Invalidate(ctx)
}
