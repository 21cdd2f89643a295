package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/AngelCh415/FUNNEL_GO/internal/apperr"
	"github.com/AngelCh415/FUNNEL_GO/internal/ingest"
	"github.com/AngelCh415/FUNNEL_GO/internal/metrics"
	"github.com/AngelCh415/FUNNEL_GO/internal/models"
	"github.com/AngelCh415/FUNNEL_GO/internal/sales"
	"github.com/AngelCh415/FUNNEL_GO/internal/telemetry"
)

// Ledger yields the full, mapped sales ledger.
type Ledger interface {
	Transactions(ctx context.Context) ([]models.Transaction, error)
	Refresh(ctx context.Context) error
}

type Service struct {
	ads     ingest.AdsProvider
	ledger  Ledger
	state   *State
	log     *slog.Logger
	metrics *telemetry.PipelineMetrics
	now     func() time.Time
}

func NewService(ads ingest.AdsProvider, ledger Ledger, state *State, log *slog.Logger, m *telemetry.PipelineMetrics) *Service {
	if log == nil {
		log = slog.Default()
	}
	if m == nil {
		m = telemetry.NewPipelineMetrics(nil)
	}
	if state == nil {
		state = NewState()
	}
	return &Service{ads: ads, ledger: ledger, state: state, log: log, metrics: m, now: time.Now}
}

func (s *Service) State() *State { return s.state }

// Run fetches ads (per range) and the ledger concurrently, then aggregates.
// Any fetch failure aborts the run and leaves the published state untouched.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	token := s.state.Begin()
	runID := uuid.NewString()
	t0 := s.now()
	log := s.log.With("run_id", runID, "token", token, "range", req.Current.String())

	var (
		curAds  models.AdsReport
		prevAds models.AdsReport
		rows    []models.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		curAds, err = s.fetchAds(gctx, req.Current)
		return err
	})
	if req.Compare != nil {
		log = log.With("compare", req.Compare.String())
		g.Go(func() (err error) {
			prevAds, err = s.fetchAds(gctx, *req.Compare)
			return err
		})
	}
	g.Go(func() (err error) {
		rows, err = s.ledger.Transactions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.metrics.ObserveRun("error", time.Since(t0))
		log.Error("dashboard run failed", "err", err)
		return nil, apperr.Upstream(err)
	}

	cur := sales.ProcessPeriod(rows, req.Current)
	res := &Result{
		RunID:   runID,
		Token:   token,
		Current: cur,
		Ads:     curAds,
		Charts:  metrics.BuildCharts(cur, curAds),
	}
	curIn := metrics.Inputs{Ads: curAds.Totals, Summary: cur.Summary}
	if req.Compare != nil {
		prev := sales.ProcessPeriod(rows, *req.Compare)
		res.Comparison = &prev
		res.CompareAds = &prevAds
		res.Overview = metrics.BuildOverview(curIn, &metrics.Inputs{Ads: prevAds.Totals, Summary: prev.Summary})
	} else {
		res.Overview = metrics.BuildOverview(curIn, nil)
	}
	res.FinishedAt = s.now()

	outcome := "ok"
	if !s.state.Publish(res) {
		res.Superseded = true
		outcome = "superseded"
	}
	s.metrics.ObserveRun(outcome, time.Since(t0))
	log.Info("dashboard run complete",
		slog.String("outcome", outcome),
		slog.Int("ledger_rows", len(rows)),
		slog.Int("period_rows", len(cur.Rows)),
		slog.Int("campaigns", len(curAds.Campaigns)),
		slog.Int64("ms", time.Since(t0).Milliseconds()),
	)
	return res, nil
}

func (s *Service) fetchAds(ctx context.Context, r sales.Range) (models.AdsReport, error) {
	t0 := time.Now()
	rep, err := s.ads.FetchAds(ctx, r.Start, r.End)
	s.metrics.ObserveFetch("ads", err, time.Since(t0))
	return rep, err
}

// RefreshLedger drops the cached ledger.
func (s *Service) RefreshLedger(ctx context.Context) error {
	if err := s.ledger.Refresh(ctx); err != nil {
		return apperr.Wrap(apperr.CodeInternal, err, "ledger refresh failed")
	}
	s.log.Info("ledger cache invalidated")
	return nil
}
