package dashboard

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/AngelCh415/FUNNEL_GO/internal/metrics"
	"github.com/AngelCh415/FUNNEL_GO/internal/models"
	"github.com/AngelCh415/FUNNEL_GO/internal/sales"
)

// Result is the outcome of one run.
type Result struct {
	RunID      string            `json:"run_id"`
	Token      uint64            `json:"token"`
	Current    sales.Period      `json:"current"`
	Comparison *sales.Period     `json:"comparison,omitempty"`
	Ads        models.AdsReport  `json:"ads"`
	CompareAds *models.AdsReport `json:"compare_ads,omitempty"`
	Overview   metrics.Overview  `json:"overview"`
	Charts     metrics.Charts    `json:"charts"`
	Superseded bool              `json:"superseded"`
	FinishedAt time.Time         `json:"finished_at"`
}

// State owns the latest published run. Tokens order runs by start; a run is
// published only if nothing newer has been published before it finished.
type State struct {
	next      atomic.Uint64
	mu        sync.RWMutex
	published *Result
}

func NewState() *State { return &State{} }

// Begin hands out the next run token.
func (s *State) Begin() uint64 { return s.next.Add(1) }

// Publish stores r unless a newer token already won. It reports whether r is
// now the published run.
func (s *State) Publish(r *Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.published != nil && s.published.Token > r.Token {
		return false
	}
	s.published = r
	return true
}

func (s *State) Latest() (*Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.published, s.published != nil
}
