package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/AngelCh415/FUNNEL_GO/internal/dashboard"
	"github.com/AngelCh415/FUNNEL_GO/internal/metrics"
	"github.com/AngelCh415/FUNNEL_GO/internal/utils"
)

type Deps struct {
	Log      *slog.Logger
	Service  *dashboard.Service
	Exporter *dashboard.Exporter
	// Metrics serves /metrics when set.
	Metrics http.Handler
	// Ready backs /readyz; nil means always ready.
	Ready    func(ctx context.Context) error
	Location *time.Location
	Now      func() time.Time
}

type handlers struct {
	Deps
}

func NewRouter(d Deps) http.Handler {
	if d.Log == nil {
		d.Log = slog.Default()
	}
	if d.Location == nil {
		d.Location = time.Local
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	h := &handlers{Deps: d}

	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(d.Log))

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", h.readyz)
	if d.Metrics != nil {
		mux.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	mux.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", h.dashboard)
		r.Get("/categories/{name}/transactions", h.categoryTransactions)
		r.Get("/channels/{name}/transactions", h.channelTransactions)
		r.Get("/upsell-paths/transactions", h.pathTransactions)
		r.Get("/campaigns", h.campaigns)
		r.Get("/campaigns/{id}/ads", h.campaignAds)
		r.Post("/ledger/refresh", h.refreshLedger)
		r.Post("/export", h.export)
	})
	return mux
}

func (h *handlers) readyz(w http.ResponseWriter, r *http.Request) {
	if h.Ready != nil {
		if err := h.Ready(r.Context()); err != nil {
			http.Error(w, "not ready: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(200)
	w.Write([]byte("ready"))
}

func (h *handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	q, err := parseDashboardQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	req, err := dashboard.ResolveRequest(q, h.Now(), h.Location)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := h.Service.Run(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handlers) categoryTransactions(w http.ResponseWriter, r *http.Request) {
	pq, err := parsePageQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	rows, err := h.Service.CategoryTransactions(pathParam(r, "name"), r.URL.Query().Get("filter"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics.Paginate(rows, pq.Limit, pq.Offset))
}

func (h *handlers) channelTransactions(w http.ResponseWriter, r *http.Request) {
	pq, err := parsePageQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	rows, err := h.Service.ChannelTransactions(pathParam(r, "name"), r.URL.Query().Get("metric"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics.Paginate(rows, pq.Limit, pq.Offset))
}

func (h *handlers) pathTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pq, err := parsePageQuery(q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	pp := pathQuery{From: q.Get("from"), To: q.Get("to")}
	if err := validateQuery(pp); err != nil {
		writeError(w, r, err)
		return
	}
	rows, err := h.Service.PathTransactions(pp.From, pp.To)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics.Paginate(rows, pq.Limit, pq.Offset))
}

func (h *handlers) campaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cq := campaignQuery{Search: q.Get("search"), Sort: q.Get("sort"), Dir: q.Get("dir")}
	if err := validateQuery(cq); err != nil {
		writeError(w, r, err)
		return
	}
	cs, err := h.Service.Campaigns(cq.Search, cq.Sort, cq.Dir)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cs)
}

func (h *handlers) campaignAds(w http.ResponseWriter, r *http.Request) {
	ads, err := h.Service.CampaignAds(pathParam(r, "id"), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ads)
}

func (h *handlers) refreshLedger(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.RefreshLedger(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{"refreshed": true})
}

func (h *handlers) export(w http.ResponseWriter, r *http.Request) {
	if h.Exporter == nil {
		writeError(w, r, errSinkDisabled)
		return
	}
	n, err := h.Exporter.Export(r.Context(), h.Service.State())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"exported": n})
}

// chi matches on RawPath when the request has one, and then params arrive
// escaped. Otherwise they are already decoded.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}
