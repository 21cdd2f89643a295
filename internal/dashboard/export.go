package dashboard

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/AngelCh415/FUNNEL_GO/internal/apperr"
	"github.com/AngelCh415/FUNNEL_GO/internal/ingest"
	"github.com/AngelCh415/FUNNEL_GO/internal/models"
	"github.com/AngelCh415/FUNNEL_GO/internal/sales"
)

// Snapshot is the signed payload posted to the sink.
type Snapshot struct {
	RunID      string               `json:"run_id"`
	Range      sales.Range          `json:"range"`
	Summary    models.PeriodSummary `json:"summary"`
	Channels   []models.ChannelAgg  `json:"channels"`
	Categories []models.CategoryAgg `json:"categories"`
}

// Exporter posts snapshots to SINK_URL with an HMAC-SHA256 X-Signature.
type Exporter struct {
	c      ingest.HTTPClient
	url    string
	secret string
	log    *slog.Logger
}

func NewExporter(c ingest.HTTPClient, url, secret string, log *slog.Logger) *Exporter {
	if log == nil {
		log = slog.Default()
	}
	return &Exporter{c: c, url: url, secret: secret, log: log}
}

// Sign returns the hex HMAC-SHA256 of body under secret.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Export sends the latest published run and returns how many channel and
// category rows it carried.
func (e *Exporter) Export(ctx context.Context, st *State) (int, error) {
	if e.url == "" || e.secret == "" {
		return 0, apperr.New(apperr.CodeValidation, "sink not configured")
	}
	res, ok := st.Latest()
	if !ok {
		return 0, errNoRun
	}
	snap := Snapshot{
		RunID:      res.RunID,
		Range:      res.Current.Range,
		Summary:    res.Current.Summary,
		Channels:   res.Current.Channels,
		Categories: res.Current.Categories,
	}
	b, err := json.Marshal(snap)
	if err != nil {
		return 0, apperr.Wrap(apperr.CodeInternal, err, "encode snapshot")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(b))
	if err != nil {
		return 0, apperr.Wrap(apperr.CodeInternal, err, "build export request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Signature", Sign(e.secret, b))
	resp, err := e.c.Do(req)
	if err != nil {
		return 0, apperr.Upstream(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, apperr.New(apperr.CodeUpstream, fmt.Sprintf("export sink non-2xx (%d)", resp.StatusCode))
	}
	n := len(snap.Channels) + len(snap.Categories)
	e.log.Info("snapshot exported", "run_id", res.RunID, "rows", n)
	return n, nil
}
