package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/AngelCh415/FUNNEL_GO/internal/models"
	"github.com/AngelCh415/FUNNEL_GO/internal/sales"
	"github.com/AngelCh415/FUNNEL_GO/internal/utils"
)

// the ads backend takes day-month-year
const adsDateLayout = "02-01-2006"

const unknownAdsError = "Unknown API error from main Ads fetch."

type AdsProvider interface {
	FetchAds(ctx context.Context, since, until time.Time) (models.AdsReport, error)
}

type AdsClient struct {
	c       HTTPClient
	baseURL string
	backoff utils.Backoff
}

func NewAdsClient(c HTTPClient, baseURL string, b utils.Backoff) *AdsClient {
	return &AdsClient{c: c, baseURL: strings.TrimRight(baseURL, "/"), backoff: b}
}

// flexNumber accepts JSON numbers, numeric strings and null.
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = 0
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	*n = flexNumber(sales.ToNumber(v))
	return nil
}

type insightsWire struct {
	Spend                  flexNumber `json:"spend"`
	Impressions            flexNumber `json:"impressions"`
	Purchases              flexNumber `json:"purchases"`
	MessagingConversations flexNumber `json:"messaging_conversations"`
	CPM                    flexNumber `json:"cpm"`
	CTR                    flexNumber `json:"ctr"`
}

func (w *insightsWire) model() models.Insights {
	if w == nil {
		return models.Insights{}
	}
	return models.Insights{
		Spend:                  float64(w.Spend),
		Impressions:            float64(w.Impressions),
		Purchases:              float64(w.Purchases),
		MessagingConversations: float64(w.MessagingConversations),
		CPM:                    float64(w.CPM),
		CTR:                    float64(w.CTR),
	}
}

type adsResp struct {
	Success bool            `json:"success"`
	Error   json.RawMessage `json:"error"`
	Data    struct {
		Campaigns []struct {
			ID       string        `json:"id"`
			Name     string        `json:"name"`
			Status   string        `json:"status"`
			Insights *insightsWire `json:"insights"`
			Ads      []struct {
				ID           string        `json:"id"`
				Name         string        `json:"name"`
				ThumbnailURL string        `json:"thumbnail_url"`
				Insights     *insightsWire `json:"insights"`
			} `json:"ads"`
		} `json:"campaigns"`
		DailySpend []struct {
			Date  string     `json:"date"`
			Spend flexNumber `json:"spend"`
		} `json:"dailySpend"`
	} `json:"data"`
	Totals *insightsWire `json:"totals"`
}

func (r adsResp) errorMessage() string {
	if len(r.Error) == 0 || string(r.Error) == "null" {
		return unknownAdsError
	}
	var s string
	if err := json.Unmarshal(r.Error, &s); err == nil {
		if s == "" {
			return unknownAdsError
		}
		return s
	}
	return string(r.Error)
}

// FetchAds asks the ads backend for the inclusive [since, until] day range.
func (a *AdsClient) FetchAds(ctx context.Context, since, until time.Time) (models.AdsReport, error) {
	q := url.Values{}
	q.Set("since", since.Format(adsDateLayout))
	q.Set("until", until.Format(adsDateLayout))
	u := a.baseURL + "/databillRam?" + q.Encode()

	body, err := GetWithRetry(ctx, a.c, a.backoff, "Ads API", u)
	if err != nil {
		return models.AdsReport{}, err
	}
	var resp adsResp
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.AdsReport{}, fmt.Errorf("decode ads response: %w", err)
	}
	if !resp.Success {
		return models.AdsReport{}, errors.New(resp.errorMessage())
	}

	report := models.AdsReport{
		Since:      since,
		Until:      until,
		Totals:     resp.Totals.model(),
		Campaigns:  make([]models.Campaign, 0, len(resp.Data.Campaigns)),
		DailySpend: make([]models.DailySpend, 0, len(resp.Data.DailySpend)),
	}
	for _, c := range resp.Data.Campaigns {
		camp := models.Campaign{ID: c.ID, Name: c.Name, Status: c.Status, Insights: c.Insights.model()}
		for _, ad := range c.Ads {
			camp.Ads = append(camp.Ads, models.Ad{ID: ad.ID, Name: ad.Name, ThumbnailURL: ad.ThumbnailURL, Insights: ad.Insights.model()})
		}
		report.Campaigns = append(report.Campaigns, camp)
	}
	for _, d := range resp.Data.DailySpend {
		date, ok := sales.ParseDate(d.Date, time.UTC)
		if !ok {
			continue
		}
		report.DailySpend = append(report.DailySpend, models.DailySpend{Date: date, Spend: float64(d.Spend)})
	}
	return report, nil
}
