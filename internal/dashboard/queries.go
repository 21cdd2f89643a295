package dashboard

import (
	"github.com/AngelCh415/FUNNEL_GO/internal/apperr"
	"github.com/AngelCh415/FUNNEL_GO/internal/metrics"
	"github.com/AngelCh415/FUNNEL_GO/internal/models"
	"github.com/AngelCh415/FUNNEL_GO/internal/sales"
)

// Drill-downs read the current period of the latest published run.

var errNoRun = apperr.New(apperr.CodeNotFound, "no dashboard run has completed yet")

func (s *Service) latest() (*Result, error) {
	res, ok := s.state.Latest()
	if !ok {
		return nil, errNoRun
	}
	return res, nil
}

func (s *Service) CategoryTransactions(name, filter string) ([]sales.DetailRow, error) {
	res, err := s.latest()
	if err != nil {
		return nil, err
	}
	cat, ok := sales.FindCategory(res.Current.Categories, name)
	if !ok {
		return nil, apperr.New(apperr.CodeNotFound, "category not found: "+name)
	}
	return sales.CategoryTransactions(cat, filter), nil
}

func (s *Service) ChannelTransactions(name, metric string) ([]sales.DetailRow, error) {
	res, err := s.latest()
	if err != nil {
		return nil, err
	}
	found := false
	for _, c := range res.Current.Channels {
		if c.Name == name {
			found = true
			break
		}
	}
	if !found {
		return nil, apperr.New(apperr.CodeNotFound, "channel not found: "+name)
	}
	return sales.ChannelTransactions(res.Current.Rows, name, metric), nil
}

func (s *Service) PathTransactions(from, to string) ([]sales.DetailRow, error) {
	res, err := s.latest()
	if err != nil {
		return nil, err
	}
	p, ok := sales.FindPath(res.Current.UpsellPaths, from, to)
	if !ok {
		return nil, apperr.New(apperr.CodeNotFound, "upsell path not found: "+sales.PathKey(from, to))
	}
	return sales.PathTransactions(p), nil
}

func (s *Service) Campaigns(search, key, dir string) ([]models.Campaign, error) {
	if key != "" && !metrics.IsCampaignSortKey(key) {
		return nil, apperr.New(apperr.CodeValidation, "unknown sort key: "+key)
	}
	res, err := s.latest()
	if err != nil {
		return nil, err
	}
	return metrics.SortCampaigns(res.Ads.Campaigns, search, key, dir), nil
}

func (s *Service) CampaignAds(id, search string) ([]models.Ad, error) {
	res, err := s.latest()
	if err != nil {
		return nil, err
	}
	c, ok := metrics.FindCampaign(res.Ads.Campaigns, id)
	if !ok {
		return nil, apperr.New(apperr.CodeNotFound, "campaign not found: "+id)
	}
	return metrics.SearchAds(c.Ads, search), nil
}
