package httpx

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AngelCh415/FUNNEL_GO/internal/apperr"
	"github.com/AngelCh415/FUNNEL_GO/internal/dashboard"
	"github.com/AngelCh415/FUNNEL_GO/internal/metrics"
)

var validate = validator.New()

var errSinkDisabled = apperr.New(apperr.CodeValidation, "sink not configured")

type dashboardQuery struct {
	Start        string `validate:"omitempty,datetime=2006-01-02"`
	End          string `validate:"omitempty,datetime=2006-01-02"`
	Compare      bool
	CompareStart string `validate:"omitempty,datetime=2006-01-02"`
	CompareEnd   string `validate:"omitempty,datetime=2006-01-02"`
}

type pageQuery struct {
	Limit  int `validate:"gte=0"`
	Offset int `validate:"gte=0"`
}

type pathQuery struct {
	From string `validate:"required"`
	To   string `validate:"required"`
}

type campaignQuery struct {
	Search string
	Sort   string `validate:"omitempty,oneof=name status spend impressions purchases messaging_conversations cpm ctr"`
	Dir    string `validate:"omitempty,oneof=asc desc"`
}

func parseDashboardQuery(v url.Values) (dashboard.Query, error) {
	dq := dashboardQuery{
		Start:        v.Get("start"),
		End:          v.Get("end"),
		CompareStart: v.Get("compare_start"),
		CompareEnd:   v.Get("compare_end"),
	}
	if s := v.Get("compare"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return dashboard.Query{}, apperr.New(apperr.CodeValidation, "compare must be a boolean")
		}
		dq.Compare = b
	}
	if err := validateQuery(dq); err != nil {
		return dashboard.Query{}, err
	}
	return dashboard.Query(dq), nil
}

func parsePageQuery(v url.Values) (pageQuery, error) {
	pq := pageQuery{
		Limit:  metrics.AtoiDef(v.Get("limit"), metrics.DefaultLimit),
		Offset: metrics.AtoiDef(v.Get("offset"), 0),
	}
	return pq, validateQuery(pq)
}

// validateQuery runs the struct tags and folds failures into one
// VALIDATION_ERROR.
func validateQuery(q any) error {
	err := validate.Struct(q)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Wrap(apperr.CodeValidation, err, err.Error())
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag()))
		}
	}
	return apperr.Wrap(apperr.CodeValidation, err, strings.Join(msgs, "; "))
}
