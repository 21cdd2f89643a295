package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/AngelCh415/FUNNEL_GO/internal/utils"
)

// GvizLedger reads the ledger from the spreadsheet's public gviz JSON export.
type GvizLedger struct {
	c       HTTPClient
	url     string
	backoff utils.Backoff
}

func NewGvizLedger(c HTTPClient, url string, b utils.Backoff) *GvizLedger {
	return &GvizLedger{c: c, url: url, backoff: b}
}

type gvizResponse struct {
	Status string `json:"status"`
	Errors []struct {
		Reason          string `json:"reason"`
		Message         string `json:"message"`
		DetailedMessage string `json:"detailed_message"`
	} `json:"errors"`
	Table struct {
		Cols []struct {
			ID    string `json:"id"`
			Label string `json:"label"`
		} `json:"cols"`
		Rows []struct {
			C []*struct {
				V any `json:"v"`
			} `json:"c"`
		} `json:"rows"`
	} `json:"table"`
}

func (g *GvizLedger) FetchLedger(ctx context.Context) ([]RawRow, error) {
	body, err := GetWithRetry(ctx, g.c, g.backoff, "Sales sheet", g.url)
	if err != nil {
		return nil, err
	}
	return ParseGviz(body)
}

// ParseGviz decodes a gviz response. The JSON object is wrapped in a JS
// callback, so only the text between the first '{' and the last '}' is read.
func ParseGviz(body []byte) ([]RawRow, error) {
	start := bytes.IndexByte(body, '{')
	end := bytes.LastIndexByte(body, '}')
	if start < 0 || end < start {
		return nil, errors.New("sales sheet: no JSON object in gviz response")
	}
	dec := json.NewDecoder(bytes.NewReader(body[start : end+1]))
	dec.UseNumber()
	var resp gvizResponse
	if err := dec.Decode(&resp); err != nil {
		return nil, fmt.Errorf("sales sheet: decode gviz: %w", err)
	}
	if resp.Status == "error" {
		msg := "unknown error"
		if len(resp.Errors) > 0 {
			e := resp.Errors[0]
			msg = e.DetailedMessage
			if msg == "" {
				msg = e.Message
			}
			if msg == "" {
				msg = e.Reason
			}
		}
		return nil, fmt.Errorf("sales sheet: %s", msg)
	}

	labels := make([]string, len(resp.Table.Cols))
	for i, c := range resp.Table.Cols {
		l := strings.TrimSpace(c.Label)
		if l == "" {
			l = c.ID
		}
		labels[i] = l
	}
	out := make([]RawRow, 0, len(resp.Table.Rows))
	for _, r := range resp.Table.Rows {
		row := make(RawRow, len(labels))
		for i, cell := range r.C {
			if i >= len(labels) || labels[i] == "" || cell == nil || cell.V == nil {
				continue
			}
			row[labels[i]] = cell.V
		}
		out = append(out, row)
	}
	return out, nil
}
