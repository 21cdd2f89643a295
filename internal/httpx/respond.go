package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/AngelCh415/FUNNEL_GO/internal/apperr"
	"github.com/AngelCh415/FUNNEL_GO/internal/utils"
)

type errorBody struct {
	Code      apperr.Code `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}

// writeError renders coded errors with their status; anything else is a 500
// whose cause stays in the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	body := errorBody{Code: apperr.CodeInternal, Message: "internal error", RequestID: utils.RID(r.Context())}
	if e := apperr.As(err); e != nil {
		body.Code = e.Code()
		body.Message = e.Message()
	}
	if body.Code == apperr.CodeInternal {
		slog.Default().Error("request failed", "rid", body.RequestID, "err", err)
	}
	writeJSON(w, apperr.HTTPStatus(body.Code), map[string]errorBody{"error": body})
}
