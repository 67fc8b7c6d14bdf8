package server

import (
	"encoding/json"
	"net/http"

	"github.com/certproof-io/btc-anchor-connector/internal/logic/connector"
	"github.com/certproof-io/btc-anchor-connector/internal/types"
	"github.com/certproof-io/btc-anchor-connector/pkg/log"
	"github.com/certproof-io/btc-anchor-connector/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// handleLookup serves GET /api/v1/transactions/{txid}. The txid is checked
// before any provider round trip; lookup errors map to 404 for transactions
// the provider rejects and 502 for everything else.
func handleLookup(conn types.TxConnector, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		txid := chi.URLParam(r, "txid")
		if _, err := utils.ParseTxID(txid); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:   "bad_request",
				Message: "invalid transaction id",
			})
			return
		}

		data, err := conn.LookupTx(txid)
		switch {
		case errors.Is(err, connector.ErrInvalidTransaction):
			writeJSON(w, http.StatusNotFound, errorResponse{
				Error:   "not_found",
				Message: "transaction has no anchoring data",
			})
			return
		case err != nil:
			logger.Errorw("transaction lookup failed", "transaction_id", txid, "err", err)
			writeJSON(w, http.StatusBadGateway, errorResponse{
				Error:   "bad_gateway",
				Message: "provider lookup failed",
			})
			return
		}

		writeJSON(w, http.StatusOK, data)
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if body == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}
