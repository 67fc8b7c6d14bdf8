package types

import (
	"github.com/certproof-io/btc-anchor-connector/internal/model"
	"github.com/tidwall/gjson"
)

// TxConnector defines the interface of a bitcoin transaction lookup
// connector. A connector queries one explorer API on one network and
// extracts the certificate anchoring data from the response.
type TxConnector interface {
	// LookupTx fetches the transaction by id and extracts the canonical data.
	LookupTx(txid string) (*model.TransactionData, error)
	// FetchTx performs the provider round trip and returns the decoded body.
	FetchTx(txid string) (gjson.Result, error)
	// ParseTx extracts the canonical data from a decoded provider response.
	ParseTx(raw gjson.Result) (*model.TransactionData, error)
}
