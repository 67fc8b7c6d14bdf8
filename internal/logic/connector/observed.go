package connector

import (
	"time"

	"github.com/certproof-io/btc-anchor-connector/internal/model"
	"github.com/certproof-io/btc-anchor-connector/internal/types"
	"github.com/tidwall/gjson"
)

type (
	// ConnectorMetrics records one observation per connector operation.
	ConnectorMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObservedConnector wraps a connector and reports operation outcomes and
// durations to a metrics recorder.
type ObservedConnector struct {
	conn    types.TxConnector
	metrics ConnectorMetrics
}

var _ types.TxConnector = (*ObservedConnector)(nil)

func NewObservedConnector(conn types.TxConnector, metrics ConnectorMetrics) *ObservedConnector {
	return &ObservedConnector{
		conn:    conn,
		metrics: metrics,
	}
}

func (o *ObservedConnector) LookupTx(txid string) (data *model.TransactionData, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("lookup_tx", err, started)
	}()
	return o.conn.LookupTx(txid)
}

func (o *ObservedConnector) FetchTx(txid string) (raw gjson.Result, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("fetch_tx", err, started)
	}()
	return o.conn.FetchTx(txid)
}

func (o *ObservedConnector) ParseTx(raw gjson.Result) (data *model.TransactionData, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("parse_tx", err, started)
	}()
	return o.conn.ParseTx(raw)
}
