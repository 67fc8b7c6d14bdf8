package connector

import (
	"fmt"

	"github.com/certproof-io/btc-anchor-connector/internal/model"
	"github.com/certproof-io/btc-anchor-connector/internal/types"
	"github.com/certproof-io/btc-anchor-connector/pkg/log"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	blockcypherMainnetURL = "https://api.blockcypher.com/v1/btc/main/txs/%s?limit=100"
	blockcypherTestnetURL = "http://api.blockcypher.com/v1/btc/test3/txs/%s?limit=100"
)

// BlockcypherConnector looks up transactions through the blockcypher API.
type BlockcypherConnector struct {
	baseConnector
}

var _ types.TxConnector = (*BlockcypherConnector)(nil)

// NewBlockcypherConnector new blockcypher connector
func NewBlockcypherConnector(network model.Network, client *resty.Client, logger log.Logger) (*BlockcypherConnector, error) {
	var url string
	switch network {
	case model.Mainnet:
		url = blockcypherMainnetURL
	case model.Testnet:
		url = blockcypherTestnetURL
	default:
		return nil, fmt.Errorf("%w: blockcypher does not serve %s", ErrUnsupportedNetwork, network)
	}

	return &BlockcypherConnector{newBaseConnector(url, client, logger)}, nil
}

// LookupTx fetches the transaction and extracts the anchoring data.
func (c *BlockcypherConnector) LookupTx(txid string) (*model.TransactionData, error) {
	raw, err := c.FetchTx(txid)
	if err != nil {
		return nil, err
	}
	return c.ParseTx(raw)
}

// ParseTx walks the "outputs" list: the zero-value output carries the
// anchoring script under "data_hex", outputs with a "spent_by" reference
// mark their first address as revoked.
func (c *BlockcypherConnector) ParseTx(raw gjson.Result) (*model.TransactionData, error) {
	revoked := make(model.AddressSet)
	var script string

	for _, out := range raw.Get("outputs").Array() {
		if outputValue(out, "value") == 0 {
			script = stripAnchorPrefix(out.Get("data_hex").String())
			continue
		}

		if out.Get("spent_by").String() != "" {
			// outputs without an address list (e.g. null data) are skipped
			if addrs := out.Get("addresses").Array(); len(addrs) > 0 {
				revoked.Add(addrs[0].String())
			}
		}
	}

	return c.txData(raw, revoked, script)
}
