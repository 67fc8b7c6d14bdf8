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
	blockrMainnetURL = "https://btc.blockr.io/api/v1/tx/info/%s"
	blockrTestnetURL = "https://tbtc.blockr.io/api/v1/tx/info/%s"
)

// blockrSpentCode is the numeric code blockr.io puts in "is_spent" for a
// spent output. Boolean flags do not count.
const blockrSpentCode = 49

// BlockrConnector looks up transactions through the blockr.io API. This is
// the default provider.
type BlockrConnector struct {
	baseConnector
}

var _ types.TxConnector = (*BlockrConnector)(nil)

// NewBlockrConnector new blockr.io connector
func NewBlockrConnector(network model.Network, client *resty.Client, logger log.Logger) (*BlockrConnector, error) {
	var url string
	switch network {
	case model.Mainnet:
		url = blockrMainnetURL
	case model.Testnet:
		url = blockrTestnetURL
	default:
		return nil, fmt.Errorf("%w: blockr.io does not serve %s", ErrUnsupportedNetwork, network)
	}

	return &BlockrConnector{newBaseConnector(url, client, logger)}, nil
}

// LookupTx fetches the transaction and extracts the anchoring data.
func (c *BlockrConnector) LookupTx(txid string) (*model.TransactionData, error) {
	raw, err := c.FetchTx(txid)
	if err != nil {
		return nil, err
	}
	return c.ParseTx(raw)
}

// ParseTx walks the "data.vouts" list: the zero-amount output carries the
// anchoring script under "extras.script", spent outputs mark their address
// as revoked.
func (c *BlockrConnector) ParseTx(raw gjson.Result) (*model.TransactionData, error) {
	revoked := make(model.AddressSet)
	var script string

	for _, vout := range raw.Get("data.vouts").Array() {
		if outputValue(vout, "amount") == 0 {
			script = stripAnchorPrefix(vout.Get("extras.script").String())
			continue
		}

		isSpent := vout.Get("is_spent")
		if isSpent.Exists() && isSpent.Float() == blockrSpentCode {
			if addr := vout.Get("address").String(); addr != "" {
				revoked.Add(addr)
			}
		}
	}

	return c.txData(raw, revoked, script)
}
