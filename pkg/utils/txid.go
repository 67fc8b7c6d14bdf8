package utils

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pkg/errors"
)

// ParseTxID parses a bitcoin transaction id. Unlike chainhash, short input
// is rejected instead of zero-padded.
func ParseTxID(txid string) (*chainhash.Hash, error) {
	if len(txid) != chainhash.MaxHashStringSize {
		return nil, errors.Errorf("transaction id must be %d hex characters, got %d",
			chainhash.MaxHashStringSize, len(txid))
	}

	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return nil, errors.Wrap(err, "parse transaction id")
	}
	return hash, nil
}
