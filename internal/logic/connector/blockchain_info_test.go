package connector

import (
	"testing"

	"github.com/certproof-io/btc-anchor-connector/internal/model"
	"github.com/certproof-io/btc-anchor-connector/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestNewBlockchainInfoConnector(t *testing.T) {
	conn, err := NewBlockchainInfoConnector(model.Mainnet, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, blockchainInfoURL, conn.url)

	_, err = NewBlockchainInfoConnector(model.Testnet, nil, nil)
	require.ErrorIs(t, err, ErrUnsupportedNetwork)
}

func TestBlockchainInfoParseTx(t *testing.T) {
	conn, err := NewBlockchainInfoConnector(model.Mainnet, nil, log.NewNopLogger())
	require.NoError(t, err)

	testCase := []struct {
		name        string
		raw         string
		wantScript  string
		wantRevoked []string
		wantErr     error
	}{
		{
			name:        "anchor plus revoked address",
			raw:         `{"out":[{"value":0,"script":"6a066f7000aabbcc"},{"value":1000,"spent":true,"addr":"1ABC"}]}`,
			wantScript:  "00aabbcc",
			wantRevoked: []string{"1ABC"},
		},
		{
			name:        "unspent output is not revoked",
			raw:         `{"out":[{"value":0,"script":"6a066f7000aabbcc"},{"value":1000,"spent":false,"addr":"1ABC"}]}`,
			wantScript:  "00aabbcc",
			wantRevoked: []string{},
		},
		{
			name:        "missing spent flag is not revoked",
			raw:         `{"out":[{"value":0,"script":"6a066f7000aabbcc"},{"value":1000,"addr":"1ABC"}]}`,
			wantScript:  "00aabbcc",
			wantRevoked: []string{},
		},
		{
			name:        "missing value counts as non-zero",
			raw:         `{"out":[{"script":"abcdef0011","spent":true,"addr":"1ABC"},{"value":0,"script":"6a066f70ffee"}]}`,
			wantScript:  "ffee",
			wantRevoked: []string{"1ABC"},
		},
		{
			name:        "last zero value output wins",
			raw:         `{"out":[{"value":0,"script":"6a066f70111111"},{"value":0,"script":"6a066f70222222"}]}`,
			wantScript:  "222222",
			wantRevoked: []string{},
		},
		{
			name:        "multiple revoked addresses",
			raw:         `{"out":[{"value":0,"script":"6a066f70cafe55"},{"value":10,"spent":true,"addr":"1MJB"},{"value":20,"spent":true,"addr":"1ABC"}]}`,
			wantScript:  "cafe55",
			wantRevoked: []string{"1ABC", "1MJB"},
		},
		{
			name:    "no zero value output",
			raw:     `{"out":[{"value":5,"spent":true,"addr":"1ABC"}]}`,
			wantErr: ErrInvalidTransaction,
		},
		{
			name:    "script no longer than the prefix",
			raw:     `{"out":[{"value":0,"script":"6a066f70"}]}`,
			wantErr: ErrInvalidTransaction,
		},
		{
			name:    "zero value output without script field",
			raw:     `{"out":[{"value":0}]}`,
			wantErr: ErrInvalidTransaction,
		},
		{
			name:    "empty output list",
			raw:     `{"out":[]}`,
			wantErr: ErrInvalidTransaction,
		},
		{
			name:    "missing output list",
			raw:     `{"error":"transaction not found"}`,
			wantErr: ErrInvalidTransaction,
		},
	}

	for _, tc := range testCase {
		t.Run(tc.name, func(t *testing.T) {
			data, err := conn.ParseTx(gjson.Parse(tc.raw))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantScript, data.Script)
			assert.Equal(t, tc.wantRevoked, data.RevokedAddresses.Sorted())
		})
	}
}

func TestBlockchainInfoParseTxIdempotent(t *testing.T) {
	conn, err := NewBlockchainInfoConnector(model.Mainnet, nil, log.NewNopLogger())
	require.NoError(t, err)

	raw := gjson.Parse(`{"out":[{"value":0,"script":"6a066f7000aabbcc"},{"value":1000,"spent":true,"addr":"1ABC"}]}`)

	first, err := conn.ParseTx(raw)
	require.NoError(t, err)
	second, err := conn.ParseTx(raw)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
