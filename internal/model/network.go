package model

// Network identifies the bitcoin network a connector queries.
type Network string

var (
	// Mainnet is the production bitcoin network.
	Mainnet Network = "mainnet"
	// Testnet is the public bitcoin test network (testnet3).
	Testnet Network = "testnet"
)

// Provider identifies one of the supported explorer APIs.
type Provider string

var (
	ProviderBlockchainInfo Provider = "blockchain.info"
	ProviderBlockr         Provider = "blockr.io"
	ProviderBlockcypher    Provider = "blockcypher"
)
