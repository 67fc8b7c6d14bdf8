package model

import (
	"encoding/json"
	"sort"
)

// AddressSet is an unordered set of bitcoin addresses.
type AddressSet map[string]struct{}

// NewAddressSet returns a set holding the given addresses.
func NewAddressSet(addrs ...string) AddressSet {
	s := make(AddressSet, len(addrs))
	for _, a := range addrs {
		s.Add(a)
	}
	return s
}

func (s AddressSet) Add(addr string) {
	s[addr] = struct{}{}
}

func (s AddressSet) Contains(addr string) bool {
	_, ok := s[addr]
	return ok
}

// Sorted returns the addresses in lexicographic order.
func (s AddressSet) Sorted() []string {
	addrs := make([]string, 0, len(s))
	for a := range s {
		addrs = append(addrs, a)
	}
	sort.Strings(addrs)
	return addrs
}

// MarshalJSON renders the set as a sorted array so output is deterministic.
func (s AddressSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *AddressSet) UnmarshalJSON(data []byte) error {
	var addrs []string
	if err := json.Unmarshal(data, &addrs); err != nil {
		return err
	}
	*s = NewAddressSet(addrs...)
	return nil
}

// TransactionData is the canonical result of a transaction lookup.
type TransactionData struct {
	// revoked_addresses holds the addresses of outputs the provider reports
	// as already spent
	RevokedAddresses AddressSet `json:"revoked_addresses"`
	// embedded_script is the hex payload of the zero-value anchoring output,
	// framing prefix stripped, never empty
	Script string `json:"embedded_script"`
}
