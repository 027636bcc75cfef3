package domain

import "sort"

// Transaction is an immutable chain-transfer record reported by the backend.
// USDValue may be absent; the client derives a display-only value at render
// time and never persists it.
type Transaction struct {
	Hash         string   `json:"hash"`
	From         string   `json:"from"`
	To           string   `json:"to"`
	FromUsername *string  `json:"from_username,omitempty"`
	ToUsername   *string  `json:"to_username,omitempty"`
	ValueETH     float64  `json:"value_eth"`
	BlockNumber  int64    `json:"block_number"`
	Nonce        int64    `json:"nonce"`
	USDRateUsed  *float64 `json:"usd_rate_used,omitempty"`
	USDValue     *float64 `json:"usd_value,omitempty"`
}

// SortForDisplay orders transactions by descending block number, ties broken
// by descending nonce. The sort is stable so equal entries keep their
// backend-reported order.
func SortForDisplay(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if txs[i].BlockNumber != txs[j].BlockNumber {
			return txs[i].BlockNumber > txs[j].BlockNumber
		}
		return txs[i].Nonce > txs[j].Nonce
	})
}
