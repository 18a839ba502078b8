package domain

// Wallet is the simulated wallet session. Presence implies "connected",
// absence implies "disconnected". Session metadata such as chain id lives in
// the chain adapter, not here.
type Wallet struct {
	Address string `json:"address"`
}
