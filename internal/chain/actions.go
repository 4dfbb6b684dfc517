// Package chain simulates on-chain domain actions. No transaction is
// ever broadcast: results carry deterministic pseudo hashes so the
// dashboard can render a realistic flow against the testnet demo.
package chain

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"domainsight/internal/domain"
)

// Simulated gas figures per action, in wei.
const (
	gasTokenize = "50000"
	gasAuction  = "30000"
	gasRenew    = "20000"
	gasTransfer = "25000"
)

// Result describes one simulated transaction.
type Result struct {
	Action          domain.Action `json:"action"`
	TransactionHash string        `json:"transactionHash"`
	GasUsed         string        `json:"gasUsed"`
	BlockNumber     int64         `json:"blockNumber"`
	TokenID         string        `json:"tokenId,omitempty"`
	ToAddress       string        `json:"toAddress,omitempty"`
}

// Simulator fabricates transaction results.
type Simulator struct {
	now func() time.Time
}

// NewSimulator creates a simulator. now defaults to time.Now.
func NewSimulator(now func() time.Time) *Simulator {
	if now == nil {
		now = time.Now
	}
	return &Simulator{now: now}
}

// Execute runs the named action for a domain. action matching is
// case-insensitive; Transfer requires a recipient address.
func (s *Simulator) Execute(action, domainName, toAddress string) (Result, error) {
	switch domain.Action(strings.ToLower(action)) {
	case domain.ActionTokenize:
		return s.Tokenize(domainName), nil
	case domain.ActionAuction:
		return s.Auction(domainName), nil
	case domain.ActionRenew:
		return s.Renew(domainName), nil
	case domain.ActionTransfer:
		return s.Transfer(domainName, toAddress)
	default:
		return Result{}, fmt.Errorf("unsupported action type: %s", action)
	}
}

// Tokenize simulates minting an ownership token for the domain.
func (s *Simulator) Tokenize(domainName string) Result {
	r := s.result(domain.ActionTokenize, domainName)
	r.TokenID = pseudoHash(domainName)
	return r
}

// Auction simulates listing the domain for auction.
func (s *Simulator) Auction(domainName string) Result {
	return s.result(domain.ActionAuction, "auction-"+domainName)
}

// Renew simulates renewing the domain registration.
func (s *Simulator) Renew(domainName string) Result {
	return s.result(domain.ActionRenew, "renew-"+domainName)
}

// Transfer simulates transferring the domain to another address.
func (s *Simulator) Transfer(domainName, toAddress string) (Result, error) {
	if toAddress == "" {
		return Result{}, fmt.Errorf("recipient address is required for transfer")
	}
	r := s.result(domain.ActionTransfer, "transfer-"+domainName+"-"+toAddress)
	r.ToAddress = toAddress
	return r, nil
}

func (s *Simulator) result(action domain.Action, seed string) Result {
	stamped := fmt.Sprintf("%s-%d", seed, s.now().UnixMilli())
	hash := pseudoHash(stamped)

	gas := gasTokenize
	switch action {
	case domain.ActionAuction:
		gas = gasAuction
	case domain.ActionRenew:
		gas = gasRenew
	case domain.ActionTransfer:
		gas = gasTransfer
	}

	return Result{
		Action:          action,
		TransactionHash: hash,
		GasUsed:         gas,
		BlockNumber:     pseudoBlockNumber(hash),
	}
}

// pseudoHash derives a 0x-prefixed 32-byte hash from the input.
func pseudoHash(input string) string {
	sum := sha256.Sum256([]byte(input))
	return "0x" + hex.EncodeToString(sum[:])
}

// pseudoBlockNumber maps a hash onto a plausible testnet block range.
func pseudoBlockNumber(hash string) int64 {
	sum := sha256.Sum256([]byte(hash))
	n := binary.BigEndian.Uint64(sum[:8]) % 1_000_000
	return int64(n) + 1_000_000
}
