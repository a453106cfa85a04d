// Package integration exercises the full session lifecycle against a fake
// gateway: load, sync, record, await, snapshot, report, destroy.
package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// gatewayAccount is one account known to the fake gateway.
type gatewayAccount struct {
	Nonce   uint64
	Balance string
	ESDTs   map[string]gatewayESDT
}

// gatewayESDT is one token holding; a non-zero nonce marks a non-fungible.
type gatewayESDT struct {
	Balance string
	Nonce   uint64
}

// fakeGateway mimics a proxy-style endpoint: every response wraps its payload
// in a {data, error, code} envelope. Transactions are assigned sequential
// hashes and walk a scripted status sequence, one step per poll.
type fakeGateway struct {
	mu       sync.Mutex
	accounts map[string]*gatewayAccount
	statuses []string // Per-poll status script for every transaction.
	polls    map[string]int
	sent     int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		accounts: make(map[string]*gatewayAccount),
		statuses: []string{"success"},
		polls:    make(map[string]int),
	}
}

func (g *fakeGateway) addAccount(address string, nonce uint64, balance string) {
	g.accounts[address] = &gatewayAccount{Nonce: nonce, Balance: balance, ESDTs: make(map[string]gatewayESDT)}
}

func (g *fakeGateway) setESDT(address, identifier string, token gatewayESDT) {
	g.accounts[address].ESDTs[identifier] = token
}

func (g *fakeGateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	defer g.mu.Unlock()

	path := r.URL.Path
	switch {
	case path == "/network/config":
		writeEnvelope(w, map[string]any{"config": map[string]any{
			"erd_chain_id":          "local-testnet",
			"erd_gas_per_data_byte": 1500,
			"erd_min_gas_limit":     50000,
			"erd_min_gas_price":     1000000000,
			"erd_round_duration":    6000,
		}})

	case strings.HasPrefix(path, "/address/") && strings.HasSuffix(path, "/esdt"):
		address := strings.TrimSuffix(strings.TrimPrefix(path, "/address/"), "/esdt")
		account, ok := g.accounts[address]
		if !ok {
			writeEnvelopeError(w, "account not found")
			return
		}
		esdts := make(map[string]any, len(account.ESDTs))
		for identifier, token := range account.ESDTs {
			esdts[identifier] = map[string]any{
				"tokenIdentifier": identifier,
				"balance":         token.Balance,
				"nonce":           token.Nonce,
			}
		}
		writeEnvelope(w, map[string]any{"esdts": esdts})

	case strings.HasPrefix(path, "/address/"):
		address := strings.TrimPrefix(path, "/address/")
		account, ok := g.accounts[address]
		if !ok {
			writeEnvelopeError(w, "account not found")
			return
		}
		writeEnvelope(w, map[string]any{"account": map[string]any{
			"address": address,
			"nonce":   account.Nonce,
			"balance": account.Balance,
		}})

	case path == "/transaction/send":
		g.sent++
		writeEnvelope(w, map[string]any{"txHash": fmt.Sprintf("hash-%04d", g.sent)})

	case strings.HasPrefix(path, "/transaction/"):
		hash := strings.TrimPrefix(path, "/transaction/")
		poll := g.polls[hash]
		if poll < len(g.statuses)-1 {
			g.polls[hash] = poll + 1
		}
		writeEnvelope(w, map[string]any{"transaction": map[string]any{
			"status": g.statuses[poll],
			"round":  42,
			"epoch":  7,
		}})

	case path == "/vm-values/query":
		writeEnvelope(w, map[string]any{"data": map[string]any{
			"returnCode": "ok",
			"returnData": []string{"BQ=="}, // Base64 for 0x05.
		}})

	default:
		writeEnvelopeError(w, "unknown route "+path)
	}
}

func writeEnvelope(w http.ResponseWriter, data any) {
	json.NewEncoder(w).Encode(map[string]any{"data": data, "error": "", "code": "successful"})
}

func writeEnvelopeError(w http.ResponseWriter, message string) {
	json.NewEncoder(w).Encode(map[string]any{"data": nil, "error": message, "code": "internal_issue"})
}

// startSessionFixture starts a fake gateway and writes a matching session
// config into a temp folder. Returns the gateway and the folder.
func startSessionFixture(t *testing.T, sessionID string) (*fakeGateway, string) {
	t.Helper()

	gateway := newFakeGateway()
	gateway.addAccount("erd1alice", 5, "1000000000000000000")
	gateway.addAccount("erd1bob", 0, "500")
	gateway.addAccount("erd1adder", 0, "0")

	server := httptest.NewServer(gateway)
	t.Cleanup(server.Close)

	folder := t.TempDir()
	config := fmt.Sprintf(`{
		"networkProvider": {"type": "proxy", "url": %q, "timeout": 5},
		"users": [
			{"name": "alice", "address": "erd1alice"},
			{"name": "bob", "address": "erd1bob"}
		],
		"reporting": {"outFolder": %q}
	}`, server.URL, filepath.Join(folder, "reports"))

	file := filepath.Join(folder, sessionID+".session.json")
	require.NoError(t, os.WriteFile(file, []byte(config), 0o644))
	return gateway, folder
}
