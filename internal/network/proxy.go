package network

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dukaforge/snippets/pkg/types"
)

// Compile-time interface check.
var _ types.NetworkProvider = (*ProxyProvider)(nil)

// ProxyProvider talks to a gateway-style endpoint. Every response wraps the
// payload in a {data, error, code} envelope which is unwrapped here; a
// non-empty error field fails the call.
type ProxyProvider struct {
	baseURL string
	client  *http.Client
}

// proxyEnvelope is the gateway response wrapper.
type proxyEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
	Code  string          `json:"code"`
}

// getUnwrapped GETs url and decodes the envelope's data field into dest.
func (p *ProxyProvider) getUnwrapped(ctx context.Context, url string, dest any) error {
	var envelope proxyEnvelope
	if err := getJSON(ctx, p.client, url, &envelope); err != nil {
		return err
	}
	return unwrap(envelope, url, dest)
}

func (p *ProxyProvider) postUnwrapped(ctx context.Context, url string, body, dest any) error {
	var envelope proxyEnvelope
	if err := postJSON(ctx, p.client, url, body, &envelope); err != nil {
		return err
	}
	return unwrap(envelope, url, dest)
}

func unwrap(envelope proxyEnvelope, url string, dest any) error {
	if envelope.Error != "" {
		return fmt.Errorf("gateway error from %s: %s", url, envelope.Error)
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		return fmt.Errorf("decoding gateway data from %s: %w", url, err)
	}
	return nil
}

// GetNetworkConfig fetches /network/config.
func (p *ProxyProvider) GetNetworkConfig(ctx context.Context) (*types.NetworkConfig, error) {
	var data struct {
		Config struct {
			ChainID        string `json:"erd_chain_id"`
			GasPerDataByte uint64 `json:"erd_gas_per_data_byte"`
			MinGasLimit    uint64 `json:"erd_min_gas_limit"`
			MinGasPrice    uint64 `json:"erd_min_gas_price"`
			RoundDuration  uint64 `json:"erd_round_duration"`
		} `json:"config"`
	}
	if err := p.getUnwrapped(ctx, p.baseURL+"/network/config", &data); err != nil {
		return nil, err
	}
	return &types.NetworkConfig{
		ChainID:        data.Config.ChainID,
		GasPerDataByte: data.Config.GasPerDataByte,
		MinGasLimit:    data.Config.MinGasLimit,
		MinGasPrice:    data.Config.MinGasPrice,
		RoundDuration:  data.Config.RoundDuration,
	}, nil
}

// GetAccount fetches /address/{address}.
func (p *ProxyProvider) GetAccount(ctx context.Context, address string) (*types.AccountOnNetwork, error) {
	var data struct {
		Account struct {
			Address string `json:"address"`
			Nonce   uint64 `json:"nonce"`
			Balance string `json:"balance"`
		} `json:"account"`
	}
	if err := p.getUnwrapped(ctx, p.baseURL+"/address/"+address, &data); err != nil {
		return nil, err
	}
	return &types.AccountOnNetwork{
		Address: data.Account.Address,
		Nonce:   data.Account.Nonce,
		Balance: data.Account.Balance,
	}, nil
}

// proxyESDT is one entry of the /address/{address}/esdt response. The gateway
// mixes fungible and non-fungible holdings in one map; a non-zero nonce marks
// a non-fungible item.
type proxyESDT struct {
	TokenIdentifier string `json:"tokenIdentifier"`
	Balance         string `json:"balance"`
	Nonce           uint64 `json:"nonce"`
}

func (p *ProxyProvider) getESDTs(ctx context.Context, address string) ([]proxyESDT, error) {
	var data struct {
		ESDTs map[string]proxyESDT `json:"esdts"`
	}
	if err := p.getUnwrapped(ctx, p.baseURL+"/address/"+address+"/esdt", &data); err != nil {
		return nil, err
	}
	tokens := make([]proxyESDT, 0, len(data.ESDTs))
	for _, token := range data.ESDTs {
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// GetFungibleTokensOfAccount returns the zero-nonce holdings of the account.
func (p *ProxyProvider) GetFungibleTokensOfAccount(ctx context.Context, address string) ([]types.FungibleTokenOfAccount, error) {
	esdts, err := p.getESDTs(ctx, address)
	if err != nil {
		return nil, err
	}
	tokens := []types.FungibleTokenOfAccount{}
	for _, esdt := range esdts {
		if esdt.Nonce != 0 {
			continue
		}
		tokens = append(tokens, types.FungibleTokenOfAccount{
			Identifier: esdt.TokenIdentifier,
			Balance:    esdt.Balance,
		})
	}
	return tokens, nil
}

// GetNonFungibleTokensOfAccount returns the non-zero-nonce holdings.
func (p *ProxyProvider) GetNonFungibleTokensOfAccount(ctx context.Context, address string) ([]types.NonFungibleTokenOfAccount, error) {
	esdts, err := p.getESDTs(ctx, address)
	if err != nil {
		return nil, err
	}
	tokens := []types.NonFungibleTokenOfAccount{}
	for _, esdt := range esdts {
		if esdt.Nonce == 0 {
			continue
		}
		tokens = append(tokens, types.NonFungibleTokenOfAccount{
			Identifier: esdt.TokenIdentifier,
			Nonce:      esdt.Nonce,
		})
	}
	return tokens, nil
}

// SendTransaction posts to /transaction/send and returns the assigned hash.
func (p *ProxyProvider) SendTransaction(ctx context.Context, tx *types.Transaction) (string, error) {
	var data struct {
		TxHash string `json:"txHash"`
	}
	if err := p.postUnwrapped(ctx, p.baseURL+"/transaction/send", transactionToWire(tx), &data); err != nil {
		return "", err
	}
	return data.TxHash, nil
}

// QueryContract posts a read-only VM query to /vm-values/query.
func (p *ProxyProvider) QueryContract(ctx context.Context, query *types.ContractQuery) (*types.ContractQueryResponse, error) {
	body := map[string]any{
		"scAddress": query.ContractAddress,
		"funcName":  query.FuncName,
		"caller":    query.Caller,
		"value":     query.Value,
		"args":      encodeBase64Slices(query.Args),
	}

	var data struct {
		Data struct {
			ReturnData    []string `json:"returnData"`
			ReturnCode    string   `json:"returnCode"`
			ReturnMessage string   `json:"returnMessage"`
		} `json:"data"`
	}
	if err := p.postUnwrapped(ctx, p.baseURL+"/vm-values/query", body, &data); err != nil {
		return nil, err
	}

	returnData, err := decodeBase64Slices(data.Data.ReturnData)
	if err != nil {
		return nil, err
	}
	return &types.ContractQueryResponse{
		ReturnCode:    data.Data.ReturnCode,
		ReturnMessage: data.Data.ReturnMessage,
		ReturnData:    returnData,
	}, nil
}

// GetTransaction fetches /transaction/{hash} with results.
func (p *ProxyProvider) GetTransaction(ctx context.Context, hash string) (*types.TransactionOnNetwork, error) {
	var data struct {
		Transaction struct {
			Status          string `json:"status"`
			Sender          string `json:"sender"`
			Receiver        string `json:"receiver"`
			Value           string `json:"value"`
			Timestamp       int64  `json:"timestamp"`
			Round           uint64 `json:"round"`
			Epoch           uint64 `json:"epoch"`
			BlockNonce      uint64 `json:"blockNonce"`
			HyperblockNonce uint64 `json:"hyperblockNonce"`
		} `json:"transaction"`
	}
	if err := p.getUnwrapped(ctx, p.baseURL+"/transaction/"+hash+"?withResults=true", &data); err != nil {
		return nil, err
	}
	return &types.TransactionOnNetwork{
		Hash:            hash,
		Status:          data.Transaction.Status,
		Sender:          data.Transaction.Sender,
		Receiver:        data.Transaction.Receiver,
		Value:           data.Transaction.Value,
		Timestamp:       data.Transaction.Timestamp,
		Round:           data.Transaction.Round,
		Epoch:           data.Transaction.Epoch,
		BlockNonce:      data.Transaction.BlockNonce,
		HyperblockNonce: data.Transaction.HyperblockNonce,
	}, nil
}

// transactionToWire shapes a transaction for submission. Data and signature
// travel base64- and hex-encoded respectively.
func transactionToWire(tx *types.Transaction) map[string]any {
	return map[string]any{
		"nonce":     tx.Nonce,
		"value":     tx.Value,
		"sender":    tx.Sender,
		"receiver":  tx.Receiver,
		"gasPrice":  tx.GasPrice,
		"gasLimit":  tx.GasLimit,
		"data":      base64.StdEncoding.EncodeToString(tx.Data),
		"chainID":   tx.ChainID,
		"version":   tx.Version,
		"signature": fmt.Sprintf("%x", tx.Signature),
	}
}

func encodeBase64Slices(args [][]byte) []string {
	encoded := make([]string, len(args))
	for i, arg := range args {
		encoded[i] = base64.StdEncoding.EncodeToString(arg)
	}
	return encoded
}

func decodeBase64Slices(encoded []string) ([][]byte, error) {
	decoded := make([][]byte, len(encoded))
	for i, item := range encoded {
		data, err := base64.StdEncoding.DecodeString(item)
		if err != nil {
			return nil, fmt.Errorf("decoding return data: %w", err)
		}
		decoded[i] = data
	}
	return decoded, nil
}
