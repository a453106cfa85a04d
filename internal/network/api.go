package network

import (
	"context"
	"net/http"

	"github.com/dukaforge/snippets/pkg/types"
)

// Compile-time interface check.
var _ types.NetworkProvider = (*APIProvider)(nil)

// APIProvider talks to an api-style endpoint: bare JSON responses, no
// envelope, resource-oriented paths.
type APIProvider struct {
	baseURL string
	client  *http.Client
}

// GetNetworkConfig fetches /constants.
func (p *APIProvider) GetNetworkConfig(ctx context.Context) (*types.NetworkConfig, error) {
	var data struct {
		ChainID        string `json:"chainId"`
		GasPerDataByte uint64 `json:"gasPerDataByte"`
		MinGasLimit    uint64 `json:"minGasLimit"`
		MinGasPrice    uint64 `json:"minGasPrice"`
		RoundDuration  uint64 `json:"roundDuration"`
	}
	if err := getJSON(ctx, p.client, p.baseURL+"/constants", &data); err != nil {
		return nil, err
	}
	return &types.NetworkConfig{
		ChainID:        data.ChainID,
		GasPerDataByte: data.GasPerDataByte,
		MinGasLimit:    data.MinGasLimit,
		MinGasPrice:    data.MinGasPrice,
		RoundDuration:  data.RoundDuration,
	}, nil
}

// GetAccount fetches /accounts/{address}.
func (p *APIProvider) GetAccount(ctx context.Context, address string) (*types.AccountOnNetwork, error) {
	var data struct {
		Address string `json:"address"`
		Nonce   uint64 `json:"nonce"`
		Balance string `json:"balance"`
	}
	if err := getJSON(ctx, p.client, p.baseURL+"/accounts/"+address, &data); err != nil {
		return nil, err
	}
	return &types.AccountOnNetwork{Address: data.Address, Nonce: data.Nonce, Balance: data.Balance}, nil
}

// GetFungibleTokensOfAccount fetches /accounts/{address}/tokens.
func (p *APIProvider) GetFungibleTokensOfAccount(ctx context.Context, address string) ([]types.FungibleTokenOfAccount, error) {
	var data []struct {
		Identifier string `json:"identifier"`
		Name       string `json:"name"`
		Balance    string `json:"balance"`
		Decimals   int    `json:"decimals"`
	}
	if err := getJSON(ctx, p.client, p.baseURL+"/accounts/"+address+"/tokens", &data); err != nil {
		return nil, err
	}
	tokens := make([]types.FungibleTokenOfAccount, len(data))
	for i, token := range data {
		tokens[i] = types.FungibleTokenOfAccount{
			Identifier: token.Identifier,
			Name:       token.Name,
			Balance:    token.Balance,
			Decimals:   token.Decimals,
		}
	}
	return tokens, nil
}

// GetNonFungibleTokensOfAccount fetches /accounts/{address}/nfts.
func (p *APIProvider) GetNonFungibleTokensOfAccount(ctx context.Context, address string) ([]types.NonFungibleTokenOfAccount, error) {
	var data []struct {
		Identifier string `json:"identifier"`
		Collection string `json:"collection"`
		Name       string `json:"name"`
		Nonce      uint64 `json:"nonce"`
	}
	if err := getJSON(ctx, p.client, p.baseURL+"/accounts/"+address+"/nfts", &data); err != nil {
		return nil, err
	}
	tokens := make([]types.NonFungibleTokenOfAccount, len(data))
	for i, token := range data {
		tokens[i] = types.NonFungibleTokenOfAccount{
			Identifier: token.Identifier,
			Collection: token.Collection,
			Name:       token.Name,
			Nonce:      token.Nonce,
		}
	}
	return tokens, nil
}

// SendTransaction posts to /transactions.
func (p *APIProvider) SendTransaction(ctx context.Context, tx *types.Transaction) (string, error) {
	var data struct {
		TxHash string `json:"txHash"`
	}
	if err := postJSON(ctx, p.client, p.baseURL+"/transactions", transactionToWire(tx), &data); err != nil {
		return "", err
	}
	return data.TxHash, nil
}

// QueryContract posts to /query.
func (p *APIProvider) QueryContract(ctx context.Context, query *types.ContractQuery) (*types.ContractQueryResponse, error) {
	body := map[string]any{
		"scAddress": query.ContractAddress,
		"funcName":  query.FuncName,
		"caller":    query.Caller,
		"value":     query.Value,
		"args":      encodeBase64Slices(query.Args),
	}

	var data struct {
		ReturnData    []string `json:"returnData"`
		ReturnCode    string   `json:"returnCode"`
		ReturnMessage string   `json:"returnMessage"`
	}
	if err := postJSON(ctx, p.client, p.baseURL+"/query", body, &data); err != nil {
		return nil, err
	}

	returnData, err := decodeBase64Slices(data.ReturnData)
	if err != nil {
		return nil, err
	}
	return &types.ContractQueryResponse{
		ReturnCode:    data.ReturnCode,
		ReturnMessage: data.ReturnMessage,
		ReturnData:    returnData,
	}, nil
}

// GetTransaction fetches /transactions/{hash}.
func (p *APIProvider) GetTransaction(ctx context.Context, hash string) (*types.TransactionOnNetwork, error) {
	var data struct {
		TxHash          string `json:"txHash"`
		Status          string `json:"status"`
		Sender          string `json:"sender"`
		Receiver        string `json:"receiver"`
		Value           string `json:"value"`
		Timestamp       int64  `json:"timestamp"`
		Round           uint64 `json:"round"`
		Epoch           uint64 `json:"epoch"`
		BlockNonce      uint64 `json:"blockNonce"`
		HyperblockNonce uint64 `json:"hyperblockNonce"`
	}
	if err := getJSON(ctx, p.client, p.baseURL+"/transactions/"+hash, &data); err != nil {
		return nil, err
	}
	return &types.TransactionOnNetwork{
		Hash:            hash,
		Status:          data.Status,
		Sender:          data.Sender,
		Receiver:        data.Receiver,
		Value:           data.Value,
		Timestamp:       data.Timestamp,
		Round:           data.Round,
		Epoch:           data.Epoch,
		BlockNonce:      data.BlockNonce,
		HyperblockNonce: data.HyperblockNonce,
	}, nil
}
