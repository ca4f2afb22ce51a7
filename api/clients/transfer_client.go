package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/stretchr/testify/mock"
	"github.com/tidwall/gjson"

	"github.com/ruteri/fid-registrar/api"
	regcommon "github.com/ruteri/fid-registrar/common"
)

const DefaultFnamesServerAddr = "https://fnames.farcaster.xyz"

// ErrTransferRejected is returned for any non-2xx answer of the registry.
var ErrTransferRejected = errors.New("registry rejected transfer")

// TransferClient implements api.TransferProvider for the fname registry HTTP API.
type TransferClient struct {
	// ServerAddr is the base URL of the registry
	ServerAddr string

	// HTTPClient defaults to http.DefaultClient
	HTTPClient *http.Client

	Log *slog.Logger
}

func NewTransferClient(serverAddr string, log *slog.Logger) *TransferClient {
	return &TransferClient{
		ServerAddr: serverAddr,
		Log:        log,
	}
}

// SubmitTransfer posts req to /transfers. The request is not retried.
func (c *TransferClient) SubmitTransfer(ctx context.Context, req api.TransferRequest) (*api.TransferResponse, error) {
	log := regcommon.LoggerOrDiscard(c.Log)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("could not encode transfer request: %w", err)
	}

	url := strings.TrimRight(c.ServerAddr, "/") + "/transfers"
	transferReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	transferReq.Header.Set("Content-Type", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	log.Debug("submitting transfer", "url", url, "name", req.Name, "fid", req.FID, "timestamp", req.Timestamp)
	transferResp, err := httpClient.Do(transferReq)
	if err != nil {
		return nil, fmt.Errorf("could not request transfers endpoint: %w", err)
	}
	defer transferResp.Body.Close()

	respBody, err := io.ReadAll(transferResp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read transfers response: %w", err)
	}

	parsedResponse := &api.TransferResponse{
		StatusCode: transferResp.StatusCode,
		Body:       string(respBody),
	}

	if transferResp.StatusCode < 200 || transferResp.StatusCode >= 300 {
		return parsedResponse, fmt.Errorf("%w: status %d: %s", ErrTransferRejected, transferResp.StatusCode, registryErrorMessage(respBody))
	}

	if id := gjson.GetBytes(respBody, "transfer.id"); id.Exists() {
		parsedResponse.TransferID = id.Int()
	}

	log.Debug("transfer accepted", "status", transferResp.StatusCode, "transferId", parsedResponse.TransferID)
	return parsedResponse, nil
}

// registryErrorMessage extracts "code" and "error" from a registry error body,
// falling back to the raw body.
func registryErrorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return strings.TrimSpace(string(body))
	}

	code := gjson.GetBytes(body, "code").String()
	msg := gjson.GetBytes(body, "error").String()
	switch {
	case code != "" && msg != "":
		return code + ": " + msg
	case msg != "":
		return msg
	case code != "":
		return code
	}
	return strings.TrimSpace(string(body))
}

// MockTransferProvider implements a mock TransferProvider for testing.
type MockTransferProvider struct {
	mock.Mock
}

// SubmitTransfer implements the TransferProvider interface for testing.
// The behavior is determined by how the mock is configured in tests.
func (m *MockTransferProvider) SubmitTransfer(ctx context.Context, req api.TransferRequest) (*api.TransferResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*api.TransferResponse)
	return resp, args.Error(1)
}
