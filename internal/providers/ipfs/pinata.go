package ipfs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/mintmarket/marketplace/internal/adapter"
)

const PROVIDER_NAME = "pinata"

var ErrNoAPIKey = errors.New("no pinning API key provided")

// PinResult describes a successful pin
type PinResult struct {
	IPFSHash   string `json:"ipfs_hash"`
	PinSize    int64  `json:"pin_size"`
	Timestamp  string `json:"timestamp"`
	IPFSURL    string `json:"ipfs_url"`
	GatewayURL string `json:"gateway_url"`
}

// pinataResponse is the raw Pinata API pin response
type pinataResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

// Pinner defines the interface for IPFS pinning operations
//
//go:generate mockgen -source=pinata.go -destination=../../mocks/ipfs_pinner.go -package=mocks -mock_names=Pinner=MockPinner
type Pinner interface {
	// PinFile pins raw file content, sniffing the content type from the bytes
	PinFile(ctx context.Context, filename string, content []byte) (*PinResult, error)

	// PinJSON pins a JSON document under the given pin name
	PinJSON(ctx context.Context, name string, content interface{}) (*PinResult, error)

	// FetchJSON resolves an ipfs:// URI through the gateway and decodes the JSON body
	FetchJSON(ctx context.Context, ipfsURI string, result interface{}) error

	// GatewayURL converts an ipfs:// URI to a resolvable gateway URL
	GatewayURL(ipfsURI string) string
}

// Config holds the Pinata-compatible pinning service configuration
type Config struct {
	APIURL    string // e.g. https://api.pinata.cloud
	APIKey    string
	APISecret string
	Gateway   string // e.g. https://gateway.pinata.cloud/ipfs/
}

type pinataClient struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	config     Config
}

// NewPinner creates a client for a Pinata-compatible pinning API
func NewPinner(cfg Config, httpClient adapter.HTTPClient, jsonAdapter adapter.JSON) (Pinner, error) {
	if cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, ErrNoAPIKey
	}

	return &pinataClient{
		httpClient: httpClient,
		json:       jsonAdapter,
		config:     cfg,
	}, nil
}

func (c *pinataClient) headers() map[string]string {
	return map[string]string{
		"pinata_api_key":        c.config.APIKey,
		"pinata_secret_api_key": c.config.APISecret,
	}
}

func (c *pinataClient) result(resp pinataResponse) *PinResult {
	return &PinResult{
		IPFSHash:   resp.IpfsHash,
		PinSize:    resp.PinSize,
		Timestamp:  resp.Timestamp,
		IPFSURL:    "ipfs://" + resp.IpfsHash,
		GatewayURL: c.config.Gateway + resp.IpfsHash,
	}
}

// PinFile pins raw file content, sniffing the content type from the bytes
func (c *pinataClient) PinFile(ctx context.Context, filename string, content []byte) (*PinResult, error) {
	contentType := mimetype.Detect(content)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	metadata, err := c.json.Marshal(map[string]interface{}{
		"name": filename,
		"keyvalues": map[string]string{
			"content_type": contentType.String(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pin metadata: %w", err)
	}

	if err := writer.WriteField("pinataMetadata", string(metadata)); err != nil {
		return nil, fmt.Errorf("failed to write metadata field: %w", err)
	}
	if err := writer.WriteField("pinataOptions", `{"cidVersion":1}`); err != nil {
		return nil, fmt.Errorf("failed to write options field: %w", err)
	}

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("failed to write file content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	respBody, err := c.httpClient.Post(ctx,
		c.config.APIURL+"/pinning/pinFileToIPFS",
		writer.FormDataContentType(),
		c.headers(),
		&body,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to pin file: %w", err)
	}

	var resp pinataResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pin response: %w", err)
	}

	return c.result(resp), nil
}

// PinJSON pins a JSON document under the given pin name
func (c *pinataClient) PinJSON(ctx context.Context, name string, content interface{}) (*PinResult, error) {
	payload, err := c.json.Marshal(map[string]interface{}{
		"pinataContent": content,
		"pinataMetadata": map[string]interface{}{
			"name": name,
		},
		"pinataOptions": map[string]interface{}{
			"cidVersion": 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pin payload: %w", err)
	}

	respBody, err := c.httpClient.Post(ctx,
		c.config.APIURL+"/pinning/pinJSONToIPFS",
		"application/json",
		c.headers(),
		bytes.NewReader(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to pin JSON: %w", err)
	}

	var resp pinataResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pin response: %w", err)
	}

	return c.result(resp), nil
}

// FetchJSON resolves an ipfs:// URI through the gateway and decodes the JSON body
func (c *pinataClient) FetchJSON(ctx context.Context, ipfsURI string, result interface{}) error {
	return c.httpClient.Get(ctx, c.GatewayURL(ipfsURI), nil, result)
}

// GatewayURL converts an ipfs:// URI to a resolvable gateway URL.
// Already-resolvable URLs pass through unchanged.
func (c *pinataClient) GatewayURL(ipfsURI string) string {
	if strings.HasPrefix(ipfsURI, "ipfs://") {
		return c.config.Gateway + strings.TrimPrefix(ipfsURI, "ipfs://")
	}
	return ipfsURI
}
