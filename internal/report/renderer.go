package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// RenderConfig holds the rendering-service endpoints. All endpoints come
// from configuration; the service is an opaque collaborator.
type RenderConfig struct {
	BaseURL  string
	PDFPath  string
	HTMLPath string
	Timeout  time.Duration
}

// RenderClient submits assembled report documents to the external rendering
// service. Success yields a PDF binary or an HTML string; failure propagates
// to the caller with the upstream message when available.
type RenderClient struct {
	cfg    RenderConfig
	client *http.Client
	logger *zap.Logger
}

// NewRenderClient creates a render client
func NewRenderClient(cfg RenderConfig, logger *zap.Logger) *RenderClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &RenderClient{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (c *RenderClient) post(ctx context.Context, path string, doc *Document) ([]byte, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report document: %w", err)
	}

	url := c.cfg.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build render request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Render request failed", zap.String("url", url), zap.Error(err))
		return nil, fmt.Errorf("render request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read render response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := string(body)
		if len(msg) > 300 {
			msg = msg[:300]
		}
		c.logger.Error("Render service rejected document",
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg))
		return nil, fmt.Errorf("render service returned %d: %s", resp.StatusCode, msg)
	}
	return body, nil
}

// RenderPDF submits the document and returns the PDF binary
func (c *RenderClient) RenderPDF(ctx context.Context, doc *Document) ([]byte, error) {
	return c.post(ctx, c.cfg.PDFPath, doc)
}

// RenderHTML submits the document and returns the HTML preview
func (c *RenderClient) RenderHTML(ctx context.Context, doc *Document) (string, error) {
	body, err := c.post(ctx, c.cfg.HTMLPath, doc)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
