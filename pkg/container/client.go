// Package container is the HTTP client for the stateless compute container
// that performs PDF rendering, metadata extraction, detection, and tiling.
package container

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/plandeck/plandeck/pkg/config"
)

// Client calls the compute container. All requests are POSTs with the
// payload in the body and routing keys in headers. Each call category
// carries its own deadline from ContainerConfig; expiry is classified as
// transient by IsTransient.
type Client struct {
	baseURL string
	cfg     *config.ContainerConfig
	http    *http.Client
}

// NewClient creates a container client. The http.Client carries no global
// timeout — deadlines are applied per call via context.
func NewClient(cfg *config.ContainerConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		cfg:     cfg,
		http:    &http.Client{},
	}
}

// GenerateImages discovers the sheets of a plan PDF.
func (c *Client) GenerateImages(ctx context.Context, planID string, pdf []byte) (*GenerateImagesResult, error) {
	headers := map[string]string{
		"Content-Type": "application/pdf",
		"X-Plan-Id":    planID,
	}
	var result GenerateImagesResult
	if err := c.postJSON(ctx, "/generate-images", pdf, headers, c.cfg.GenerateTimeout, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RenderPages rasterizes the given 1-based pages of a plan PDF. PNG bytes
// are returned decoded.
func (c *Client) RenderPages(ctx context.Context, planID string, pdf []byte, pageNumbers []int) ([]RenderedPage, error) {
	pagesJSON, err := json.Marshal(pageNumbers)
	if err != nil {
		return nil, fmt.Errorf("encoding page numbers: %w", err)
	}
	headers := map[string]string{
		"Content-Type":   "application/pdf",
		"X-Plan-Id":      planID,
		"X-Page-Numbers": string(pagesJSON),
	}

	var result struct {
		Pages []struct {
			PageNumber int    `json:"pageNumber"`
			PNGBase64  string `json:"pngBase64"`
			Width      int    `json:"width"`
			Height     int    `json:"height"`
		} `json:"pages"`
	}
	if err := c.postJSON(ctx, "/render-pages", pdf, headers, c.cfg.GenerateTimeout, &result); err != nil {
		return nil, err
	}

	pages := make([]RenderedPage, 0, len(result.Pages))
	for _, p := range result.Pages {
		png, err := base64.StdEncoding.DecodeString(p.PNGBase64)
		if err != nil {
			return nil, fmt.Errorf("decoding PNG for page %d: %w", p.PageNumber, err)
		}
		pages = append(pages, RenderedPage{
			PageNumber: p.PageNumber,
			PNG:        png,
			Width:      p.Width,
			Height:     p.Height,
		})
	}
	return pages, nil
}

// ExtractMetadata reads the title block of a sheet PNG.
func (c *Client) ExtractMetadata(ctx context.Context, planID, sheetID string, png []byte) (*Metadata, error) {
	headers := map[string]string{
		"Content-Type": "image/png",
		"X-Plan-Id":    planID,
		"X-Sheet-Id":   sheetID,
	}
	var result Metadata
	if err := c.postJSON(ctx, "/extract-metadata", png, headers, c.cfg.MetadataTimeout, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DetectCallouts finds callout markers and grid bubbles on a sheet PNG.
func (c *Client) DetectCallouts(ctx context.Context, planID, sheetID, sheetNumber string, validSheetNumbers []string, png []byte) (*CalloutResult, error) {
	validJSON, err := json.Marshal(validSheetNumbers)
	if err != nil {
		return nil, fmt.Errorf("encoding valid sheet numbers: %w", err)
	}
	headers := map[string]string{
		"Content-Type":          "image/png",
		"X-Plan-Id":             planID,
		"X-Sheet-Id":            sheetID,
		"X-Sheet-Number":        sheetNumber,
		"X-Valid-Sheet-Numbers": string(validJSON),
	}
	var result CalloutResult
	if err := c.postJSON(ctx, "/detect-callouts", png, headers, c.cfg.DetectTimeout, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DetectLayout finds semantic layout regions on a sheet PNG.
func (c *Client) DetectLayout(ctx context.Context, planID, sheetID string, png []byte) (*LayoutResult, error) {
	headers := map[string]string{
		"Content-Type": "image/png",
		"X-Plan-Id":    planID,
		"X-Sheet-Id":   sheetID,
	}
	var result LayoutResult
	if err := c.postJSON(ctx, "/detect-layout", png, headers, c.cfg.DetectTimeout, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateTiles builds the PMTiles pyramid for a sheet PNG.
func (c *Client) GenerateTiles(ctx context.Context, in TilesInput, png []byte) (*TilesResult, error) {
	headers := map[string]string{
		"X-Plan-Id":         in.PlanID,
		"X-Sheet-Id":        in.SheetID,
		"X-Organization-Id": in.OrganizationID,
		"X-Project-Id":      in.ProjectID,
	}
	resp, err := c.post(ctx, "/generate-tiles", png, headers, c.cfg.TilesTimeout)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	archive, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading PMTiles body: %w", err)
	}
	return &TilesResult{
		Archive: archive,
		MinZoom: headerInt(resp, "X-Min-Zoom"),
		MaxZoom: headerInt(resp, "X-Max-Zoom"),
	}, nil
}

// post issues the request and returns the response with a 2xx status.
// Non-2xx responses are drained, closed, and returned as *StatusError.
func (c *Client) post(ctx context.Context, path string, body []byte, headers map[string]string, timeout time.Duration) (*http.Response, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	resp, err := c.doPost(callCtx, path, body, headers)
	if err != nil {
		cancel()
		return nil, err
	}
	// The caller owns the body; tie cancel to body close via wrapper.
	resp.Body = &cancelReadCloser{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

func (c *Client) doPost(ctx context.Context, path string, body []byte, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", path, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling container %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
		return nil, &StatusError{Path: path, StatusCode: resp.StatusCode}
	}
	return resp, nil
}

// postJSON issues the request and decodes a JSON response body into out.
func (c *Client) postJSON(ctx context.Context, path string, body []byte, headers map[string]string, timeout time.Duration, out any) error {
	resp, err := c.post(ctx, path, body, headers, timeout)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

func headerInt(resp *http.Response, name string) int {
	n, err := strconv.Atoi(resp.Header.Get(name))
	if err != nil {
		return 0
	}
	return n
}

type cancelReadCloser struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelReadCloser) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
