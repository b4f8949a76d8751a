package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/vheb/biomap/internal/config"
	"github.com/vheb/biomap/internal/logger"
)

// imageClient queries a MediaWiki-compatible image-metadata endpoint for the
// original page image of an exact title. It implements [ImageSource].
type imageClient struct {
	client *resty.Client
	logger *logger.Logger
}

// NewImageClient constructs an [ImageSource] backed by the configured
// image-metadata API. The client identifies itself with the configured
// descriptive User-Agent and bounds every lookup by the configured timeout.
func NewImageClient(cfg config.Image, logger *logger.Logger) ImageSource {
	cli := resty.New().
		SetBaseURL(cfg.APIBaseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("User-Agent", cfg.UserAgent)

	return &imageClient{client: cli, logger: logger}
}

// imageQueryResponse is the subset of the metadata response the lookup
// needs: pages keyed by page id, each optionally carrying an original-image
// descriptor.
type imageQueryResponse struct {
	Query struct {
		Pages map[string]struct {
			Original struct {
				Source string `json:"source"`
			} `json:"original"`
		} `json:"pages"`
	} `json:"query"`
}

// LookupOriginalImage implements [ImageSource]. The title is matched exactly
// (no search), with redirects followed.
func (c *imageClient) LookupOriginalImage(ctx context.Context, title string) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"action":    "query",
			"format":    "json",
			"prop":      "pageimages",
			"piprop":    "original",
			"redirects": "1",
			"titles":    title,
		}).
		Get("")
	if err != nil {
		return "", fmt.Errorf("image lookup request: %w", err)
	}

	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("%w: image lookup returned %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	var decoded imageQueryResponse
	if err = json.Unmarshal(resp.Body(), &decoded); err != nil {
		return "", fmt.Errorf("decode image lookup response: %w", err)
	}

	for _, page := range decoded.Query.Pages {
		if page.Original.Source != "" {
			return page.Original.Source, nil
		}
	}

	return "", ErrNoImage
}
