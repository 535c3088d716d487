// Package client talks to the remote catalog REST API.
package client

import (
	"catalog/admin/internal/config"

	log "github.com/sirupsen/logrus"
)

// Client bundles the entity services over one HTTP transport.
type Client struct {
	Categories CategoryService
	Products   ProductService

	api *apiClient
}

func New(cfg config.APIConfig) *Client {
	api := newAPIClient(cfg)
	log.Infof("🔗 Catalog API at %s", cfg.BaseURL)

	return &Client{
		Categories: &categoryService{api: api},
		Products:   &productService{api: api},
		api:        api,
	}
}

func (c *Client) Close() error {
	return c.api.Close()
}
