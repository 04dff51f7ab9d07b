// Package coingecko adapts the CoinGecko REST API to the metadata source
// contract.
package coingecko

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/muhammadchandra19/crypto-collector/internal/domain/source"
	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/metadata"
	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/source/httpclient"
	"github.com/muhammadchandra19/crypto-collector/pkg/logger"
)

// SourceName identifies this adapter on stored records.
const SourceName = "coingecko"

// Client implements source.MetadataFetcher against the CoinGecko API.
type Client struct {
	config  Config
	coinIDs map[string]string
	http    *httpclient.Client
	logger  logger.Interface
}

// NewClient creates a CoinGecko adapter.
func NewClient(config Config, logger logger.Interface) *Client {
	return &Client{
		config:  config,
		coinIDs: config.coinIDs(),
		http:    httpclient.New(SourceName, config.BaseURL, config.RequestsPerSecond, config.Burst, config.Timeout),
		logger:  logger,
	}
}

var _ source.MetadataFetcher = (*Client)(nil)

// Name returns the adapter's source identifier.
func (c *Client) Name() string {
	return SourceName
}

// coinPayload is the subset of /coins/{id} this adapter reads.
type coinPayload struct {
	ID            string   `json:"id"`
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	MarketCapRank int64    `json:"market_cap_rank"`
	Categories    []string `json:"categories"`
	Links         struct {
		Homepage []string `json:"homepage"`
		ReposURL struct {
			Github []string `json:"github"`
		} `json:"repos_url"`
	} `json:"links"`
}

// FetchMetadata fetches the coin page for every mapped symbol. Symbols
// without a CoinGecko id mapping are reported as malformed so they surface
// in quarantine instead of vanishing.
func (c *Client) FetchMetadata(ctx context.Context, symbols []string) (*source.MetadataBatch, error) {
	batch := &source.MetadataBatch{Source: SourceName}
	var lastErr error

	query := url.Values{
		"localization":   {"false"},
		"tickers":        {"false"},
		"market_data":    {"false"},
		"community_data": {"false"},
		"developer_data": {"false"},
	}

	for _, symbol := range symbols {
		coinID, ok := c.coinIDs[strings.ToUpper(symbol)]
		if !ok {
			batch.Malformed = append(batch.Malformed, source.MalformedRecord{
				Payload: symbol,
				Reason:  fmt.Sprintf("no coingecko id mapping for symbol %q", symbol),
			})
			continue
		}

		var payload coinPayload
		if err := c.http.GetJSON(ctx, "/coins/"+coinID, query, &payload); err != nil {
			if _, ok := source.AsRateLimited(err); ok {
				return nil, err
			}
			if ctx.Err() != nil {
				return nil, err
			}
			lastErr = err
			c.logger.Warn("coin metadata fetch failed",
				logger.Field{Key: "source", Value: SourceName},
				logger.Field{Key: "coin_id", Value: coinID},
				logger.Field{Key: "error", Value: err.Error()},
			)
			continue
		}

		batch.Metadata = append(batch.Metadata, payload.toMetadata(symbol))
	}

	if len(batch.Metadata) == 0 && len(batch.Malformed) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return batch, nil
}

func (p coinPayload) toMetadata(symbol string) *metadata.Metadata {
	m := &metadata.Metadata{
		Timestamp:     time.Now().UTC(),
		CoinID:        p.ID,
		Symbol:        strings.ToUpper(symbol),
		Name:          p.Name,
		MarketCapRank: p.MarketCapRank,
		Categories:    strings.Join(p.Categories, ","),
		Source:        SourceName,
	}
	if len(p.Links.Homepage) > 0 {
		m.WebsiteURL = p.Links.Homepage[0]
	}
	if len(p.Links.ReposURL.Github) > 0 {
		m.GithubURL = p.Links.ReposURL.Github[0]
	}
	return m
}
