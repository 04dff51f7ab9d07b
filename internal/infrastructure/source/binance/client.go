// Package binance adapts the Binance spot REST API to the source contracts.
// It serves both ticks (24hr ticker snapshots, minute-aligned) and closed
// candles (klines).
package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/muhammadchandra19/crypto-collector/internal/domain/source"
	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/candle"
	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/questdb/tick"
	"github.com/muhammadchandra19/crypto-collector/internal/infrastructure/source/httpclient"
	"github.com/muhammadchandra19/crypto-collector/pkg/errors"
	"github.com/muhammadchandra19/crypto-collector/pkg/interval"
	"github.com/muhammadchandra19/crypto-collector/pkg/logger"
)

// SourceName identifies this adapter on stored records.
const SourceName = "binance"

// Client implements source.TickFetcher and source.CandleFetcher against the
// Binance spot API.
type Client struct {
	config Config
	http   *httpclient.Client
	logger logger.Interface
}

// NewClient creates a Binance adapter.
func NewClient(config Config, logger logger.Interface) *Client {
	return &Client{
		config: config,
		http:   httpclient.New(SourceName, config.BaseURL, config.RequestsPerSecond, config.Burst, config.Timeout),
		logger: logger,
	}
}

var (
	_ source.TickFetcher   = (*Client)(nil)
	_ source.CandleFetcher = (*Client)(nil)
)

// Name returns the adapter's source identifier.
func (c *Client) Name() string {
	return SourceName
}

// ticker24hr is the subset of /api/v3/ticker/24hr this adapter reads.
// Binance serializes prices and volumes as strings.
type ticker24hr struct {
	Symbol    string `json:"symbol"`
	LastPrice string `json:"lastPrice"`
	BidPrice  string `json:"bidPrice"`
	AskPrice  string `json:"askPrice"`
	Volume    string `json:"volume"`
	CloseTime int64  `json:"closeTime"`
}

// FetchTicks snapshots the 24hr ticker for every symbol. One symbol failing
// does not abort the batch; a rate-limit rejection does, so the caller can
// back off instead of burning the remaining symbols into the same wall.
func (c *Client) FetchTicks(ctx context.Context, symbols []string) (*source.TickBatch, error) {
	batch := &source.TickBatch{Source: SourceName}
	var lastErr error

	for _, symbol := range symbols {
		var payload ticker24hr
		query := url.Values{"symbol": {c.pair(symbol)}}
		if err := c.http.GetJSON(ctx, "/api/v3/ticker/24hr", query, &payload); err != nil {
			if _, ok := source.AsRateLimited(err); ok {
				return nil, err
			}
			if ctx.Err() != nil {
				return nil, err
			}
			lastErr = err
			c.logger.Warn("ticker fetch failed",
				logger.Field{Key: "source", Value: SourceName},
				logger.Field{Key: "symbol", Value: symbol},
				logger.Field{Key: "error", Value: err.Error()},
			)
			continue
		}

		t, err := payload.toTick(symbol)
		if err != nil {
			raw, _ := json.Marshal(payload)
			batch.Malformed = append(batch.Malformed, source.MalformedRecord{
				Payload: string(raw),
				Reason:  err.Error(),
			})
			continue
		}
		batch.Ticks = append(batch.Ticks, t)
	}

	if len(batch.Ticks) == 0 && len(batch.Malformed) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return batch, nil
}

func (p ticker24hr) toTick(symbol string) (*tick.Tick, error) {
	price, err := strconv.ParseFloat(p.LastPrice, 64)
	if err != nil {
		return nil, fmt.Errorf("unparseable lastPrice %q", p.LastPrice)
	}
	volume, err := strconv.ParseFloat(p.Volume, 64)
	if err != nil {
		return nil, fmt.Errorf("unparseable volume %q", p.Volume)
	}
	bid, err := strconv.ParseFloat(p.BidPrice, 64)
	if err != nil {
		return nil, fmt.Errorf("unparseable bidPrice %q", p.BidPrice)
	}
	ask, err := strconv.ParseFloat(p.AskPrice, 64)
	if err != nil {
		return nil, fmt.Errorf("unparseable askPrice %q", p.AskPrice)
	}
	if p.CloseTime <= 0 {
		return nil, fmt.Errorf("missing closeTime")
	}

	return &tick.Tick{
		Timestamp: time.UnixMilli(p.CloseTime).UTC().Truncate(time.Minute),
		Symbol:    symbol,
		Price:     price,
		Volume:    volume,
		Bid:       bid,
		Ask:       ask,
		Source:    SourceName,
	}, nil
}

// FetchCandles fetches the most recent closed klines for every symbol. The
// kline covering the current bucket is still accumulating and is skipped.
func (c *Client) FetchCandles(ctx context.Context, symbols []string, timeframe interval.Interval) (*source.CandleBatch, error) {
	batch := &source.CandleBatch{Source: SourceName}
	var lastErr error
	now := time.Now().UTC()

	for _, symbol := range symbols {
		var klines []json.RawMessage
		query := url.Values{
			"symbol":   {c.pair(symbol)},
			"interval": {timeframe.Name},
			"limit":    {strconv.Itoa(c.config.CandleLookback)},
		}
		if err := c.http.GetJSON(ctx, "/api/v3/klines", query, &klines); err != nil {
			if _, ok := source.AsRateLimited(err); ok {
				return nil, err
			}
			if ctx.Err() != nil {
				return nil, err
			}
			lastErr = err
			c.logger.Warn("kline fetch failed",
				logger.Field{Key: "source", Value: SourceName},
				logger.Field{Key: "symbol", Value: symbol},
				logger.Field{Key: "timeframe", Value: timeframe.Name},
				logger.Field{Key: "error", Value: err.Error()},
			)
			continue
		}

		for _, raw := range klines {
			cndl, err := parseKline(raw, symbol, timeframe.Name)
			if err != nil {
				batch.Malformed = append(batch.Malformed, source.MalformedRecord{
					Payload: string(raw),
					Reason:  err.Error(),
				})
				continue
			}
			if !cndl.Timestamp.Add(timeframe.Duration).After(now) {
				batch.Candles = append(batch.Candles, cndl)
			}
		}
	}

	if len(batch.Candles) == 0 && len(batch.Malformed) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return batch, nil
}

// parseKline decodes one kline array:
// [openTime, open, high, low, close, volume, closeTime, quoteVolume, trades, ...]
func parseKline(raw json.RawMessage, symbol, timeframe string) (*candle.Candle, error) {
	var fields []any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, errors.TracerFromError(err)
	}
	if len(fields) < 9 {
		return nil, fmt.Errorf("kline has %d fields, want at least 9", len(fields))
	}

	openTime, ok := fields[0].(float64)
	if !ok {
		return nil, fmt.Errorf("kline openTime is not a number")
	}

	prices := make([]float64, 5)
	names := []string{"open", "high", "low", "close", "volume"}
	for i := range prices {
		s, ok := fields[i+1].(string)
		if !ok {
			return nil, fmt.Errorf("kline %s is not a string", names[i])
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("unparseable kline %s %q", names[i], s)
		}
		prices[i] = v
	}

	trades, ok := fields[8].(float64)
	if !ok {
		return nil, fmt.Errorf("kline trade count is not a number")
	}

	return &candle.Candle{
		Timestamp:  time.UnixMilli(int64(openTime)).UTC(),
		Symbol:     symbol,
		Timeframe:  timeframe,
		Open:       prices[0],
		High:       prices[1],
		Low:        prices[2],
		Close:      prices[3],
		Volume:     prices[4],
		TradeCount: int64(trades),
		Source:     SourceName,
	}, nil
}

func (c *Client) pair(symbol string) string {
	return strings.ToUpper(symbol) + c.config.QuoteAsset
}
