package candle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock "github.com/muhammadchandra19/crypto-collector/pkg/questdb/mock"
)

type rowStub struct {
	scanFn func(dest ...any) error
}

func (r rowStub) Scan(dest ...any) error {
	return r.scanFn(dest...)
}

func testCandle() *Candle {
	return &Candle{
		Timestamp:  time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
		Symbol:     "BTC",
		Timeframe:  "1m",
		Open:       100,
		High:       101,
		Low:        99,
		Close:      100.5,
		Volume:     12.5,
		TradeCount: 42,
		Source:     "binance",
	}
}

func TestCandleRepository_Store(t *testing.T) {
	testCases := []struct {
		name     string
		mockFn   func(c *Candle, mock *mock.MockQuestDBClient)
		assertFn func(t *testing.T, err error)
		candle   *Candle
	}{
		{
			name: "success",
			mockFn: func(c *Candle, mock *mock.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), gomock.Any(),
					c.Timestamp, c.Symbol, c.Timeframe, c.Open, c.High,
					c.Low, c.Close, c.Volume, c.TradeCount, c.Source).Return(nil)
			},
			candle: testCandle(),
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error",
			mockFn: func(c *Candle, mock *mock.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), gomock.Any(),
					c.Timestamp, c.Symbol, c.Timeframe, c.Open, c.High,
					c.Low, c.Close, c.Volume, c.TradeCount, c.Source).Return(errors.New("error"))
			},
			candle: testCandle(),
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mock := mock.NewMockQuestDBClient(ctrl)
			tc.mockFn(tc.candle, mock)

			repo := NewRepository(mock)
			err := repo.Store(context.Background(), tc.candle)
			tc.assertFn(t, err)
		})
	}
}

func TestCandleRepository_StoreBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockQuestDBClient(ctrl)
	client.EXPECT().CopyFrom(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(2), nil)

	repo := NewRepository(client)
	err := repo.StoreBatch(context.Background(), []*Candle{testCandle(), testCandle()})
	assert.NoError(t, err)
}

func TestCandleRepository_Exists(t *testing.T) {
	c := testCandle()

	testCases := []struct {
		name     string
		count    int64
		expected bool
	}{
		{name: "found", count: 1, expected: true},
		{name: "not found", count: 0, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock.NewMockQuestDBClient(ctrl)
			client.EXPECT().QueryRow(gomock.Any(), gomock.Any(), c.Symbol, c.Timestamp, c.Timeframe).
				Return(rowStub{scanFn: func(dest ...any) error {
					*(dest[0].(*int64)) = tc.count
					return nil
				}})

			repo := NewRepository(client)
			exists, err := repo.Exists(context.Background(), c.Symbol, c.Timestamp, c.Timeframe)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, exists)
		})
	}
}

func TestCandleRepository_GetBaselineSamples(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockQuestDBClient(ctrl)
	rows := mock.NewMockRowsInterface(ctrl)

	from := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	first := BaselineSample{Timestamp: from.Add(time.Minute), Volume: 10, TradeCount: 25}
	second := BaselineSample{Timestamp: from.Add(2 * time.Minute), Volume: 12, TradeCount: 30}

	gomock.InOrder(
		rows.EXPECT().Next().Return(true),
		rows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
			*(dest[0].(*time.Time)) = first.Timestamp
			*(dest[1].(*float64)) = first.Volume
			*(dest[2].(*int64)) = first.TradeCount
			return nil
		}),
		rows.EXPECT().Next().Return(true),
		rows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
			*(dest[0].(*time.Time)) = second.Timestamp
			*(dest[1].(*float64)) = second.Volume
			*(dest[2].(*int64)) = second.TradeCount
			return nil
		}),
		rows.EXPECT().Next().Return(false),
		rows.EXPECT().Err().Return(nil),
		rows.EXPECT().Close(),
	)
	client.EXPECT().Query(gomock.Any(), gomock.Any(), "BTC", "1m", from).Return(rows, nil)

	repo := NewRepository(client)
	samples, err := repo.GetBaselineSamples(context.Background(), "BTC", "1m", from)
	assert.NoError(t, err)
	assert.Equal(t, []BaselineSample{first, second}, samples)
}

func TestCandleRepository_GetBaselineSamples_QueryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockQuestDBClient(ctrl)
	client.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("error"))

	repo := NewRepository(client)
	_, err := repo.GetBaselineSamples(context.Background(), "BTC", "1m", time.Now())
	assert.Error(t, err)
}
