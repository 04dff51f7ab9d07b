package tick

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock "github.com/muhammadchandra19/crypto-collector/pkg/questdb/mock"
)

// rowStub satisfies pgx.Row for QueryRow expectations.
type rowStub struct {
	scanFn func(dest ...any) error
}

func (r rowStub) Scan(dest ...any) error {
	return r.scanFn(dest...)
}

func testTick() *Tick {
	return &Tick{
		Timestamp: time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
		Symbol:    "BTC",
		Price:     50000,
		Volume:    12.5,
		Bid:       49999,
		Ask:       50001,
		Source:    "binance",
	}
}

func TestTickRepository_Store(t *testing.T) {
	testCases := []struct {
		name     string
		mockFn   func(tickData *Tick, mock *mock.MockQuestDBClient)
		assertFn func(t *testing.T, err error)
		tick     *Tick
	}{
		{
			name: "success",
			mockFn: func(tickData *Tick, mock *mock.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), gomock.Any(),
					tickData.Timestamp, tickData.Symbol, tickData.Price, tickData.Volume,
					tickData.Bid, tickData.Ask, tickData.Source).Return(nil)
			},
			tick: testTick(),
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error",
			mockFn: func(tickData *Tick, mock *mock.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), gomock.Any(),
					tickData.Timestamp, tickData.Symbol, tickData.Price, tickData.Volume,
					tickData.Bid, tickData.Ask, tickData.Source).Return(errors.New("error"))
			},
			tick: testTick(),
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
			tc.mockFn(tc.tick, mock)

			repo := NewRepository(mock)
			err := repo.Store(context.Background(), tc.tick)
			tc.assertFn(t, err)
		})
	}
}

func TestTickRepository_StoreBatch(t *testing.T) {
	testCases := []struct {
		name     string
		mockFn   func(ticks []*Tick, mock *mock.MockQuestDBClient)
		assertFn func(t *testing.T, err error)
		ticks    []*Tick
	}{
		{
			name: "success",
			mockFn: func(ticks []*Tick, mock *mock.MockQuestDBClient) {
				mock.EXPECT().CopyFrom(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
			ticks: []*Tick{testTick()},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error",
			mockFn: func(ticks []*Tick, mock *mock.MockQuestDBClient) {
				mock.EXPECT().CopyFrom(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("error"))
			},
			ticks: []*Tick{testTick()},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
		{
			name:   "empty batch skips storage",
			mockFn: func(ticks []*Tick, mock *mock.MockQuestDBClient) {},
			ticks:  nil,
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mock := mock.NewMockQuestDBClient(ctrl)
			tc.mockFn(tc.ticks, mock)

			repo := NewRepository(mock)
			err := repo.StoreBatch(context.Background(), tc.ticks)
			tc.assertFn(t, err)
		})
	}
}

func TestTickRepository_Exists(t *testing.T) {
	tk := testTick()

	testCases := []struct {
		name     string
		count    int64
		scanErr  error
		expected bool
		wantErr  bool
	}{
		{name: "found", count: 1, expected: true},
		{name: "not found", count: 0, expected: false},
		{name: "query error", scanErr: errors.New("error"), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock.NewMockQuestDBClient(ctrl)
			client.EXPECT().QueryRow(gomock.Any(), gomock.Any(), tk.Symbol, tk.Timestamp, tk.Source).
				Return(rowStub{scanFn: func(dest ...any) error {
					if tc.scanErr != nil {
						return tc.scanErr
					}
					*(dest[0].(*int64)) = tc.count
					return nil
				}})

			repo := NewRepository(client)
			exists, err := repo.Exists(context.Background(), tk.Symbol, tk.Timestamp, tk.Source)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, exists)
		})
	}
}

func TestTickRepository_GetByFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockQuestDBClient(ctrl)
	rows := mock.NewMockRowsInterface(ctrl)

	expected := testTick()
	gomock.InOrder(
		rows.EXPECT().Next().Return(true),
		rows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
			*(dest[0].(*time.Time)) = expected.Timestamp
			*(dest[1].(*string)) = expected.Symbol
			*(dest[2].(*float64)) = expected.Price
			*(dest[3].(*float64)) = expected.Volume
			*(dest[4].(*float64)) = expected.Bid
			*(dest[5].(*float64)) = expected.Ask
			*(dest[6].(*string)) = expected.Source
			return nil
		}),
		rows.EXPECT().Next().Return(false),
		rows.EXPECT().Err().Return(nil),
		rows.EXPECT().Close(),
	)
	client.EXPECT().Query(gomock.Any(), gomock.Any(), "BTC", 10).Return(rows, nil)

	repo := NewRepository(client)
	ticks, err := repo.GetByFilter(context.Background(), Filter{Symbol: "BTC", Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, []*Tick{expected}, ticks)
}
