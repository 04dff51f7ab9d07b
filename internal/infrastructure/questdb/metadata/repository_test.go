package metadata

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
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

func testMetadata() *Metadata {
	return &Metadata{
		Timestamp:     time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
		CoinID:        "bitcoin",
		Symbol:        "BTC",
		Name:          "Bitcoin",
		MarketCapRank: 1,
		Categories:    "Cryptocurrency,Layer 1 (L1)",
		WebsiteURL:    "http://www.bitcoin.org",
		GithubURL:     "https://github.com/bitcoin/bitcoin",
		Source:        "coingecko",
	}
}

func TestMetadataRepository_Store(t *testing.T) {
	testCases := []struct {
		name     string
		mockFn   func(m *Metadata, mock *mock.MockQuestDBClient)
		assertFn func(t *testing.T, err error)
		metadata *Metadata
	}{
		{
			name: "success",
			mockFn: func(m *Metadata, mock *mock.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), gomock.Any(),
					m.Timestamp, m.CoinID, m.Symbol, m.Name,
					m.MarketCapRank, m.Categories, m.WebsiteURL, m.GithubURL, m.Source).Return(nil)
			},
			metadata: testMetadata(),
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error",
			mockFn: func(m *Metadata, mock *mock.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), gomock.Any(),
					m.Timestamp, m.CoinID, m.Symbol, m.Name,
					m.MarketCapRank, m.Categories, m.WebsiteURL, m.GithubURL, m.Source).Return(errors.New("error"))
			},
			metadata: testMetadata(),
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
			tc.mockFn(tc.metadata, mock)

			repo := NewRepository(mock)
			err := repo.Store(context.Background(), tc.metadata)
			tc.assertFn(t, err)
		})
	}
}

func TestMetadataRepository_GetLatestBySymbol(t *testing.T) {
	expected := testMetadata()

	testCases := []struct {
		name     string
		scanFn   func(dest ...any) error
		assertFn func(t *testing.T, m *Metadata, err error)
	}{
		{
			name: "found",
			scanFn: func(dest ...any) error {
				*(dest[0].(*time.Time)) = expected.Timestamp
				*(dest[1].(*string)) = expected.CoinID
				*(dest[2].(*string)) = expected.Symbol
				*(dest[3].(*string)) = expected.Name
				*(dest[4].(*int64)) = expected.MarketCapRank
				*(dest[5].(*string)) = expected.Categories
				*(dest[6].(*string)) = expected.WebsiteURL
				*(dest[7].(*string)) = expected.GithubURL
				*(dest[8].(*string)) = expected.Source
				return nil
			},
			assertFn: func(t *testing.T, m *Metadata, err error) {
				assert.NoError(t, err)
				assert.Equal(t, expected, m)
			},
		},
		{
			name: "no rows returns nil without error",
			scanFn: func(dest ...any) error {
				return pgx.ErrNoRows
			},
			assertFn: func(t *testing.T, m *Metadata, err error) {
				assert.NoError(t, err)
				assert.Nil(t, m)
			},
		},
		{
			name: "query error",
			scanFn: func(dest ...any) error {
				return errors.New("error")
			},
			assertFn: func(t *testing.T, m *Metadata, err error) {
				assert.Error(t, err)
				assert.Nil(t, m)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock.NewMockQuestDBClient(ctrl)
			client.EXPECT().QueryRow(gomock.Any(), gomock.Any(), "BTC").
				Return(rowStub{scanFn: tc.scanFn})

			repo := NewRepository(client)
			m, err := repo.GetLatestBySymbol(context.Background(), "BTC")
			tc.assertFn(t, m, err)
		})
	}
}
