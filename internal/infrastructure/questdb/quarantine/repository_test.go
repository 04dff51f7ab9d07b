package quarantine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock "github.com/muhammadchandra19/crypto-collector/pkg/questdb/mock"
)

func testRecord() *Record {
	return &Record{
		ID:        "3b49c0f2-6f4e-4a53-9a52-0e6a1f6f8f11",
		Timestamp: time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
		Source:    "binance",
		Kind:      "tick",
		Payload:   `{"symbol":"BTC","price":-1}`,
		Reason:    "price is negative",
	}
}

func TestQuarantineRepository_Store(t *testing.T) {
	testCases := []struct {
		name     string
		mockFn   func(rec *Record, mock *mock.MockQuestDBClient)
		assertFn func(t *testing.T, err error)
		record   *Record
	}{
		{
			name: "success",
			mockFn: func(rec *Record, mock *mock.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), gomock.Any(),
					rec.ID, rec.Timestamp, rec.Source, rec.Kind, rec.Payload, rec.Reason).Return(nil)
			},
			record: testRecord(),
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error",
			mockFn: func(rec *Record, mock *mock.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), gomock.Any(),
					rec.ID, rec.Timestamp, rec.Source, rec.Kind, rec.Payload, rec.Reason).Return(errors.New("error"))
			},
			record: testRecord(),
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
			tc.mockFn(tc.record, mock)

			repo := NewRepository(mock)
			err := repo.Store(context.Background(), tc.record)
			tc.assertFn(t, err)
		})
	}
}

func TestQuarantineRepository_GetByFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockQuestDBClient(ctrl)
	rows := mock.NewMockRowsInterface(ctrl)

	expected := testRecord()
	gomock.InOrder(
		rows.EXPECT().Next().Return(true),
		rows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
			*(dest[0].(*string)) = expected.ID
			*(dest[1].(*time.Time)) = expected.Timestamp
			*(dest[2].(*string)) = expected.Source
			*(dest[3].(*string)) = expected.Kind
			*(dest[4].(*string)) = expected.Payload
			*(dest[5].(*string)) = expected.Reason
			return nil
		}),
		rows.EXPECT().Next().Return(false),
		rows.EXPECT().Err().Return(nil),
		rows.EXPECT().Close(),
	)
	client.EXPECT().Query(gomock.Any(), gomock.Any(), "binance", "tick").Return(rows, nil)

	repo := NewRepository(client)
	records, err := repo.GetByFilter(context.Background(), Filter{Source: "binance", Kind: "tick"})
	assert.NoError(t, err)
	assert.Equal(t, []*Record{expected}, records)
}
