package verdict

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock "github.com/muhammadchandra19/crypto-collector/pkg/questdb/mock"
	"github.com/muhammadchandra19/crypto-collector/pkg/util"
)

func testVerdict() *Verdict {
	return &Verdict{
		Timestamp:        time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
		Symbol:           "BTC",
		Timeframe:        "1m",
		VolumeActual:     4,
		VolumeThreshold:  10,
		VolumeDeficit:    0.6,
		TradesActual:     12,
		TradesThreshold:  25,
		TradesDeficit:    0.52,
		BaselineComplete: true,
		Severity:         SeverityHigh,
	}
}

func TestVerdictRepository_Store(t *testing.T) {
	testCases := []struct {
		name     string
		mockFn   func(v *Verdict, mock *mock.MockQuestDBClient)
		assertFn func(t *testing.T, err error)
		verdict  *Verdict
	}{
		{
			name: "success",
			mockFn: func(v *Verdict, mock *mock.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), gomock.Any(),
					v.Timestamp, v.Symbol, v.Timeframe,
					v.VolumeActual, v.VolumeThreshold, v.VolumeDeficit,
					v.TradesActual, v.TradesThreshold, v.TradesDeficit,
					v.BaselineComplete, "high").Return(nil)
			},
			verdict: testVerdict(),
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error",
			mockFn: func(v *Verdict, mock *mock.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), gomock.Any(),
					v.Timestamp, v.Symbol, v.Timeframe,
					v.VolumeActual, v.VolumeThreshold, v.VolumeDeficit,
					v.TradesActual, v.TradesThreshold, v.TradesDeficit,
					v.BaselineComplete, "high").Return(errors.New("error"))
			},
			verdict: testVerdict(),
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
			tc.mockFn(tc.verdict, mock)

			repo := NewRepository(mock)
			err := repo.Store(context.Background(), tc.verdict)
			tc.assertFn(t, err)
		})
	}
}

func TestVerdictRepository_GetByFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockQuestDBClient(ctrl)
	rows := mock.NewMockRowsInterface(ctrl)

	expected := testVerdict()
	gomock.InOrder(
		rows.EXPECT().Next().Return(true),
		rows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
			*(dest[0].(*time.Time)) = expected.Timestamp
			*(dest[1].(*string)) = expected.Symbol
			*(dest[2].(*string)) = expected.Timeframe
			*(dest[3].(*float64)) = expected.VolumeActual
			*(dest[4].(*float64)) = expected.VolumeThreshold
			*(dest[5].(*float64)) = expected.VolumeDeficit
			*(dest[6].(*int64)) = expected.TradesActual
			*(dest[7].(*float64)) = expected.TradesThreshold
			*(dest[8].(*float64)) = expected.TradesDeficit
			*(dest[9].(*bool)) = expected.BaselineComplete
			*(dest[10].(*string)) = string(expected.Severity)
			return nil
		}),
		rows.EXPECT().Next().Return(false),
		rows.EXPECT().Err().Return(nil),
		rows.EXPECT().Close(),
	)
	from := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	client.EXPECT().Query(gomock.Any(), gomock.Any(), "BTC", "high", from, 5).Return(rows, nil)

	repo := NewRepository(client)
	verdicts, err := repo.GetByFilter(context.Background(), Filter{
		Symbol:   "BTC",
		Severity: SeverityHigh,
		From:     util.TimePointer(from),
		Limit:    5,
	})
	assert.NoError(t, err)
	assert.Equal(t, []*Verdict{expected}, verdicts)
}

func TestVerdictRepository_GetByFilter_QueryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockQuestDBClient(ctrl)
	client.EXPECT().Query(gomock.Any(), gomock.Any()).Return(nil, errors.New("error"))

	repo := NewRepository(client)
	_, err := repo.GetByFilter(context.Background(), Filter{})
	assert.Error(t, err)
}

func TestSeverity_Ordering(t *testing.T) {
	assert.True(t, SeverityHigh.Rank() > SeverityMedium.Rank())
	assert.True(t, SeverityMedium.Rank() > SeverityLow.Rank())
	assert.True(t, SeverityLow.Rank() > SeverityNone.Rank())
	assert.Equal(t, SeverityHigh, SeverityMedium.Max(SeverityHigh))
	assert.Equal(t, SeverityMedium, SeverityMedium.Max(SeverityNone))
}
