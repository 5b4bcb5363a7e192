package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jobcast/internal/core/domain"
	"jobcast/internal/core/port"
	"jobcast/internal/core/port/mocks"
)

func newSyncer(t *testing.T) (*MetricsSyncer, *mocks.MockCampaignStore, *mocks.MockChannelAdapter, *mocks.MockChannelAdapter) {
	t.Helper()
	store := mocks.NewMockCampaignStore(t)
	jooble := mocks.NewMockChannelAdapter(t)
	talent := mocks.NewMockChannelAdapter(t)
	s := NewMetricsSyncer(store, adapterMap{"jooble": jooble, "talent": talent}, time.Second, discardLogger())
	s.now = func() time.Time { return fixedNow }
	return s, store, jooble, talent
}

func syncCampaign() *domain.Campaign {
	created := fixedNow.Add(-20 * 24 * time.Hour)
	return &domain.Campaign{
		ID:        1,
		Status:    domain.StatusActive,
		CreatedAt: created,
		Allocations: []domain.ChannelAllocation{
			{ChannelID: "jooble", ChannelCampaignID: "jb-1", Status: domain.StatusActive},
			{ChannelID: "talent", ChannelCampaignID: "tl-1", Status: domain.StatusPaused},
			{ChannelID: "indeed", Status: domain.StatusActive},
			{ChannelID: "old", ChannelCampaignID: "old-1", Status: domain.StatusArchived},
		},
	}
}

func TestForceSyncCampaignWritesActuals(t *testing.T) {
	s, store, jooble, talent := newSyncer(t)
	camp := syncCampaign()
	store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(camp, nil)
	jooble.EXPECT().GetStatistics(mock.Anything, "jb-1", camp.CreatedAt, fixedNow).
		Return(domain.ChannelStats{Spend: 120, Clicks: 300, Applications: 40}, nil)
	talent.EXPECT().GetStatistics(mock.Anything, "tl-1", camp.CreatedAt, fixedNow).
		Return(domain.ChannelStats{Spend: 10}, nil)
	store.EXPECT().UpdateAllocationActuals(mock.Anything, int64(1), "jooble", domain.AllocationActuals{
		SpentBudget: 120, Clicks: 300, AchievedApplications: 40, CurrentCPA: 3,
	}).Return(nil)
	store.EXPECT().UpdateAllocationActuals(mock.Anything, int64(1), "talent", domain.AllocationActuals{SpentBudget: 10}).Return(nil)
	store.EXPECT().MarkMetricsSynced(mock.Anything, int64(1), fixedNow).Return(nil).Once()

	require.NoError(t, s.ForceSyncCampaign(context.Background(), 1))
}

func TestForceSyncCampaignPartialFailureStaysStale(t *testing.T) {
	s, store, jooble, talent := newSyncer(t)
	store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(syncCampaign(), nil)
	jooble.EXPECT().GetStatistics(mock.Anything, "jb-1", mock.Anything, mock.Anything).
		Return(domain.ChannelStats{}, errors.New("rate limited"))
	talent.EXPECT().GetStatistics(mock.Anything, "tl-1", mock.Anything, mock.Anything).
		Return(domain.ChannelStats{Spend: 10}, nil)
	store.EXPECT().UpdateAllocationActuals(mock.Anything, int64(1), "talent", mock.Anything).Return(nil)

	err := s.ForceSyncCampaign(context.Background(), 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "jooble: rate limited")
	store.AssertNotCalled(t, "MarkMetricsSynced", mock.Anything, mock.Anything, mock.Anything)
}

func TestForceSyncCampaignNotFound(t *testing.T) {
	s, store, _, _ := newSyncer(t)
	store.EXPECT().GetCampaign(mock.Anything, int64(7)).Return(nil, nil)

	err := s.ForceSyncCampaign(context.Background(), 7)

	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestGetStatisticsUnknownChannel(t *testing.T) {
	s, _, _, _ := newSyncer(t)

	_, err := s.GetStatistics(context.Background(), "nope", "x", fixedNow, fixedNow)

	assert.Error(t, err)
}

func TestSyncStart(t *testing.T) {
	created := fixedNow.Add(-48 * time.Hour)
	earlier := fixedNow.Add(-72 * time.Hour)
	future := fixedNow.Add(time.Hour)

	tests := []struct {
		name string
		camp domain.Campaign
		want time.Time
	}{
		{"created", domain.Campaign{CreatedAt: created}, created},
		{"earlier start", domain.Campaign{CreatedAt: created, InternalConfig: domain.InternalConfig{StartDate: &earlier}}, earlier},
		{"start only", domain.Campaign{InternalConfig: domain.InternalConfig{StartDate: &earlier}}, earlier},
		{"future", domain.Campaign{CreatedAt: future}, fixedNow.Add(-lookback)},
		{"nothing", domain.Campaign{}, fixedNow.Add(-lookback)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, syncStart(&tt.camp, fixedNow))
		})
	}
}
