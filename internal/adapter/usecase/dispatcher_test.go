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
)

func newDispatcher(f *middlewareFixture) *Dispatcher {
	d := NewDispatcher(f.store, adapterMap{"jooble": f.adapter}, f.mw, f.auditor, time.Second, discardLogger())
	d.now = func() time.Time { return fixedNow }
	return d
}

func TestDispatchCreatesCampaign(t *testing.T) {
	f := newMiddlewareFixture(t)
	d := newDispatcher(f)

	camp := campaign(1000, 0)
	camp.Allocations[0].ChannelCampaignID = ""
	camp.Allocations[0].AllocatedBudget = 200
	camp.InternalConfig.DailyBudget = 20
	linked := campaign(1000, 0)
	offers := []domain.Offer{{ID: "o1", Title: "Go engineer"}}
	payload := validPayload()
	budget := domain.BudgetInfo{TotalBudget: 200, DailyBudget: 20, ClickPrice: 1.5}

	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(camp, nil).Once()
	f.adapter.EXPECT().BuildPayload(mock.Anything, offers, budget).Return(payload, nil)
	f.adapter.EXPECT().BuildInternalData(mock.Anything, offers, budget).Return(domain.InternalData{CampaignID: 1, ChannelID: "jooble"})
	f.adapter.EXPECT().ValidateSegmentationRules(payload.Segmentation).Return(domain.RuleValidation{Valid: true, Errors: []string{}})
	f.adapter.EXPECT().CreateCampaign(mock.Anything, payload).
		Return(domain.ChannelResponse{ChannelCampaignID: "jb-1", Status: "active", Accepted: true}, nil).Once()
	f.store.EXPECT().SetChannelCampaignID(mock.Anything, int64(1), "jooble", "jb-1").Return(nil).Once()
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(linked, nil).Once()

	res, err := d.Dispatch(context.Background(), 1, "jooble", offers)
	require.NoError(t, err)

	assert.True(t, res.Created)
	assert.True(t, res.Validation.Valid)
	assert.Equal(t, "jb-1", res.Response.ChannelCampaignID)
	assert.Equal(t, 1, f.limits.checks)
	assert.Equal(t, []string{"post_dispatch", "dispatch"}, f.auditor.events())
}

func TestDispatchEditsLinkedCampaign(t *testing.T) {
	f := newMiddlewareFixture(t)
	off := false
	f.policies.Register("jooble", domain.PolicySpec{PostValidation: &off})
	d := newDispatcher(f)
	payload := validPayload()

	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(campaign(1000, 0), nil)
	f.adapter.EXPECT().BuildPayload(mock.Anything, mock.Anything, mock.Anything).Return(payload, nil)
	f.adapter.EXPECT().BuildInternalData(mock.Anything, mock.Anything, mock.Anything).Return(domain.InternalData{CampaignID: 1})
	f.adapter.EXPECT().ValidateSegmentationRules(mock.Anything).Return(domain.RuleValidation{Valid: true, Errors: []string{}})
	f.adapter.EXPECT().EditCampaign(mock.Anything, "jb-1", payload).
		Return(domain.ChannelResponse{ChannelCampaignID: "jb-1", Status: "active", Accepted: true}, nil).Once()

	res, err := d.Dispatch(context.Background(), 1, "jooble", nil)
	require.NoError(t, err)

	assert.False(t, res.Created)
	assert.Zero(t, f.limits.checks)
}

func TestDispatchRejectsInvalidPayload(t *testing.T) {
	f := newMiddlewareFixture(t)
	d := newDispatcher(f)
	payload := validPayload()

	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(campaign(1000, 0), nil)
	f.adapter.EXPECT().BuildPayload(mock.Anything, mock.Anything, mock.Anything).Return(payload, nil)
	f.adapter.EXPECT().BuildInternalData(mock.Anything, mock.Anything, mock.Anything).Return(domain.InternalData{CampaignID: 1})
	f.adapter.EXPECT().ValidateSegmentationRules(mock.Anything).
		Return(domain.RuleValidation{Valid: false, Errors: []string{"empty title value"}})

	res, err := d.Dispatch(context.Background(), 1, "jooble", nil)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"empty title value"}, vErr.Problems)
	assert.False(t, res.Validation.Valid)
	assert.Equal(t, []string{"dispatch_rejected"}, f.auditor.events())
}

func TestDispatchChannelFailure(t *testing.T) {
	f := newMiddlewareFixture(t)
	d := newDispatcher(f)
	payload := validPayload()
	camp := campaign(1000, 0)
	camp.Allocations[0].ChannelCampaignID = ""

	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(camp, nil)
	f.adapter.EXPECT().BuildPayload(mock.Anything, mock.Anything, mock.Anything).Return(payload, nil)
	f.adapter.EXPECT().BuildInternalData(mock.Anything, mock.Anything, mock.Anything).Return(domain.InternalData{CampaignID: 1})
	f.adapter.EXPECT().ValidateSegmentationRules(mock.Anything).Return(domain.RuleValidation{Valid: true, Errors: []string{}})
	f.adapter.EXPECT().CreateCampaign(mock.Anything, payload).
		Return(domain.ChannelResponse{}, &domain.ExternalChannelError{ChannelID: "jooble", Op: "create", StatusCode: 502, Err: errors.New("bad gateway")})

	_, err := d.Dispatch(context.Background(), 1, "jooble", nil)

	var chErr *domain.ExternalChannelError
	require.ErrorAs(t, err, &chErr)
	assert.Equal(t, 502, chErr.StatusCode)
	assert.Equal(t, []string{"dispatch_failed"}, f.auditor.events())
}

func TestDispatchUnknownChannel(t *testing.T) {
	f := newMiddlewareFixture(t)
	d := newDispatcher(f)
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(campaign(1000, 0), nil)

	_, err := d.Dispatch(context.Background(), 1, "nope", nil)

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}
