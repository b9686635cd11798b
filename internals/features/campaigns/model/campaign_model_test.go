package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampaignLifecycleGraph(t *testing.T) {
	assert.True(t, CanTransitionCampaign(CampaignDraft, CampaignPublished))
	assert.True(t, CanTransitionCampaign(CampaignDraft, CampaignArchived))
	assert.True(t, CanTransitionCampaign(CampaignPublished, CampaignClosed))
	assert.True(t, CanTransitionCampaign(CampaignClosed, CampaignArchived))

	// no jumping or going backwards
	assert.False(t, CanTransitionCampaign(CampaignDraft, CampaignClosed))
	assert.False(t, CanTransitionCampaign(CampaignPublished, CampaignDraft))
	assert.False(t, CanTransitionCampaign(CampaignPublished, CampaignArchived))
	assert.False(t, CanTransitionCampaign(CampaignClosed, CampaignPublished))
	assert.False(t, CanTransitionCampaign(CampaignArchived, CampaignDraft))
}

func TestCampaignSelfTransitionIsNoop(t *testing.T) {
	for _, s := range []string{CampaignDraft, CampaignPublished, CampaignClosed, CampaignArchived} {
		assert.True(t, CanTransitionCampaign(s, s))
	}
}

func TestIsCampaignStatus(t *testing.T) {
	assert.True(t, IsCampaignStatus(CampaignDraft))
	assert.False(t, IsCampaignStatus("live"))
	assert.False(t, IsCampaignStatus(""))
}
