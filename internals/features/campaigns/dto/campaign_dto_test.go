package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

var validate = validator.New()

func TestCreateCampaignStatusLimitedToStartingStates(t *testing.T) {
	for _, status := range []string{"", "draft", "published"} {
		req := CreateCampaignRequest{Title: "School kits for Tacloban", Status: status}
		assert.NoError(t, validate.Struct(req), status)
	}

	// terminal states cannot be set at creation, only reached via transitions
	for _, status := range []string{"closed", "archived", "bogus"} {
		req := CreateCampaignRequest{Title: "School kits for Tacloban", Status: status}
		assert.Error(t, validate.Struct(req), status)
	}
}

func TestUpdateCampaignStatusAcceptsFullLifecycle(t *testing.T) {
	for _, status := range []string{"draft", "published", "closed", "archived"} {
		req := UpdateCampaignRequest{Status: &status}
		assert.NoError(t, validate.Struct(req), status)
	}
}
