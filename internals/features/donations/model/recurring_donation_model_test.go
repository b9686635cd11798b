package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsDue(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	due := RecurringDonationModel{Active: true, NextRunAt: now.Add(-time.Hour)}
	exactly := RecurringDonationModel{Active: true, NextRunAt: now}
	future := RecurringDonationModel{Active: true, NextRunAt: now.Add(time.Hour)}
	cancelled := RecurringDonationModel{Active: false, NextRunAt: now.Add(-time.Hour)}

	assert.True(t, due.IsDue(now))
	assert.True(t, exactly.IsDue(now))
	assert.False(t, future.IsDue(now))
	assert.False(t, cancelled.IsDue(now))
}

func TestNextAfterAdvancesBySchedule(t *testing.T) {
	base := time.Date(2026, 1, 31, 8, 0, 0, 0, time.UTC)

	weekly := RecurringDonationModel{Frequency: FrequencyWeekly, NextRunAt: base}
	assert.Equal(t, base.AddDate(0, 0, 7), weekly.NextAfter(base))

	monthly := RecurringDonationModel{Frequency: FrequencyMonthly, NextRunAt: base}
	assert.Equal(t, base.AddDate(0, 1, 0), monthly.NextAfter(base))
}
