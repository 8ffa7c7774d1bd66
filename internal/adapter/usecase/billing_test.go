package usecase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas-ads/internal/core/domain"
)

// tallyOf builds a campaignTally from per-day (impressions, clicks)
// pairs in encounter order.
func tallyOf(days []string, impressions, clicks []int64) *campaignTally {
	t := &campaignTally{days: make(map[string]*dayTally), dayOrder: days}
	for i, day := range days {
		t.days[day] = &dayTally{
			impressions: impressions[i],
			clicks:      clicks[i],
			quartiles:   make(map[int]int64),
		}
		t.impressions += impressions[i]
		t.clicks += clicks[i]
	}
	return t
}

func TestChargeCents(t *testing.T) {
	tally := tallyOf([]string{"2026-01-01"}, []int64{3}, []int64{10})
	assert.Equal(t, int64(2), chargeCentsFor(domain.BillingCPM, tally),
		"3 impressions at $5 CPM rounds half-up to 2 cents")
	assert.Equal(t, int64(500), chargeCentsFor(domain.BillingCPC, tally),
		"clicks only under cpc")

	empty := tallyOf([]string{"2026-01-01"}, []int64{0}, []int64{0})
	assert.Equal(t, int64(0), chargeCentsFor(domain.BillingCPM, empty))
}

func TestAllocateDailySpendExactness(t *testing.T) {
	cases := [][]int64{
		{1, 1},
		{1},
		{7, 3, 5},
		{1, 1, 1, 1, 1, 1, 1},
		{1000, 1, 1},
		{0, 4},
		{13, 13, 13},
	}
	for _, impressions := range cases {
		days := make([]string, len(impressions))
		clicks := make([]int64, len(impressions))
		for i := range impressions {
			days[i] = fmt.Sprintf("2026-01-%02d", i+1)
		}
		tally := tallyOf(days, impressions, clicks)
		charge := chargeCentsFor(domain.BillingCPM, tally)
		spend := allocateDailySpend(domain.BillingCPM, tally, charge)

		var sum int64
		for _, day := range days {
			require.GreaterOrEqual(t, spend[day], int64(0))
			sum += spend[day]
		}
		assert.Equal(t, charge, sum, "per-day shares must sum to the exact charge for %v", impressions)
	}
}

func TestAllocateDailySpendRemainderToFirstSeenDay(t *testing.T) {
	// 1 impression on each of two days: total charge is 1 cent and the
	// whole cent lands on the first-seen day.
	tally := tallyOf([]string{"2026-03-01", "2026-03-02"}, []int64{1, 1}, []int64{0, 0})
	charge := chargeCentsFor(domain.BillingCPM, tally)
	require.Equal(t, int64(1), charge)

	spend := allocateDailySpend(domain.BillingCPM, tally, charge)
	assert.Equal(t, int64(1), spend["2026-03-01"])
	assert.Equal(t, int64(0), spend["2026-03-02"])
}

func TestAllocateDailySpendRemainderToBusiestDay(t *testing.T) {
	tally := tallyOf([]string{"2026-03-01", "2026-03-02"}, []int64{1, 2}, []int64{0, 0})
	charge := chargeCentsFor(domain.BillingCPM, tally)
	require.Equal(t, int64(2), charge)

	spend := allocateDailySpend(domain.BillingCPM, tally, charge)
	assert.Equal(t, charge, spend["2026-03-01"]+spend["2026-03-02"])
	assert.GreaterOrEqual(t, spend["2026-03-02"], spend["2026-03-01"],
		"the remainder goes to the day with the most impressions")
}

func TestAllocateDailySpendCPCExact(t *testing.T) {
	tally := tallyOf([]string{"2026-03-01", "2026-03-02"}, []int64{9, 9}, []int64{2, 3})
	charge := chargeCentsFor(domain.BillingCPC, tally)
	assert.Equal(t, int64(250), charge)

	spend := allocateDailySpend(domain.BillingCPC, tally, charge)
	assert.Equal(t, int64(100), spend["2026-03-01"])
	assert.Equal(t, int64(150), spend["2026-03-02"])
}

func TestAllocateDailySpendZeroCharge(t *testing.T) {
	tally := tallyOf([]string{"2026-03-01"}, []int64{0}, []int64{0})
	spend := allocateDailySpend(domain.BillingCPM, tally, 0)
	assert.Equal(t, int64(0), spend["2026-03-01"])
}
