package models

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestComputeRR(t *testing.T) {
	// Long: entry 100, stop 95, target 110 => reward 10 / risk 5.
	assert.Equal(t, 2.0, ComputeRR(100, 95, 110, 0))
	// Short: entry 100, stop 105, target 90.
	assert.Equal(t, 2.0, ComputeRR(100, 105, 90, 0))
	// Rounded to two decimals.
	assert.Equal(t, 0.33, ComputeRR(100, 97, 101, 0))
}

func TestComputeRR_FallbackOnMissingPrices(t *testing.T) {
	assert.Equal(t, 1.5, ComputeRR(0, 95, 110, 1.5))
	assert.Equal(t, 1.5, ComputeRR(100, 0, 110, 1.5))
	assert.Equal(t, 1.5, ComputeRR(100, 95, 0, 1.5))
	// Zero risk distance keeps the caller value too.
	assert.Equal(t, 1.5, ComputeRR(100, 100, 110, 1.5))
}

func TestStamp(t *testing.T) {
	tr := Trade{Date: "2024-03-05"} // a Tuesday
	tr.Stamp()
	assert.Equal(t, "Tuesday", tr.DayOfWeek)
	assert.True(t, tr.IsPriorityDay)

	tr = Trade{Date: "2024-03-08"} // a Friday
	tr.Stamp()
	assert.Equal(t, "Friday", tr.DayOfWeek)
	assert.False(t, tr.IsPriorityDay)
}

func TestStamp_InvalidDateClearsFields(t *testing.T) {
	tr := Trade{Date: "05/03/2024", DayOfWeek: "Tuesday", IsPriorityDay: true}
	tr.Stamp()
	assert.Empty(t, tr.DayOfWeek)
	assert.False(t, tr.IsPriorityDay)
}

func TestSetupStrength(t *testing.T) {
	tr := Trade{Setup: Checklist{"fvg": true, "mss": false, "orderBlock": true}}
	assert.Equal(t, 2, tr.SetupStrength())

	empty := Trade{}
	assert.Equal(t, 0, empty.SetupStrength())
}

func TestDefaultTemplate(t *testing.T) {
	tpl := DefaultTemplate()
	assert.Len(t, tpl.CustomConfluences, 7)
	for _, f := range tpl.CustomConfluences {
		assert.True(t, f.Active)
	}
	assert.Equal(t, []int{2, 3, 4}, tpl.PlannedTradingDays)
	assert.Len(t, tpl.DashboardWidgets, 5)
}

func TestConfluenceLabel_UnknownIDFallsBack(t *testing.T) {
	tpl := DefaultTemplate()
	assert.Equal(t, "FVG (Fair Value Gap)", tpl.ConfluenceLabel("fvg"))
	assert.Equal(t, "retired_id", tpl.ConfluenceLabel("retired_id"))
}

func TestNewChecklist_ActiveFieldsOnly(t *testing.T) {
	tpl := DefaultTemplate()
	tpl.CustomConfluences[0].Active = false
	cl := tpl.NewChecklist()
	assert.Len(t, cl, 6)
	_, ok := cl[tpl.CustomConfluences[0].ID]
	assert.False(t, ok)
	for _, on := range cl {
		assert.False(t, on)
	}
}

// RR derivation is scale- and direction-invariant.
func TestProperty_ComputeRR(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("result is non-negative and finite", prop.ForAll(
		func(entry, stop, target float64) bool {
			rr := ComputeRR(entry, stop, target, 0)
			return rr >= 0
		},
		gen.Float64Range(0.01, 1e6),
		gen.Float64Range(0.01, 1e6),
		gen.Float64Range(0.01, 1e6),
	))

	properties.Property("mirroring long to short keeps the ratio", prop.ForAll(
		func(entry, risk, reward float64) bool {
			long := ComputeRR(entry, entry-risk, entry+reward, 0)
			short := ComputeRR(entry, entry+risk, entry-reward, 0)
			return long == short
		},
		gen.Float64Range(100, 1e6),
		gen.Float64Range(1, 50),
		gen.Float64Range(1, 50),
	))

	properties.TestingRun(t)
}
