package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/brickcount/config"
)

// TestToleranceMode_AddXY_OrderedSAndLAroundNominal checks the
// tolerance ordering: S strictly negative (shrink), M exactly zero,
// L strictly positive (grow), symmetric around Nominal.
func TestToleranceMode_AddXY_OrderedSAndLAroundNominal(t *testing.T) {
	assert.Less(t, config.SStrict.AddXY(), config.SBoost.AddXY())
	assert.Less(t, config.SBoost.AddXY(), config.SEpsilon.AddXY())
	assert.Less(t, config.SEpsilon.AddXY(), config.Nominal.AddXY())
	assert.Equal(t, 0.0, config.Nominal.AddXY())
	assert.Less(t, config.Nominal.AddXY(), config.LEpsilon.AddXY())
	assert.Less(t, config.LEpsilon.AddXY(), config.LBoost.AddXY())
	assert.Less(t, config.LBoost.AddXY(), config.LStrict.AddXY())

	assert.Equal(t, -config.SStrict.AddXY(), config.LStrict.AddXY())
	assert.Equal(t, -config.SBoost.AddXY(), config.LBoost.AddXY())
}

// TestToleranceMode_AddXY_PanicsOnInvalid exercises the programmer-
// invariant policy for an out-of-range enum value.
func TestToleranceMode_AddXY_PanicsOnInvalid(t *testing.T) {
	var bad config.ToleranceMode = 99
	assert.Panics(t, func() { bad.AddXY() })
}

// TestToleranceMode_String_CoversAllValues checks every named constant
// has a distinct, non-"UNKNOWN" String().
func TestToleranceMode_String_CoversAllValues(t *testing.T) {
	modes := []config.ToleranceMode{
		config.SStrict, config.SBoost, config.SEpsilon,
		config.Nominal, config.LEpsilon, config.LBoost, config.LStrict,
	}
	seen := make(map[string]bool)
	for _, m := range modes {
		s := m.String()
		assert.NotEqual(t, "UNKNOWN", s)
		assert.False(t, seen[s], "duplicate String() value %q", s)
		seen[s] = true
	}
}

// TestDefaultOptions_ReportNeverNil ensures DefaultOptions supplies a
// callable Report sink so engine code never needs a nil check.
func TestDefaultOptions_ReportNeverNil(t *testing.T) {
	opts := config.DefaultOptions()
	assert.NotPanics(t, func() { opts.Report(config.ProblematicReport{}) })
	assert.True(t, opts.StopEarlyIfAnyProblematic)
	assert.False(t, opts.BoostPrecision)
	assert.False(t, opts.FindExtremeAnglesOnly)
}

// TestApply_OptionsOverrideDefaults verifies the functional-options
// pattern composes onto DefaultOptions.
func TestApply_OptionsOverrideDefaults(t *testing.T) {
	opts := config.Apply(config.WithBoostPrecision(true), config.WithExtremeAnglesOnly(true))

	assert.True(t, opts.BoostPrecision)
	assert.True(t, opts.FindExtremeAnglesOnly)
	// Untouched options keep their default.
	assert.True(t, opts.StopEarlyIfAnyProblematic)
}

// TestSteps_MonotonicallyIncreasing checks the angle-type -> step-count
// table is non-decreasing (more central edges get finer resolution).
func TestSteps_MonotonicallyIncreasing(t *testing.T) {
	for i := 1; i < len(config.Steps); i++ {
		assert.LessOrEqual(t, config.Steps[i-1], config.Steps[i])
	}
	assert.Equal(t, 0, config.Steps[0])
}
