package config

// ProblematicReport describes one ambiguous (S/M/L-disagreeing)
// configuration discovered during angle mapping. It is a plain value —
// the engine never writes to a stream directly, keeping it
// unit-testable; the caller owns formatting and file placement.
type ProblematicReport struct {
	// ConnectionSummary is a human-readable canonical-form description
	// of the connection-pair set under evaluation.
	ConnectionSummary string
	// DiscreteIndices holds the grid coordinates for the first N-2 free
	// angles at the representative position.
	DiscreteIndices []int
	// LastAngleRadians is the representative position on the analytic
	// (last) axis.
	LastAngleRadians float64
	// MIslandCount is the number of M-islands found inside the
	// containing S-island (0 when the case is "zero M-islands").
	MIslandCount int
	// LIslandCount is the number of L-islands found inside the reported
	// M-island.
	LIslandCount int
	// FileName is the URL-safe visualization file name, left for the
	// external CAD emitter to use verbatim.
	FileName string
}

// Option configures an EngineOptions via the functional-options pattern,
// following prim_kruskal.Option / WithMethod / WithRoot.
type Option func(*EngineOptions)

// EngineOptions tunes one angle-mapping run.
type EngineOptions struct {
	// Report receives one ProblematicReport per ambiguous island found.
	// A nil Report silently discards reports (useful in tests that only
	// care about counts).
	Report func(ProblematicReport)

	// FindExtremeAnglesOnly switches to the sampling-only extreme-angle
	// mode instead of the full SML grid.
	FindExtremeAnglesOnly bool

	// BoostPrecision multiplies every non-zero angle type's step count
	// by PrecisionBoostMultiplier. Set automatically by the re-boost
	// retry in engine.MapAngles; may also be requested up front.
	BoostPrecision bool

	// StopEarlyIfAnyProblematic causes MapAngles to run phases 1-3 once
	// more with BoostPrecision set when its first run found at least one
	// problematic island. The first run is completed, not cut short.
	StopEarlyIfAnyProblematic bool
}

// WithReport sets the problematic-report sink.
func WithReport(fn func(ProblematicReport)) Option {
	return func(o *EngineOptions) { o.Report = fn }
}

// WithExtremeAnglesOnly switches MapAngles to the extreme-angle sampling
// variant, used when the full grid is infeasible for larger N.
func WithExtremeAnglesOnly(v bool) Option {
	return func(o *EngineOptions) { o.FindExtremeAnglesOnly = v }
}

// WithBoostPrecision forces boosted step counts from the start, bypassing
// the normal re-boost retry.
func WithBoostPrecision(v bool) Option {
	return func(o *EngineOptions) { o.BoostPrecision = v }
}

// WithStopEarlyIfAnyProblematic enables the re-boost retry policy.
func WithStopEarlyIfAnyProblematic(v bool) Option {
	return func(o *EngineOptions) { o.StopEarlyIfAnyProblematic = v }
}

// DefaultOptions returns the EngineOptions used by a normal
// (non-extreme, non-preboosted) run: reports discarded, full grid,
// re-boost retry enabled.
func DefaultOptions() EngineOptions {
	return EngineOptions{
		Report:                    func(ProblematicReport) {},
		FindExtremeAnglesOnly:     false,
		BoostPrecision:            false,
		StopEarlyIfAnyProblematic: true,
	}
}

// Apply builds an EngineOptions from DefaultOptions plus the given
// Option overrides.
func Apply(opts ...Option) EngineOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
