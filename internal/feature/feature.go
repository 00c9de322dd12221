// Package feature defines the FeatureSet configuration consulted by the
// parser and by surface↔IR translation to gate optional surface
// constructs (spec §6 "Feature set").
package feature

// Set is the configuration struct with the recognized options (spec §6).
// Currently the only gated construct is the match statement.
type Set struct {
	MatchStmt bool
}

// Default returns the feature set used by the top-level parse/render
// entry points: match enabled (spec §6 "The default feature set enables
// match").
func Default() Set {
	return Set{MatchStmt: true}
}
