package render

import "github.com/indentlang/langcore/internal/ast"

// Render produces a source string from p per the mode in cfg (spec §4.6
// "Mode selection"). Lossless degrades to pretty whenever p lacks a usable
// raw-token stream or has been marked dirty.
func Render(p *ast.Program, cfg Config) string {
	if cfg.Mode == Lossless && losslessEligible(p) {
		return renderLossless(p)
	}
	return renderPretty(p, cfg)
}
