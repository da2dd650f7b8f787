// Package admin gates the curation surface behind a shared access code.
// This is access friction, not authentication: one static compare, no
// sessions, no secrets management.
package admin

type Gate struct {
	code string
}

func NewGate(code string) *Gate {
	return &Gate{code: code}
}

// Authorize reports whether code matches the configured access code.
func (g *Gate) Authorize(code string) bool {
	return code != "" && code == g.code
}
