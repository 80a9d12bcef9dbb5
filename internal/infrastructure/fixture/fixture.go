// Package fixture implements the ports store interfaces with canned in-memory
// data. Nothing is persisted: fabricated entities vanish after the response,
// and sequential calls do not see each other's effects. Identifiers are an
// unconstrained random draw, so uniqueness across calls is not guaranteed.
package fixture

import (
	"math/rand"
	"time"
)

// newID fabricates an identifier below n.
func newID(n int) int {
	return rand.Intn(n)
}

// nowISO formats the current instant the way the upstream backend does.
func nowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

func strPtr(s string) *string {
	return &s
}
