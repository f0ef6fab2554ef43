// Package ports declares the collaborators the place-order workflow depends on.
// Adapters under internal/adapters implement them; tests substitute mocks.
package ports
