// Package conv defines the bidirectional value conversion capability applied
// during binding propagation, with identity and function pair constructors.
package conv
