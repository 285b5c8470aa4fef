// Package mavuno is the client of the MavunoWatch crop yield service.
package mavuno

var (
	// Version of mavuno, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
