// Package internal contains the infrastructure shared by the waypoint
// packages: logging, configuration and the localized message catalogue.
// Types and functions in this package are not part of the public API.
package internal
