// Package constants defines shared constants and configuration values
// used throughout the waypoint application.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read at startup.
const (
	EnvironmentEnvVar = "ENVIRONMENT"
	LogLevelEnvVar    = "WAYPOINT_LOG_LEVEL"
	ConfigPathEnvVar  = "WAYPOINT_CONFIG"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// NotFoundPath is the reserved route every unmatched path resolves to.
// A route table must register it.
const NotFoundPath = "/404"

// GenericErrorMessage is shown in the host region when a view fails and no
// localized error content is configured.
const GenericErrorMessage = "Something went wrong."

// Host document defaults.
const (
	DefaultRegionID    = "app"        // Container element the current view owns
	DefaultIndicatorID = "loading"    // Loading indicator element
	DefaultRouteAttr   = "data-route" // Declarative route attribute on triggers
	DefaultActiveClass = "active"     // Class applied to the trigger for the current path
	HiddenAttr         = "hidden"     // Attribute toggled on the loading indicator
)

// Developer server defaults.
const (
	DefaultServerAddr = "127.0.0.1:8080"
	DefaultServerRoot = "web"
	DefaultIndexFile  = "index.html"
)

// DefaultLanguage is used when the browser language has no catalogue.
const DefaultLanguage = "en"
