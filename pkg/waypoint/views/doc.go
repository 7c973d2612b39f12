// Package views holds the screens of the walking tracker and the route
// table that maps paths to them.
//
// Data comes from a ProjectSource. Views only read it and, for live
// screens, subscribe to it between Initialize and Cleanup.
package views
