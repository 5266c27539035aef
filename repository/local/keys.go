// Package local implements the persistence boundary on top of a KeyValueStore.
package local

// Fixed storage keys shared with earlier releases of the dashboard.
const (
	KeySession   = "auth"
	KeyTheme     = "theme"
	KeyWorkspace = "workspace"
)
