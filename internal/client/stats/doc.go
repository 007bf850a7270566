// Package stats turns raw transaction and progress records into the series
// and table rows shown by the client views. All functions are pure: inputs
// are never modified and results are freshly allocated.
package stats
