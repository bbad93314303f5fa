// Package api implements the HTTP transport for the LeakRadar API.
//
// It owns endpoint paths, query/body encoding, and translation of non-2xx
// responses into *Error. The public leakradar package wraps these errors
// into its typed hierarchy.
package api
