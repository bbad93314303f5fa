// Package leakradar provides a Go client SDK for the LeakRadar.io
// leak-intelligence API.
//
// The client authenticates with a bearer token, exposes one method per
// remote endpoint (advanced search, unlocking leaks, CSV export, profile
// retrieval) and maps HTTP failures onto a typed error hierarchy keyed to
// status codes. There are no retries, no caching and no reshaping of
// response payloads. CSV exports are returned as raw bytes.
//
// Basic usage:
//
//	client, err := leakradar.New("your-bearer-token")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	profile, err := client.GetProfile(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Credits:", profile["credits"])
//
//	// Search leaks for a domain
//	results, err := client.SearchAdvanced(ctx, leakradar.Filters{
//	    "url_domain": "example.com",
//	})
//
// Errors can be matched by type or by sentinel:
//
//	var rateErr *leakradar.TooManyRequestsError
//	if errors.As(err, &rateErr) { ... }
//	if errors.Is(err, leakradar.ErrRateLimited) { ... }
package leakradar
