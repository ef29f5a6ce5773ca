// Package wirescreen is a client for the WireScreen data API.
//
// A Client is built once from a base host URL and an API token and is then
// read-only, so a single Client may be shared between goroutines. Each method
// performs exactly one HTTP round trip and returns the decoded JSON body as an
// untyped value:
//
//	client, err := wirescreen.New("https://api.wirescreen.ai", "")
//	if err != nil {
//	    return err
//	}
//	res, err := client.Search(ctx, wirescreen.SearchParams{Query: "acme", NumResults: wirescreen.Int(10)})
//
// When the token argument is empty it is read from WIRESCREEN_API_TOKEN.
//
// Failures are reported as *ConfigurationError, *RequestError,
// *ResponseDecodeError or *NetworkError. Nothing is retried.
package wirescreen
