// Package datadog is a minimal client for the Datadog v1 inventory API:
// free-text search and host tag lookups.
package datadog

// SearchResults holds the metric and host names returned by a search, in the
// order the API returned them. Duplicates are kept.
type SearchResults struct {
	Metrics []string `json:"metrics"`
	Hosts   []string `json:"hosts"`
}

// searchResponse is the envelope returned by GET /search. Fields are
// pointers so an absent or null field can be told apart from an empty list.
type searchResponse struct {
	Results *struct {
		Metrics *[]string `json:"metrics"`
		Hosts   *[]string `json:"hosts"`
	} `json:"results"`
}

// hostTagsResponse is the envelope returned by GET /tags/hosts.
type hostTagsResponse struct {
	Tags map[string][]string `json:"tags"`
}

// singleHostTagsResponse is the envelope returned by GET /tags/hosts/{host}.
type singleHostTagsResponse struct {
	Tags []string `json:"tags"`
}
