package wirescreen

// SearchParams are the inputs of Client.Search.
type SearchParams struct {
	Query      string
	NumResults *int
}

// AdvancedSearchParams are the inputs of Client.AdvancedSearch. Nil fields are
// sent as JSON null and left to the server's defaults.
type AdvancedSearchParams struct {
	Query             string  `json:"query"`
	NumResults        *int    `json:"num_results"`
	LimitToPublic     *bool   `json:"limit_to_public"`
	LimitToGovernment *bool   `json:"limit_to_government"`
	LimitToOperating  *bool   `json:"limit_to_operating"`
	Region            *string `json:"region"`
}

type uuidListBody struct {
	UUIDList []string `json:"uuid_list"`
}

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }
