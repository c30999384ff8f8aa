package api

// ServerConfig holds the lookup service settings.
type ServerConfig struct {
	Bind string
	Port int
}

// Matcher answers canonical-name lookups. A built match.Index satisfies it;
// tests substitute fakes.
type Matcher interface {
	Lookup(rawName string) (string, error)
	Size() int
}

// MatchResponse is the body returned for a successful lookup.
type MatchResponse struct {
	Name           string `json:"name"`
	DocumentNumber string `json:"document_number"`
}

// StatsResponse summarizes the served index and the batch run behind it.
type StatsResponse struct {
	IndexSize     int    `json:"index_size"`
	RunID         string `json:"run_id,omitempty"`
	LastUpdate    string `json:"last_update,omitempty"`
	RecordsIn     int    `json:"records_in,omitempty"`
	RecordsFailed int    `json:"records_failed,omitempty"`
}
