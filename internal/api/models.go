package api

type IngestRequest struct {
	URLs []string `json:"urls"`
}

// IngestResponse mirrors the ingestion contract: success is reported even
// when individual URLs or chunks failed; per-item failures are logged only.
type IngestResponse struct {
	Success bool `json:"success"`
}

type QuestionRequest struct {
	Question string `json:"question"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
