package api

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORS builds the permissive policy the browser clients expect. Preflight
// requests answer 200 instead of the library default 204.
func NewCORS() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:       []string{"*"},
		AllowedMethods:       []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:       []string{"authorization", "x-client-info", "apikey", "content-type"},
		OptionsSuccessStatus: http.StatusOK,
	})
}
