package middleware

import (
	"net/http"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func HandleError(resp *restful.Response, err error, status int) {
	resp.WriteHeaderAndJson(status, ErrorResponse{
		Success: false,
		Message: err.Error(),
	}, restful.MIME_JSON)
}

// Logger logs one line per request with a generated request id and the
// total handling duration.
func Logger(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	requestID := uuid.New().String()
	start := time.Now()

	chain.ProcessFilter(req, resp)

	log.Info().
		Str("request_id", requestID).
		Str("method", req.Request.Method).
		Str("path", req.Request.URL.Path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("Request handled")
}

// RecoverPanic converts handler panics into a 500 instead of killing the
// process.
func RecoverPanic(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("path", req.Request.URL.Path).Msg("Handler panicked")
			resp.WriteHeaderAndJson(http.StatusInternalServerError, ErrorResponse{
				Success: false,
				Message: "internal server error",
			}, restful.MIME_JSON)
		}
	}()

	chain.ProcessFilter(req, resp)
}
