package api

import (
	"context"
	"io"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"

	"github.com/astrolabs/webdev-answerbot/internal/api/middleware"
	"github.com/astrolabs/webdev-answerbot/internal/ingestion"
	"github.com/astrolabs/webdev-answerbot/internal/stream"
)

// Ingestor runs the fetch-chunk-embed-store batch for a URL list.
type Ingestor interface {
	Ingest(ctx context.Context, urls []string) []ingestion.URLResult
}

// Answerer runs the query pipeline and returns the live completion stream.
type Answerer interface {
	Answer(ctx context.Context, question string) (stream.Stream, error)
}

type Handler struct {
	ingestor Ingestor
	answerer Answerer
	logger   *zerolog.Logger
}

func NewHandler(ingestor Ingestor, answerer Answerer, logger *zerolog.Logger) *Handler {
	return &Handler{
		ingestor: ingestor,
		answerer: answerer,
		logger:   logger,
	}
}

// GenerateEmbeddings handles POST /api/generate-embeddings
func (h *Handler) GenerateEmbeddings(req *restful.Request, resp *restful.Response) {
	var ingestRequest IngestRequest

	if err := req.ReadEntity(&ingestRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().Int("url_count", len(ingestRequest.URLs)).Msg("Starting ingestion")

	ctx := req.Request.Context()
	results := h.ingestor.Ingest(ctx, ingestRequest.URLs)

	stored, failed := 0, 0
	for _, result := range results {
		stored += result.Stored
		failed += result.Failed
		if result.FetchErr != nil {
			failed++
		}
	}

	h.logger.Info().
		Int("urls", len(results)).
		Int("chunks_stored", stored).
		Int("failures", failed).
		Msg("Ingestion complete")

	// Partial failures are logged only; the caller gets a blanket success.
	resp.WriteHeaderAndEntity(http.StatusOK, IngestResponse{Success: true})
}

// Docs handles POST /api/docs
func (h *Handler) Docs(req *restful.Request, resp *restful.Response) {
	var questionRequest QuestionRequest

	if err := req.ReadEntity(&questionRequest); err != nil || questionRequest.Question == "" {
		resp.WriteErrorString(http.StatusBadRequest, "No prompt in the request")
		return
	}

	h.logger.Info().Str("question", questionRequest.Question).Msg("Process question")

	ctx := req.Request.Context()

	answerStream, err := h.answerer.Answer(ctx, questionRequest.Question)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to answer question")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.AddHeader("Content-Type", "text/plain; charset=utf-8")
	resp.AddHeader("Cache-Control", "no-cache")
	resp.WriteHeader(http.StatusOK)

	writer := resp.ResponseWriter
	flusher, canFlush := writer.(http.Flusher)

	for answerStream.Next() {
		select {
		case <-ctx.Done():
			// Client went away; abort the in-flight stream read loop.
			h.logger.Debug().Msg("Client canceled, aborting stream")
			return
		default:
		}

		io.WriteString(writer, answerStream.Current())
		if canFlush {
			flusher.Flush()
		}
	}

	if err := answerStream.Err(); err != nil {
		// Headers are already sent; the client sees a truncated answer.
		h.logger.Error().Err(err).Msg("Completion stream failed mid-response")
	}
}

// Health handles GET /api/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}
