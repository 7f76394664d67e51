package api

import (
	"net/http"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"

	"github.com/astrolabs/webdev-answerbot/internal/api/middleware"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("/health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/generate-embeddings").
			To(handler.GenerateEmbeddings).
			Doc("Fetch, chunk, embed and store a batch of documentation URLs").
			Metadata(restfulspec.KeyOpenAPITags, []string{"ingestion"}).
			Reads(IngestRequest{}).
			Writes(IngestResponse{}).
			Returns(200, "OK", IngestResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/docs").
			To(handler.Docs).
			Doc("Answer a question from the ingested documentation, streamed as markdown").
			Metadata(restfulspec.KeyOpenAPITags, []string{"query"}).
			Produces("text/plain").
			Reads(QuestionRequest{}).
			Returns(200, "OK", nil).
			Returns(400, "Bad Request", nil).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)

	container.ServiceErrorHandler(func(serviceErr restful.ServiceError, req *restful.Request, resp *restful.Response) {
		message := "Method not allowed"
		if serviceErr.Code != http.StatusMethodNotAllowed {
			message = serviceErr.Message
		}
		resp.WriteHeaderAndJson(serviceErr.Code, middleware.ErrorResponse{
			Success: false,
			Message: message,
		}, restful.MIME_JSON)
	})
}
