package framework

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Respond convert a Go value to JSON and sends it to the client.
func Respond(c *gin.Context, data any, statusCode int) {
	// if there's no payload to marshal, set the status code of the response and return
	if statusCode == http.StatusNoContent {
		c.Status(statusCode)
		return
	}

	c.JSON(statusCode, data)
}

// RespondError sends an error response back to the client. A `SafeError` is reported with its
// own status and message, anything else becomes a generic 500.
func RespondError(c *gin.Context, err error) {
	var webErr *SafeError
	if errors.As(err, &webErr) {
		Respond(c, ErrorResponse{Error: webErr.Err.Error()}, webErr.StatusCode)
		return
	}

	// the message may hold sensitive data, don't echo it
	er := ErrorResponse{
		Error: http.StatusText(http.StatusInternalServerError),
	}

	Respond(c, er, http.StatusInternalServerError)
}

// NotFound responds to requests for routes that are not registered.
func NotFound(c *gin.Context) {
	RespondError(c, NewRequestError(errors.Errorf("no route for %s %s", c.Request.Method, c.Request.URL.Path), http.StatusNotFound))
}
