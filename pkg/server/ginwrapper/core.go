package ginwrapper

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seqcast/seqcast/pkg/estimator"
)

type Response struct {
	// Error is the detail message of the error
	Error string `json:"error,omitempty"`
	// Data is the response data
	Data interface{} `json:"data,omitempty"`
}

// WriteResponse writes an error or the response data into the http
// response body. Configuration errors map to 400 since the caller must
// reconstruct with corrected arguments; anything else is a server fault.
func WriteResponse(c *gin.Context, err error, data interface{}) {
	if err != nil {
		status := http.StatusInternalServerError
		var cerr *estimator.ConfigurationError
		if errors.As(err, &cerr) {
			status = http.StatusBadRequest
		}
		c.JSON(status, Response{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, Response{Data: data})
}

// WriteBadRequest reports a malformed request body.
func WriteBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Response{Error: err.Error()})
}
