package datasets

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/seqcast/seqcast/pkg/dataset"
	"github.com/seqcast/seqcast/pkg/estimator"
	"github.com/seqcast/seqcast/pkg/server/ginwrapper"
)

type DatasetHandler struct{}

func NewDatasetHandler() *DatasetHandler {
	return &DatasetHandler{}
}

type InspectRequest struct {
	// CSV is the long-format CSV document of the training sample.
	CSV string `json:"csv" binding:"required"`
	// PredictionLength, when set, also yields a context length
	// suggestion.
	PredictionLength int `json:"predictionLength,omitempty"`
}

type InspectResponse struct {
	Statistics             *dataset.Statistics  `json:"statistics"`
	AutoFields             estimator.AutoFields `json:"autoFields"`
	SuggestedContextLength int                  `json:"suggestedContextLength,omitempty"`
}

// Inspect computes statistics and derived estimator fields for an
// uploaded training sample.
func (h *DatasetHandler) Inspect(c *gin.Context) {
	var req InspectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginwrapper.WriteBadRequest(c, err)
		return
	}

	ds, err := dataset.ReadCSV(strings.NewReader(req.CSV))
	if err != nil {
		ginwrapper.WriteBadRequest(c, err)
		return
	}

	st, err := dataset.CalculateStatistics(ds)
	if err != nil {
		ginwrapper.WriteBadRequest(c, err)
		return
	}
	af, err := estimator.DeriveAutoFields(ds)
	if err != nil {
		ginwrapper.WriteBadRequest(c, err)
		return
	}

	resp := InspectResponse{Statistics: st, AutoFields: af}
	if req.PredictionLength > 0 {
		resp.SuggestedContextLength = dataset.SuggestContextLength(longestTarget(ds), req.PredictionLength)
	}

	ginwrapper.WriteResponse(c, nil, resp)
}

func longestTarget(ds dataset.Dataset) []float64 {
	var longest []float64
	for i := range ds {
		if len(ds[i].Target) > len(longest) {
			longest = ds[i].Target
		}
	}
	return longest
}
