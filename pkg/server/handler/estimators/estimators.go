package estimators

import (
	"github.com/gin-gonic/gin"

	"github.com/seqcast/seqcast/pkg/estimator"
	"github.com/seqcast/seqcast/pkg/metrics"
	"github.com/seqcast/seqcast/pkg/server/ginwrapper"
)

type EstimatorHandler struct{}

func NewEstimatorHandler() *EstimatorHandler {
	return &EstimatorHandler{}
}

type BuildRequest struct {
	// Variant selects the estimator architecture, "mqcnn" or "mqrnn".
	Variant string `json:"variant" binding:"required"`
	// Config holds the estimator hyperparameters; omitted optional
	// fields take their documented defaults.
	Config estimator.Config `json:"config"`
}

// Validate normalizes and validates the submitted configuration and
// returns the normalized copy without building the architecture bundle.
func (h *EstimatorHandler) Validate(c *gin.Context) {
	var req BuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginwrapper.WriteBadRequest(c, err)
		return
	}

	est, err := estimator.New(estimator.Variant(req.Variant), req.Config)
	metrics.RecordBuild(req.Variant, err)
	if err != nil {
		ginwrapper.WriteResponse(c, err, nil)
		return
	}
	ginwrapper.WriteResponse(c, nil, est.Config)
}

// Build assembles the full estimator bundle and returns it.
func (h *EstimatorHandler) Build(c *gin.Context) {
	var req BuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginwrapper.WriteBadRequest(c, err)
		return
	}

	est, err := estimator.New(estimator.Variant(req.Variant), req.Config)
	metrics.RecordBuild(req.Variant, err)
	ginwrapper.WriteResponse(c, err, est)
}
