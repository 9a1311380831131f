package server

import (
	"github.com/seqcast/seqcast/pkg/server/handler/datasets"
	"github.com/seqcast/seqcast/pkg/server/handler/estimators"
)

func (s *apiServer) initRouter() {
	estimatorHandler := estimators.NewEstimatorHandler()
	datasetHandler := datasets.NewDatasetHandler()

	v1 := s.Group("/api/v1")
	{
		// estimators
		estimatorsv1 := v1.Group("/estimators")
		{
			estimatorsv1.POST("/validate", estimatorHandler.Validate)
			estimatorsv1.POST("/build", estimatorHandler.Build)
		}

		// datasets
		datasetsv1 := v1.Group("/datasets")
		{
			datasetsv1.POST("/inspect", datasetHandler.Inspect)
		}
	}
}
