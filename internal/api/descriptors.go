package api

import (
	"net/http"

	"devops-info/infoservice/internal/constants"
	"devops-info/infoservice/internal/models/dtos/responses"
)

func ServiceDescriptor() responses.ServiceInfo {
	return responses.ServiceInfo{
		Name:        constants.ServiceName,
		Version:     constants.ServiceVersion,
		Description: constants.ServiceDescription,
		Framework:   constants.ServiceFramework,
	}
}

// DefaultEndpoints lists the routes registered by routes.RegisterRoutes, in
// the order they are reported.
func DefaultEndpoints() []responses.EndpointInfo {
	return []responses.EndpointInfo{
		{Path: constants.PathIndex, Method: http.MethodGet, Description: "Service information"},
		{Path: constants.PathHealth, Method: http.MethodGet, Description: "Health check"},
		{Path: constants.PathMetrics, Method: http.MethodGet, Description: "Prometheus metrics"},
	}
}
