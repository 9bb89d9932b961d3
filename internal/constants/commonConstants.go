package constants

type (
	HealthStatus string
)

const (
	ServiceName        = "devops-info-service"
	ServiceDescription = "DevOps course info service"
	ServiceFramework   = "chi"

	HealthStatusHealthy HealthStatus = "healthy"

	HeaderRequestID = "X-Request-ID"
	HeaderUserAgent = "User-Agent"
)

// ServiceVersion is overridden at build time with
// -ldflags "-X devops-info/infoservice/internal/constants.ServiceVersion=...".
var ServiceVersion = "1.0.0"

const (
	PathIndex   = "/"
	PathHealth  = "/health"
	PathMetrics = "/metrics"
)
