package responses

// ServiceInfo describes the service itself. Values are fixed at build time.
type ServiceInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Framework   string `json:"framework"`
}

// SystemInfo is a per-request snapshot of the host. Fields the platform
// cannot provide are encoded as null.
type SystemInfo struct {
	Hostname        *string `json:"hostname"`
	Platform        *string `json:"platform"`
	PlatformVersion *string `json:"platform_version"`
	Architecture    *string `json:"architecture"`
	CPUCount        *int    `json:"cpu_count"`
	GoVersion       string  `json:"go_version"`
}

type RuntimeInfo struct {
	UptimeSeconds int64   `json:"uptime_seconds"`
	UptimeHuman   string  `json:"uptime_human"`
	CurrentTime   string  `json:"current_time"`
	Timezone      *string `json:"timezone"`
}

// RequestInfo echoes attributes of the inbound request.
type RequestInfo struct {
	ClientIP  string  `json:"client_ip"`
	UserAgent *string `json:"user_agent"`
	Method    string  `json:"method"`
	Path      string  `json:"path"`
}

type EndpointInfo struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

// InfoResponse is the body of GET /.
type InfoResponse struct {
	Service   ServiceInfo    `json:"service"`
	System    SystemInfo     `json:"system"`
	Runtime   RuntimeInfo    `json:"runtime"`
	Request   RequestInfo    `json:"request"`
	Endpoints []EndpointInfo `json:"endpoints"`
}
