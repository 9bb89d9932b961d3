package api

import (
	"errors"

	"devops-info/infoservice/internal/models/dtos/responses"
	"devops-info/infoservice/internal/sysinfo"
	"devops-info/infoservice/internal/uptime"
)

type Dependencies struct {
	Clock     *uptime.Clock
	System    sysinfo.Collector
	Service   responses.ServiceInfo
	Endpoints []responses.EndpointInfo
}

// InitDependencies wires the production collaborators around clock.
func InitDependencies(clock *uptime.Clock) (*Dependencies, error) {
	if clock == nil {
		return nil, errors.New("process clock is required")
	}

	return &Dependencies{
		Clock:     clock,
		System:    sysinfo.NewHostCollector(),
		Service:   ServiceDescriptor(),
		Endpoints: DefaultEndpoints(),
	}, nil
}
