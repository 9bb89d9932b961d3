// Package sysinfo collects the host metadata reported by the info endpoint.
package sysinfo

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"

	"devops-info/infoservice/internal/logging"
	"devops-info/infoservice/internal/models/dtos/responses"
)

// Collector produces a fresh SystemInfo on every call.
type Collector interface {
	Collect(ctx context.Context) (responses.SystemInfo, error)
}

var _ Collector = (*HostCollector)(nil)

// platformNames maps GOOS values to the system names operators expect.
var platformNames = map[string]string{
	"linux":   "Linux",
	"darwin":  "Darwin",
	"windows": "Windows",
	"freebsd": "FreeBSD",
	"openbsd": "OpenBSD",
	"netbsd":  "NetBSD",
	"solaris": "SunOS",
	"aix":     "AIX",
}

// HostCollector queries the local OS. Nothing is cached.
type HostCollector struct {
	hostInfo    func(ctx context.Context) (*host.InfoStat, error)
	hostname    func() (string, error)
	kernelBuild func() string
	numCPU      func() int
	goos        string
}

func NewHostCollector() *HostCollector {
	return &HostCollector{
		hostInfo:    host.InfoWithContext,
		hostname:    os.Hostname,
		kernelBuild: kernelBuild,
		numCPU:      runtime.NumCPU,
		goos:        runtime.GOOS,
	}
}

// Collect queries the host. Individual lookups that fail are reported as
// null fields; only a cancelled context is returned as an error.
func (c *HostCollector) Collect(ctx context.Context) (responses.SystemInfo, error) {
	if err := ctx.Err(); err != nil {
		return responses.SystemInfo{}, fmt.Errorf("collect system info: %w", err)
	}

	info := responses.SystemInfo{
		Platform:  PlatformName(c.goos),
		GoVersion: runtime.Version(),
	}

	if name, err := c.hostname(); err != nil {
		logging.Warn("Hostname lookup failed", "error", err.Error())
	} else {
		info.Hostname = nonEmpty(name)
	}

	if n := c.numCPU(); n > 0 {
		info.CPUCount = &n
	}

	stat, err := c.hostInfo(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return responses.SystemInfo{}, fmt.Errorf("collect system info: %w", ctxErr)
		}
		// gopsutil returns partial results alongside some errors.
		logging.Warn("Host info query failed", "error", err.Error())
	}
	// platform_version is the kernel build string (uname -v); the release
	// from gopsutil is used where uname is unavailable.
	info.PlatformVersion = nonEmpty(c.kernelBuild())
	if stat != nil {
		if info.PlatformVersion == nil {
			info.PlatformVersion = nonEmpty(stat.KernelVersion)
		}
		info.Architecture = nonEmpty(stat.KernelArch)
		if info.Hostname == nil {
			info.Hostname = nonEmpty(stat.Hostname)
		}
	}

	return info, nil
}

// PlatformName returns the display name for a GOOS value, or nil when it is
// empty.
func PlatformName(goos string) *string {
	if name, ok := platformNames[goos]; ok {
		return &name
	}
	return nonEmpty(goos)
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
