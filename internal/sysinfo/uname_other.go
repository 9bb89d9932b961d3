//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package sysinfo

// kernelBuild is not available here; Collect falls back to the kernel
// version from gopsutil.
func kernelBuild() string {
	return ""
}
