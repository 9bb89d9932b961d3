package main

import (
	"time"

	"devops-info/infoservice/internal/logging"
)

func main() {
	// Uptime is measured from here.
	startedAt := time.Now().UTC()

	if err := newRootCmd(startedAt).Execute(); err != nil {
		logging.Fatal("Application failed to start", "error", err.Error())
	}
}
