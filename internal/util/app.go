package util

import "runtime"

func GetAppName() string {
	return "KXL Signature Update"
}

// DetermineWorkers picks a worker count for a batch of jobCount uploads.
func DetermineWorkers(jobCount int) int {
	if jobCount <= 0 {
		return max(runtime.GOMAXPROCS(0), 1)
	}

	return min(max(runtime.GOMAXPROCS(0)*2, 1), jobCount)
}
