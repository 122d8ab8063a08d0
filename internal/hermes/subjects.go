package hermes

import "strings"

const (
	// SubjectEstimateRequest carries EstimateRequestEvent payloads from
	// clients that want an estimate without going through HTTP.
	SubjectEstimateRequest = "landbos.estimate.request"

	StreamName     = "LANDBOS_EVENTS"
	StreamSubjects = "landbos.estimate.>"
	StreamMaxAge   = "720h" // 30 days
)

func SubjectEstimateComputed(estimateID string) string {
	return "landbos.estimate." + estimateID + ".computed"
}
func SubjectEstimateFailed(requestID string) string {
	return "landbos.estimate." + requestID + ".failed"
}

// ValidToken reports whether s can stand as a single subject token: not
// empty, at most 128 bytes, without separators, wildcards or whitespace.
func ValidToken(s string) bool {
	if s == "" || len(s) > 128 {
		return false
	}
	return !strings.ContainsAny(s, ".*> \t\r\n")
}
