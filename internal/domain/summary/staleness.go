package summary

// IsStale reports whether new messages were appended after the summary
// was last generated. A summary is stale iff the live count exceeds
// the count recorded at generation time.
func IsStale(currentMessageCount, messageCountAtGeneration int) bool {
	return currentMessageCount > messageCountAtGeneration
}
