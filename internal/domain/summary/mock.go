package summary

// mockPayload is returned when the completion provider reports quota
// exhaustion. It keeps the summary surface functional in degraded mode
// and is persisted through the normal upsert path so staleness
// bookkeeping stays consistent.
func mockPayload() Payload {
	return Payload{
		KeyInsights: []string{
			"[Mock] The customer is actively evaluating solutions and responds well to concrete examples.",
			"[Mock] Price sensitivity surfaced repeatedly; value framing matters more than feature lists.",
			"[Mock] The customer expects fast onboarding and is wary of long implementation timelines.",
		},
		TopObjections: []string{
			"[Mock] Unclear return on investment compared to the current workflow.",
			"[Mock] Concern about switching costs and data migration effort.",
		},
		ExecutiveSummary: []string{
			"[Mock] This is a placeholder summary generated because the completion provider quota is exhausted.",
			"[Mock] The conversation shows genuine buying interest with unresolved pricing concerns.",
			"[Mock] Objections center on migration risk and time to value.",
			"[Mock] A tailored demo addressing the stated pain points is the recommended next step.",
			"[Mock] Restore completion provider credits to regenerate a real summary.",
		},
	}
}
