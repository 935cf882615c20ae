package persona

import "strings"

// avatarProfile maps occupation and trait keywords to a stock avatar.
// Profiles are scored in order, first highest score wins, so the slice
// order is part of the contract.
type avatarProfile struct {
	slug     string
	keywords []string
}

var avatarProfiles = []avatarProfile{
	{slug: "executive", keywords: []string{"ceo", "cto", "cfo", "founder", "executive", "director", "vp", "president"}},
	{slug: "engineer", keywords: []string{"engineer", "developer", "programmer", "architect", "devops", "sre", "technical"}},
	{slug: "designer", keywords: []string{"designer", "creative", "artist", "ux", "ui", "illustrator"}},
	{slug: "marketer", keywords: []string{"marketing", "marketer", "growth", "brand", "content", "social media"}},
	{slug: "sales", keywords: []string{"sales", "account manager", "business development", "account executive"}},
	{slug: "analyst", keywords: []string{"analyst", "data", "researcher", "scientist", "finance", "accountant"}},
	{slug: "manager", keywords: []string{"manager", "lead", "supervisor", "coordinator", "operations"}},
	{slug: "student", keywords: []string{"student", "intern", "graduate", "junior"}},
	{slug: "healthcare", keywords: []string{"doctor", "nurse", "physician", "therapist", "medical", "healthcare"}},
	{slug: "educator", keywords: []string{"teacher", "professor", "educator", "instructor", "tutor"}},
}

const defaultAvatarSlug = "neutral"

// DetectAvatarURL picks a stock avatar for a persona by scoring
// occupation and description keywords. The result is deterministic
// for a given persona so regenerating a persona never flips its face.
func DetectAvatarURL(name, occupation, shortDescription string) string {
	haystack := strings.ToLower(name + " " + occupation + " " + shortDescription)

	bestSlug := defaultAvatarSlug
	bestScore := 0
	for _, profile := range avatarProfiles {
		score := 0
		for _, kw := range profile.keywords {
			if strings.Contains(haystack, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestSlug = profile.slug
		}
	}

	return "/avatars/" + bestSlug + ".png"
}
