package persona

import "testing"

func TestDetectAvatarURL(t *testing.T) {
	tests := []struct {
		name             string
		personaName      string
		occupation       string
		shortDescription string
		want             string
	}{
		{
			name:        "occupation keyword",
			personaName: "Alex",
			occupation:  "Software Engineer",
			want:        "/avatars/engineer.png",
		},
		{
			name:             "description keyword",
			personaName:      "Jordan",
			shortDescription: "A busy marketing lead evaluating tools",
			want:             "/avatars/marketer.png",
		},
		{
			name:             "most matches wins",
			personaName:      "Sam",
			occupation:       "Data Analyst",
			shortDescription: "Finance researcher who loves spreadsheets",
			want:             "/avatars/analyst.png",
		},
		{
			name:        "no match falls back to neutral",
			personaName: "Riley",
			occupation:  "Beekeeper",
			want:        "/avatars/neutral.png",
		},
		{
			name:        "earlier profile wins ties",
			personaName: "Casey",
			occupation:  "Founder",
			want:        "/avatars/executive.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectAvatarURL(tt.personaName, tt.occupation, tt.shortDescription)
			if got != tt.want {
				t.Errorf("DetectAvatarURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectAvatarURLDeterministic(t *testing.T) {
	first := DetectAvatarURL("Alex", "Software Engineer", "Curious about developer tools")
	for i := 0; i < 10; i++ {
		if got := DetectAvatarURL("Alex", "Software Engineer", "Curious about developer tools"); got != first {
			t.Fatalf("detection changed between calls: %q vs %q", got, first)
		}
	}
}
