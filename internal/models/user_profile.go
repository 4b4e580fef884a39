package models

// UserProfile holds the answers collected by the onboarding flow.
// Persisted as JSON under the "userInfo" secure-store key.
type UserProfile struct {
	Name       string `json:"name"`
	Profession string `json:"profession"`
	Interests  string `json:"interests"`
	Goals      string `json:"goals"`
}

// OnboardingStep describes one screen of the guided profile form.
type OnboardingStep struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Field    string `json:"field"`
}

// OnboardingSteps is the fixed four-question flow shown to first-time
// users.
var OnboardingSteps = []OnboardingStep{
	{Title: "What's your name?", Subtitle: "I'd love to know what to call you", Field: "name"},
	{Title: "What do you do?", Subtitle: "Your profession helps me provide better assistance", Field: "profession"},
	{Title: "What interests you?", Subtitle: "This helps me understand your context better", Field: "interests"},
	{Title: "What are your goals?", Subtitle: "How can I help you achieve them?", Field: "goals"},
}
