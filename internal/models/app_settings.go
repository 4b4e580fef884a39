package models

// AppSettings is the single global settings record, persisted as JSON
// under the "app_settings" secure-store key.
type AppSettings struct {
	DefaultModel       string             `json:"defaultModel"`
	ResponseStyle      ResponseStyle      `json:"responseStyle"`
	ConversationLength ConversationLength `json:"conversationLength"`
}

// DefaultAppSettings returns the settings used when nothing is stored.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		DefaultModel:       "gpt-3.5-turbo",
		ResponseStyle:      StyleFriendly,
		ConversationLength: LengthMedium,
	}
}

// ResponseStyle selects the tone directive added to the system prompt.
type ResponseStyle string

const (
	StyleFriendly ResponseStyle = "Friendly"
	StyleConcise  ResponseStyle = "Concise"
	StyleDetailed ResponseStyle = "Detailed"
)

var styleDirectives = map[ResponseStyle]string{
	StyleFriendly: "Please respond in a friendly, warm, and approachable manner.",
	StyleConcise:  "Please provide concise, to-the-point responses.",
	StyleDetailed: "Please provide detailed, comprehensive responses with explanations.",
}

func (s ResponseStyle) Valid() bool {
	_, ok := styleDirectives[s]
	return ok
}

// Directive returns the system-prompt phrasing for s.
func (s ResponseStyle) Directive() string {
	return styleDirectives[s]
}

// ConversationLength selects the length directive and the reply token
// ceiling.
type ConversationLength string

const (
	LengthShort  ConversationLength = "Short"
	LengthMedium ConversationLength = "Medium"
	LengthLong   ConversationLength = "Long"
)

var lengthDirectives = map[ConversationLength]string{
	LengthShort:  "Keep your responses brief and focused.",
	LengthMedium: "Provide balanced responses with moderate detail.",
	LengthLong:   "Provide thorough, detailed responses with comprehensive explanations.",
}

// lengthMaxTokens is the exact reply-length ceiling per length tag.
var lengthMaxTokens = map[ConversationLength]int{
	LengthShort:  200,
	LengthMedium: 500,
	LengthLong:   1000,
}

func (l ConversationLength) Valid() bool {
	_, ok := lengthDirectives[l]
	return ok
}

// Directive returns the system-prompt phrasing for l.
func (l ConversationLength) Directive() string {
	return lengthDirectives[l]
}

// MaxTokens returns the reply token ceiling for l. Unknown stored values
// fall back to the Medium ceiling.
func (l ConversationLength) MaxTokens() int {
	if n, ok := lengthMaxTokens[l]; ok {
		return n
	}
	return lengthMaxTokens[LengthMedium]
}
