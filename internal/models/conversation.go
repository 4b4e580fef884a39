package models

import "time"

// Conversation is a user-defined chat thread. The full collection is
// persisted as one JSON array under the "conversations" secure-store key,
// newest first.
type Conversation struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Type      ConversationType `json:"type"`
	Context   string           `json:"context"`
	CreatedAt time.Time        `json:"createdAt"`
}

// ConversationType is the closed set of conversation topics.
type ConversationType string

const (
	TypeGeneral        ConversationType = "general"
	TypeWork           ConversationType = "work"
	TypeCreative       ConversationType = "creative"
	TypeLearning       ConversationType = "learning"
	TypeProblemSolving ConversationType = "problem-solving"
	TypePersonal       ConversationType = "personal"
)

// ConversationTypes lists all types in display order.
var ConversationTypes = []ConversationType{
	TypeGeneral,
	TypeWork,
	TypeCreative,
	TypeLearning,
	TypeProblemSolving,
	TypePersonal,
}

var conversationTypeLabels = map[ConversationType]string{
	TypeGeneral:        "General Chat",
	TypeWork:           "Work & Business",
	TypeCreative:       "Creative Writing",
	TypeLearning:       "Learning",
	TypeProblemSolving: "Problem Solving",
	TypePersonal:       "Personal",
}

// defaultContexts pre-fill the context field when a type is picked.
var defaultContexts = map[ConversationType]string{
	TypeGeneral:        "Help me with general questions and tasks",
	TypeWork:           "Assist with work-related projects and communication",
	TypeCreative:       "Support creative writing and brainstorming",
	TypeLearning:       "Help with learning new topics and concepts",
	TypeProblemSolving: "Guide me through problem-solving processes",
	TypePersonal:       "Provide personal advice and support",
}

// Valid reports whether t is a member of the closed type set.
func (t ConversationType) Valid() bool {
	_, ok := conversationTypeLabels[t]
	return ok
}

// Label returns the display label for t, or the raw value if unknown.
func (t ConversationType) Label() string {
	if label, ok := conversationTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// DefaultContext returns the suggested context text for t.
func (t ConversationType) DefaultContext() string {
	return defaultContexts[t]
}
