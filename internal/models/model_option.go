package models

// ModelOption represents a single language model choice exposed to the
// preferences screen.
type ModelOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
