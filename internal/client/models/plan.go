package models

// PlanItem is one choice of the childbirth-plan checklist. Selected is the
// per-user toggle flipped by the select/unselect endpoint.
type PlanItem struct {
	ID          int    `json:"id"`
	DocumentID  string `json:"documentId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Selected    bool   `json:"selected"`
}

// Term is a block of legal content (privacy policy or terms of use).
type Term struct {
	ID         int    `json:"id"`
	DocumentID string `json:"documentId"`
	Type       string `json:"type"`
	Content    string `json:"content"`
}
