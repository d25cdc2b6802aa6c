package models

// List is a shopping/preparation list.
type List struct {
	ID         int    `json:"id"`
	DocumentID string `json:"documentId"`
	Name       string `json:"name"`
}

// Topic is one item inside a list; it belongs to exactly one list, keyed by
// the list's documentId.
type Topic struct {
	ID             int    `json:"id"`
	DocumentID     string `json:"documentId"`
	Name           string `json:"name"`
	ListDocumentID string `json:"listDocumentId"`
}
