package models

// ScheduledEvent is one agenda entry. Date is YYYY-MM-DD and Time is HH:mm,
// as stored by the server. DisplayDate carries the DD/MM fragment the day
// agenda shows; it is filled by the API layer, never sent.
type ScheduledEvent struct {
	ID          int    `json:"id"`
	DocumentID  string `json:"documentId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`

	DisplayDate string `json:"-"`
}
