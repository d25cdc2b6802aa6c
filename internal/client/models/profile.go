package models

// ClientProfile is the pregnancy-tracking profile, a singleton per
// authenticated user. Deleting it cascades to account deletion server-side.
type ClientProfile struct {
	ID                     int          `json:"id"`
	DocumentID             string       `json:"documentId"`
	Name                   string       `json:"name"`
	ProbableDateOfDelivery string       `json:"probableDateOfDelivery"`
	BabyGender             string       `json:"babyGender"`
	BabyName               string       `json:"babyName"`
	FatherName             string       `json:"fatherName"`
	User                   *UserSummary `json:"user"`
}
