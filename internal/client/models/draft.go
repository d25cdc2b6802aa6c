package models

// RegistrationDraft mirrors the two-step registration wizard's fields. The
// JSON tags are the storage format of the draft blob and keep the original
// field names; DPP ("data provável do parto") is the due date in DD/MM/YYYY.
type RegistrationDraft struct {
	Name       string `json:"nome"`
	Email      string `json:"email"`
	Password   string `json:"senha"`
	DueDate    string `json:"dpp"`
	BabyGender string `json:"sexoBebe"`
	BabyName   string `json:"nomeBebe"`
	FatherName string `json:"nomePai"`
}

// Empty reports whether nothing has been typed yet.
func (d RegistrationDraft) Empty() bool {
	return d == RegistrationDraft{}
}
