package models

import "time"

// ID types recognised by the OCR field classifier.
const (
	IDTypeAadhaar = "Aadhaar"
	IDTypePAN     = "PAN"
)

// FieldSet is the structured result of parsing one OCR transcription.
// Any field may be empty when the heuristics found nothing; id_type is
// "Aadhaar", "PAN" or empty.
type FieldSet struct {
	FullName    string `json:"full_name" bson:"full_name"`
	DateOfBirth string `json:"date_of_birth" bson:"date_of_birth"`
	IDNumber    string `json:"id_number" bson:"id_number"`
	IDType      string `json:"id_type" bson:"id_type"`
	Address     string `json:"address" bson:"address"`
}

// RegistrationInput is the client-submitted payload for creating a
// registration. ExtractedData is the FieldSet the client received from the
// OCR endpoint, retained opaquely for audit and never re-validated.
type RegistrationInput struct {
	FullName      string    `json:"full_name"`
	DateOfBirth   string    `json:"date_of_birth"`
	Address       string    `json:"address"`
	IDNumber      string    `json:"id_number"`
	IDType        string    `json:"id_type"`
	ExtractedData *FieldSet `json:"extracted_data,omitempty"`
}

// Registration is the persisted enrollment record. Age is derived at creation
// time and is always >= 50 for persisted records; RegistrationID and CreatedAt
// are set exactly once and never mutated.
type Registration struct {
	RegistrationID string    `json:"registration_id"`
	FullName       string    `json:"full_name"`
	DateOfBirth    string    `json:"date_of_birth"`
	Age            int       `json:"age"`
	Address        string    `json:"address"`
	IDNumber       string    `json:"id_number"`
	IDType         string    `json:"id_type"`
	ExtractedData  *FieldSet `json:"extracted_data,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// OCRResponse is the structured result of one extract-text call. OCR backend
// failures are reported here with Success=false rather than as HTTP errors so
// clients can react uniformly.
type OCRResponse struct {
	Success       bool     `json:"success"`
	ExtractedText string   `json:"extracted_text"`
	ParsedData    FieldSet `json:"parsed_data"`
	Error         string   `json:"error,omitempty"`
}
