package extract

import "github.com/somu559/sineorcitizenregMod/internal/models"

// ParseText runs every field extractor over one OCR transcription and merges
// the results into a FieldSet. It never fails; fields the heuristics cannot
// find stay empty. The extractors are independent of each other.
func ParseText(text string) models.FieldSet {
	var fields models.FieldSet

	if number, idType, ok := ExtractIDNumber(text); ok {
		fields.IDNumber = number
		fields.IDType = idType
	}
	if dob, ok := ExtractDateOfBirth(text); ok {
		fields.DateOfBirth = dob
	}
	if name, ok := ExtractName(text); ok {
		fields.FullName = name
	}
	if address, ok := ExtractAddress(text); ok {
		fields.Address = address
	}

	return fields
}
