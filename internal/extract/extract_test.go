package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somu559/sineorcitizenregMod/internal/models"
)

func TestExtractIDNumber(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantNumber string
		wantType   string
		wantOK     bool
	}{
		{
			name:       "aadhaar with spaces",
			text:       "Government of India\n2345 6789 0123",
			wantNumber: "234567890123",
			wantType:   models.IDTypeAadhaar,
			wantOK:     true,
		},
		{
			name:       "aadhaar without spaces",
			text:       "ID 234567890123 listed",
			wantNumber: "234567890123",
			wantType:   models.IDTypeAadhaar,
			wantOK:     true,
		},
		{
			name:   "aadhaar starting with 1 is not valid",
			text:   "1234 5678 9012",
			wantOK: false,
		},
		{
			name:       "pan number",
			text:       "Permanent Account Number\nABCDE1234F",
			wantNumber: "ABCDE1234F",
			wantType:   models.IDTypePAN,
			wantOK:     true,
		},
		{
			name:       "pan matched case-insensitively",
			text:       "pan: abcde1234f",
			wantNumber: "ABCDE1234F",
			wantType:   models.IDTypePAN,
			wantOK:     true,
		},
		{
			name:       "aadhaar takes priority over pan",
			text:       "ABCDE1234F\n2345 6789 0123",
			wantNumber: "234567890123",
			wantType:   models.IDTypeAadhaar,
			wantOK:     true,
		},
		{
			name:   "no id present",
			text:   "Name: Someone\nDOB: 01/01/1960",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			number, idType, ok := ExtractIDNumber(tt.text)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantNumber, number)
			assert.Equal(t, tt.wantType, idType)
		})
	}
}

func TestExtractDateOfBirth(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{name: "slash separated", text: "DOB: 15/08/1970", want: "15/08/1970", wantOK: true},
		{name: "dash separated", text: "Born 15-08-1970 here", want: "15-08-1970", wantOK: true},
		{name: "iso shaped", text: "Date 1970-08-15 end", want: "1970-08-15", wantOK: true},
		{name: "dob label lowercase", text: "dob:15/08/1970", want: "15/08/1970", wantOK: true},
		{name: "birth label", text: "Birth 15/08/1970", want: "15/08/1970", wantOK: true},
		{name: "first pattern wins", text: "15/08/1970 and 1960-01-01", want: "15/08/1970", wantOK: true},
		{name: "no date", text: "no numbers here", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractDateOfBirth(tt.text)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			name:   "name after colon",
			text:   "Government of India\nName: RAJESH KUMAR SHARMA\nDOB: 15/08/1970",
			want:   "RAJESH KUMAR SHARMA",
			wantOK: true,
		},
		{
			name:   "name on following line",
			text:   "Name\nRAJESH KUMAR SHARMA",
			want:   "RAJESH KUMAR SHARMA",
			wantOK: true,
		},
		{
			name:   "naam keyword",
			text:   "Naam: Sunita Devi",
			want:   "Sunita Devi",
			wantOK: true,
		},
		{
			name:   "short colon candidate skipped",
			text:   "Name: AB\nName: RAJESH KUMAR",
			want:   "RAJESH KUMAR",
			wantOK: true,
		},
		{
			name:   "fallback to capitalized line in first five",
			text:   "lowercase header\nRajesh Sharma\nmore text",
			want:   "Rajesh Sharma",
			wantOK: true,
		},
		{
			name:   "fallback ignores lines past the fifth",
			text:   "a\nb\nc\nd\ne\nRajesh Sharma",
			wantOK: false,
		},
		{
			name:   "nothing found",
			text:   "government of india\nidentity card",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractName(tt.text)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractAddress(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			name:   "joins following lines",
			text:   "Address: 123 Main Street\nNew Delhi 110001\n2345 6789 0123",
			want:   "New Delhi 110001, 2345 6789 0123",
			wantOK: true,
		},
		{
			name:   "caps at three lines",
			text:   "Address\nline one\nline two\nline three\nline four",
			want:   "line one, line two, line three",
			wantOK: true,
		},
		{
			name:   "skips blank lines inside the window",
			text:   "Pincode\n\n110001",
			want:   "110001",
			wantOK: true,
		},
		{
			name:   "stops after first keyword hit",
			text:   "addr\nfirst\naddress\nsecond",
			want:   "first, address, second",
			wantOK: true,
		},
		{
			name:   "keyword with nothing after",
			text:   "something\nAddress:",
			wantOK: false,
		},
		{
			name:   "no keyword",
			text:   "just a line\nanother line",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractAddress(tt.text)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
