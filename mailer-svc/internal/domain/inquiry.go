package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

const FormTypeCatering = "Catering"

// Text accepts a JSON string or number, so guest counts posted as numbers
// decode the same as form strings.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = Text(n.String())
	return nil
}

// Inquiry is a contact or catering form submission.
type Inquiry struct {
	FirstName  Text `json:"firstName"`
	LastName   Text `json:"lastName"`
	Email      Text `json:"email"`
	Phone      Text `json:"phone"`
	Subject    Text `json:"subject"`
	Message    Text `json:"message"`
	FormType   Text `json:"formType"`
	EventDate  Text `json:"eventDate"`
	GuestCount Text `json:"guestCount"`
	EventType  Text `json:"eventType"`

	// Field names posted by the catering page.
	Name   Text `json:"name"`
	Date   Text `json:"date"`
	Guests Text `json:"guests"`
	Type   Text `json:"type"`
}

// Normalize folds the catering page's field names into the canonical ones
// and trims every value.
func (i Inquiry) Normalize() Inquiry {
	out := Inquiry{
		FirstName:  trim(i.FirstName),
		LastName:   trim(i.LastName),
		Email:      trim(i.Email),
		Phone:      trim(i.Phone),
		Subject:    trim(i.Subject),
		Message:    Text(strings.TrimSpace(strings.ReplaceAll(string(i.Message), "\r\n", "\n"))),
		FormType:   trim(i.FormType),
		EventDate:  firstOf(i.EventDate, i.Date),
		GuestCount: firstOf(i.GuestCount, i.Guests),
		EventType:  trim(i.EventType),
	}
	if out.FirstName == "" {
		out.FirstName = trim(i.Name)
	}
	if out.FormType == "" && strings.EqualFold(strings.TrimSpace(string(i.Type)), "catering") {
		out.FormType = FormTypeCatering
	}
	return out
}

func (i Inquiry) IsCatering() bool {
	return string(i.FormType) == FormTypeCatering
}

func trim(t Text) Text {
	return Text(strings.TrimSpace(string(t)))
}

func firstOf(values ...Text) Text {
	for _, v := range values {
		if trimmed := trim(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// Message is a rendered email ready for delivery.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}
