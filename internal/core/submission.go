// Package core implements the registration domain: the submitted form,
// attachment validation policy, sheet-row formatting, and the pipeline
// that takes one submission from validation to the appended row.
// This package has no HTTP or Google API dependencies and can be
// exercised with fakes.
package core

import "io"

// Form slot names of the three file inputs on the registration form.
const (
	SlotRecommendation = "teacher_recommendation"
	SlotGDPRConsent    = "gdpr_consent"
	SlotControlledArea = "controlled_area_consent"
)

// MinorConsentSentinel is the consent_gdpr value marking an underage
// applicant. When present, the signed GDPR consent file is mandatory.
const MinorConsentSentinel = "neplnoletý PDF"

// Attachment is one uploaded file from a named form slot.
type Attachment struct {
	Filename string
	Content  io.Reader
}

// Submission holds one posted registration form. It lives for a single
// request and is never persisted locally; the appended sheet row is the
// system of record.
type Submission struct {
	Email                  string
	FirstName              string
	LastName               string
	SchoolType             string
	SchoolName             string
	GraduationYear         string
	ConsideringFJFI        string
	Source                 []string
	FirstChoiceExercise    string
	SecondChoiceExercise   string
	FirstExcursion         string
	SecondExcursion        string
	AlternativeExcursionOK string
	ConsentGDPR            string
	ConfirmTruth           string

	Attachments map[string]*Attachment
}

// Attachment returns the file posted in the named slot, or nil when the
// slot was left empty.
func (s *Submission) Attachment(slot string) *Attachment {
	if s.Attachments == nil {
		return nil
	}
	return s.Attachments[slot]
}
