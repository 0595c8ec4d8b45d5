package core

// validation.go holds the acceptance rules for a submission: the file
// extension check, the per-slot attachment policy, and the required
// text fields.
//
// The three attachment slots deliberately behave differently. The
// recommendation hard-rejects when missing or invalid, the GDPR consent
// does so only for underage applicants, and the controlled-area consent
// is silently skipped when unusable. The asymmetry is policy data, not
// control flow, so each slot can be tested in isolation.

import (
	"path/filepath"
	"strings"
)

// allowedExtensions lists the accepted attachment suffixes, lower-cased.
var allowedExtensions = map[string]bool{
	"pdf": true,
}

// Allowed reports whether the filename carries an accepted extension.
// Only the suffix after the last dot is examined; file content is never
// sniffed. "a.PDF" passes, "a.pdf.txt" and "noext" do not.
func Allowed(filename string) bool {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(filename[i+1:])]
}

// attachmentPolicy describes how one file slot participates in a
// submission. A slot is only considered when its When predicate holds;
// a considered slot with a missing or invalid file either rejects the
// whole submission or is skipped, per Reject.
type attachmentPolicy struct {
	Slot    string
	When    func(*Submission) bool
	Reject  bool
	Message string
}

// attachmentPolicies is evaluated in order; uploads committed by earlier
// slots stand even when a later slot rejects.
var attachmentPolicies = []attachmentPolicy{
	{
		Slot:    SlotRecommendation,
		When:    func(*Submission) bool { return true },
		Reject:  true,
		Message: "Chybí platný soubor doporučení učitele (PDF).",
	},
	{
		Slot:    SlotGDPRConsent,
		When:    func(s *Submission) bool { return s.ConsentGDPR == MinorConsentSentinel },
		Reject:  true,
		Message: "Chybí GDPR souhlas (PDF).",
	},
	{
		Slot:   SlotControlledArea,
		When:   func(*Submission) bool { return true },
		Reject: false,
	},
}

// requiredFields are the text inputs a submission cannot omit, in the
// order they appear on the form.
var requiredFields = []struct {
	name  string
	value func(*Submission) string
}{
	{"email", func(s *Submission) string { return s.Email }},
	{"first_name", func(s *Submission) string { return s.FirstName }},
	{"last_name", func(s *Submission) string { return s.LastName }},
	{"first_choice_exercise", func(s *Submission) string { return s.FirstChoiceExercise }},
	{"first_excursion", func(s *Submission) string { return s.FirstExcursion }},
	{"alternative_excursion_ok", func(s *Submission) string { return s.AlternativeExcursionOK }},
}

// validateFields checks the required text inputs and returns a
// rejection naming the first missing one.
func (s *Submission) validateFields() error {
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(s)) == "" {
			return reject(f.name, "Chybí povinné pole: "+f.name+".")
		}
	}
	return nil
}

// safeName reduces an uploaded filename to a plain ASCII form before it
// is sent to the remote store, keeping the extension.
func safeName(name string) string {
	name = filepath.Base(name)
	ext := strings.ToLower(filepath.Ext(name))
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, base)
	if len(base) > 64 {
		base = base[:64]
	}
	if base == "" {
		base = "file"
	}
	return base + ext
}
