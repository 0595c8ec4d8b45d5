package core

import "strings"

// RowWidth is the number of columns in the registration sheet. The row
// is a positional contract: length and order must match the sheet's
// columns exactly.
const RowWidth = 18

// Refs holds the viewer URLs captured for each uploaded slot, empty
// string where no upload happened.
type Refs struct {
	Recommendation string
	GDPRConsent    string
	ControlledArea string
}

// Row formats the submission into the fixed-order sheet row. Selected
// sources are joined into a single cell; confirm_truth defaults to
// "ano" when the checkbox value did not arrive with the form.
func (s *Submission) Row(refs Refs) []string {
	confirm := s.ConfirmTruth
	if confirm == "" {
		confirm = "ano"
	}
	return []string{
		s.Email,
		s.FirstName,
		s.LastName,
		s.SchoolType,
		s.SchoolName,
		s.GraduationYear,
		s.ConsideringFJFI,
		strings.Join(s.Source, ", "),
		s.FirstChoiceExercise,
		s.SecondChoiceExercise,
		s.FirstExcursion,
		s.SecondExcursion,
		s.AlternativeExcursionOK,
		refs.Recommendation,
		refs.ControlledArea,
		s.ConsentGDPR,
		refs.GDPRConsent,
		confirm,
	}
}
