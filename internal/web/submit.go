package web

import (
	"net/http"

	"github.com/cvzbynek/DLF/internal/core"
	"github.com/cvzbynek/DLF/internal/logging"
)

// handleSubmit processes one registration form post. Rejections come
// back as 400 with a plain-text Czech message; remote failures as a
// generic 500; success redirects to the confirmation page.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		http.Error(w, "Formulář je příliš velký nebo poškozený.", http.StatusBadRequest)
		return
	}

	sub := submissionFromRequest(r)

	err := s.pipeline.Process(r.Context(), sub)
	switch {
	case err == nil:
		http.Redirect(w, r, "/success", http.StatusSeeOther)
	default:
		if rej := core.AsRejection(err); rej != nil {
			logger.Info("submission rejected", "field", rej.Field)
			http.Error(w, rej.Message, http.StatusBadRequest)
			return
		}
		logger.Error("submission failed", "error", err)
		http.Error(w, "Registraci se nepodařilo uložit, zkuste to prosím později.", http.StatusInternalServerError)
	}
}

// submissionFromRequest maps the parsed multipart form onto a core
// Submission. Opened file parts stay valid until the request ends; the
// server removes the multipart temp files after the handler returns.
func submissionFromRequest(r *http.Request) *core.Submission {
	sub := &core.Submission{
		Email:                  r.FormValue("email"),
		FirstName:              r.FormValue("first_name"),
		LastName:               r.FormValue("last_name"),
		SchoolType:             r.FormValue("school_type"),
		SchoolName:             r.FormValue("school_name"),
		GraduationYear:         r.FormValue("graduation_year"),
		ConsideringFJFI:        r.FormValue("considering_fjfi"),
		Source:                 r.Form["source"],
		FirstChoiceExercise:    r.FormValue("first_choice_exercise"),
		SecondChoiceExercise:   r.FormValue("second_choice_exercise"),
		FirstExcursion:         r.FormValue("first_excursion"),
		SecondExcursion:        r.FormValue("second_excursion"),
		AlternativeExcursionOK: r.FormValue("alternative_excursion_ok"),
		ConsentGDPR:            r.FormValue("consent_gdpr"),
		ConfirmTruth:           r.FormValue("confirm_truth"),
		Attachments:            make(map[string]*core.Attachment),
	}

	for _, slot := range []string{core.SlotRecommendation, core.SlotGDPRConsent, core.SlotControlledArea} {
		// A file input left blank surfaces as ErrMissingFile: the
		// browser's empty part carries no filename and is parsed as a
		// plain value.
		file, header, err := r.FormFile(slot)
		if err != nil {
			continue
		}
		sub.Attachments[slot] = &core.Attachment{
			Filename: header.Filename,
			Content:  file,
		}
	}

	return sub
}
