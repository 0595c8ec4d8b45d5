package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cvzbynek/DLF/internal/logging"
)

// pdfContentType is sent with every stored attachment; only files that
// pass the extension check reach the store.
const pdfContentType = "application/pdf"

// StoredFile identifies an object persisted to the remote store.
type StoredFile struct {
	ID  string
	URL string
}

// FileStore persists one attachment to the remote store and returns a
// shareable reference. Remove is the compensating delete used when a
// submission fails after uploads have already committed.
type FileStore interface {
	Store(ctx context.Context, name string, content io.Reader, contentType string) (StoredFile, error)
	Remove(ctx context.Context, id string) error
}

// RowAppender appends one formatted row to the registration sheet.
type RowAppender interface {
	Append(ctx context.Context, row []string) error
}

// Pipeline runs one submission end to end: required-field validation,
// attachment validation and upload per slot policy, row formatting, and
// the sheet append.
type Pipeline struct {
	store    FileStore
	appender RowAppender
}

// NewPipeline wires the pipeline to its remote collaborators. The
// clients are long-lived and shared across requests; the pipeline keeps
// no per-submission state.
func NewPipeline(store FileStore, appender RowAppender) *Pipeline {
	return &Pipeline{store: store, appender: appender}
}

// Process handles one submission. A *RejectionError return means the
// applicant gets the message back with a client-error status; any other
// error is a remote failure.
//
// Side effects accumulate as the pipeline advances. When it fails after
// at least one upload, the objects already stored are deleted on a
// best-effort basis so a rejected submission does not leave orphaned
// public files; compensation failures are logged, never surfaced.
func (p *Pipeline) Process(ctx context.Context, sub *Submission) error {
	logger := logging.FromContext(ctx)

	if err := sub.validateFields(); err != nil {
		return err
	}

	var stored []StoredFile
	fail := func(err error) error {
		p.compensate(ctx, logger, stored)
		return err
	}

	refs := make(map[string]string, len(attachmentPolicies))
	for _, pol := range attachmentPolicies {
		if !pol.When(sub) {
			continue
		}
		att := sub.Attachment(pol.Slot)
		if att == nil || !Allowed(att.Filename) {
			if pol.Reject {
				return fail(reject(pol.Slot, pol.Message))
			}
			continue
		}
		file, err := p.store.Store(ctx, safeName(att.Filename), att.Content, pdfContentType)
		if err != nil {
			return fail(fmt.Errorf("store %s: %w", pol.Slot, err))
		}
		stored = append(stored, file)
		refs[pol.Slot] = file.URL
	}

	row := sub.Row(Refs{
		Recommendation: refs[SlotRecommendation],
		GDPRConsent:    refs[SlotGDPRConsent],
		ControlledArea: refs[SlotControlledArea],
	})
	if err := p.appender.Append(ctx, row); err != nil {
		return fail(fmt.Errorf("append row: %w", err))
	}

	logger.Info("submission recorded", "attachments", len(stored))
	return nil
}

// compensate deletes objects uploaded before a failure. Best effort:
// each miss is logged and the next delete is still attempted.
func (p *Pipeline) compensate(ctx context.Context, logger *slog.Logger, stored []StoredFile) {
	for _, f := range stored {
		if err := p.store.Remove(ctx, f.ID); err != nil {
			logger.Warn("compensating delete failed", "file_id", f.ID, "error", err)
		}
	}
}
