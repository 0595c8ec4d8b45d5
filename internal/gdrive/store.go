// Package gdrive uploads registration attachments into a Google Drive
// folder and makes them publicly readable.
package gdrive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/cvzbynek/DLF/internal/core"
	"github.com/cvzbynek/DLF/internal/logging"
)

// viewerURL is the shareable link template for an uploaded file.
const viewerURL = "https://drive.google.com/file/d/%s/view?usp=sharing"

// Store uploads attachments into one fixed Drive folder. It implements
// core.FileStore and is safe for concurrent use.
type Store struct {
	service    *drive.Service
	folderID   string
	scratchDir string
}

// New returns a Store writing into folderID. Uploads are staged under
// scratchDir before the Drive call; empty means the system temp dir.
func New(service *drive.Service, folderID, scratchDir string) *Store {
	if scratchDir == "" {
		scratchDir = os.TempDir()
	}
	return &Store{
		service:    service,
		folderID:   folderID,
		scratchDir: scratchDir,
	}
}

// Store stages the content to a uniquely named scratch file, creates
// the Drive object in the configured folder, grants anyone-reader
// access, and returns the object id with its viewer URL.
//
// Scratch names are fresh UUIDs, so two concurrent uploads of files
// with the same original name cannot collide, and the scratch file is
// removed on every exit path.
func (s *Store) Store(ctx context.Context, name string, content io.Reader, contentType string) (core.StoredFile, error) {
	path := filepath.Join(s.scratchDir, uuid.NewString()+filepath.Ext(name))
	tmp, err := os.Create(path)
	if err != nil {
		return core.StoredFile{}, fmt.Errorf("create scratch file: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(path)
	}()

	if _, err := io.Copy(tmp, content); err != nil {
		return core.StoredFile{}, fmt.Errorf("stage attachment: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return core.StoredFile{}, fmt.Errorf("rewind scratch file: %w", err)
	}

	meta := &drive.File{
		Name:    name,
		Parents: []string{s.folderID},
	}
	created, err := s.service.Files.Create(meta).
		Media(tmp, googleapi.ContentType(contentType)).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return core.StoredFile{}, fmt.Errorf("create drive file: %w", err)
	}

	perm := &drive.Permission{Type: "anyone", Role: "reader"}
	if _, err := s.service.Permissions.Create(created.Id, perm).Context(ctx).Do(); err != nil {
		// Without the grant the object is useless to the applicant;
		// drop it rather than leaving a private orphan behind.
		if delErr := s.Remove(ctx, created.Id); delErr != nil {
			logging.FromContext(ctx).Warn("orphaned private drive file", "file_id", created.Id, "error", delErr)
		}
		return core.StoredFile{}, fmt.Errorf("grant public read on %s: %w", created.Id, err)
	}

	return core.StoredFile{
		ID:  created.Id,
		URL: fmt.Sprintf(viewerURL, created.Id),
	}, nil
}

// Remove deletes an uploaded object, used for compensation after a
// failed submission.
func (s *Store) Remove(ctx context.Context, id string) error {
	if err := s.service.Files.Delete(id).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete drive file %s: %w", id, err)
	}
	return nil
}
