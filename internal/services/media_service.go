package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"sync"

	"motoroutes/internal/domain"
	"motoroutes/internal/repositories"
	"motoroutes/internal/utils"
)

// FileInput is one upload to materialize. Open is called once, on the
// ingestion goroutine.
type FileInput struct {
	Name     string
	MimeType string
	Open     func() (io.ReadCloser, error)
}

// MediaService keeps the per-itinerary ordered attachment lists. Ingestion is
// the one asynchronous path in the system: every file read runs on its own
// goroutine and the batch joins before shared state is touched.
//
// Concurrent AddAttachments calls for the same id are not mutually excluded
// across their read phases; the last batch to commit wins. That lost-update
// window is a known limitation, kept as-is.
type MediaService struct {
	Gateway repositories.Gateway

	mu    sync.RWMutex
	state domain.MediaState
}

func (s *MediaService) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := domain.MediaState{}
	err := s.Gateway.Load(repositories.KeyMedia, &state)
	if err != nil && !domain.IsNotFound(err) {
		return err
	}
	s.state = state
	return nil
}

// List returns a copy of the attachment list for id, in append order.
func (s *MediaService) List(id int) []domain.Attachment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Attachment, len(s.state[id]))
	copy(out, s.state[id])
	return out
}

// AddAttachments materializes every file into an embeddable base64 record,
// then appends the whole batch in input order with a single map mutation.
//
// Batch failure policy: full rollback. If any read in the batch fails,
// nothing from the batch is committed and the joined error is returned.
func (s *MediaService) AddAttachments(id int, files []FileInput) ([]domain.Attachment, error) {
	if len(files) == 0 {
		return nil, domain.ValidationError{Field: "files", Msg: "no files in batch"}
	}

	attachments := make([]domain.Attachment, len(files))
	readErrs := make([]error, len(files))

	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f FileInput) {
			defer wg.Done()
			att, err := materialize(f)
			if err != nil {
				readErrs[i] = fmt.Errorf("read %s: %w", f.Name, err)
				return
			}
			attachments[i] = att
		}(i, f)
	}
	wg.Wait()

	if err := errors.Join(readErrs...); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state[id] = append(s.state[id], attachments...)
	if err := s.Gateway.Save(repositories.KeyMedia, s.state); err != nil {
		return nil, err
	}
	utils.LogEvent("", "media", "add", fmt.Sprintf("id=%d files=%d", id, len(files)))
	return attachments, nil
}

// Remove deletes the attachment at index for id and persists immediately.
func (s *MediaService) Remove(id, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.state[id]
	if index < 0 || index >= len(list) {
		return domain.NotFoundError{Resource: "attachment"}
	}
	s.state[id] = append(list[:index], list[index+1:]...)
	if err := s.Gateway.Save(repositories.KeyMedia, s.state); err != nil {
		return err
	}
	utils.LogEvent("", "media", "remove", fmt.Sprintf("id=%d index=%d", id, index))
	return nil
}

func materialize(f FileInput) (domain.Attachment, error) {
	rc, err := f.Open()
	if err != nil {
		return domain.Attachment{}, err
	}
	defer rc.Close()

	payload, err := io.ReadAll(rc)
	if err != nil {
		return domain.Attachment{}, err
	}
	return domain.Attachment{
		Name:     f.Name,
		MimeType: f.MimeType,
		Kind:     domain.ClassifyMime(f.MimeType),
		Content:  base64.StdEncoding.EncodeToString(payload),
	}, nil
}
