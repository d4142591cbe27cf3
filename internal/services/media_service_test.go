package services

import (
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"

	"motoroutes/internal/domain"
)

func okFile(name, mime, content string) FileInput {
	return FileInput{
		Name:     name,
		MimeType: mime,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func badFile(name string) FileInput {
	return FileInput{
		Name:     name,
		MimeType: "image/jpeg",
		Open: func() (io.ReadCloser, error) {
			return nil, errors.New("disk read failed")
		},
	}
}

func newMediaService(t *testing.T) (*MediaService, *memoryGateway) {
	t.Helper()
	gw := newMemoryGateway()
	svc := &MediaService{Gateway: gw}
	if err := svc.Init(); err != nil {
		t.Fatalf("init error: %v", err)
	}
	return svc, gw
}

func TestAddAttachmentsPreservesInputOrder(t *testing.T) {
	svc, gw := newMediaService(t)

	added, err := svc.AddAttachments(1, []FileInput{
		okFile("a.jpg", "image/jpeg", "aaa"),
		okFile("b.mp4", "video/mp4", "bbb"),
		okFile("c.gpx", "application/gpx+xml", "ccc"),
	})
	if err != nil {
		t.Fatalf("add error: %v", err)
	}
	if len(added) != 3 {
		t.Fatalf("expected 3 attachments, got %d", len(added))
	}

	list := svc.List(1)
	if list[0].Name != "a.jpg" || list[1].Name != "b.mp4" || list[2].Name != "c.gpx" {
		t.Fatalf("input order lost: %+v", list)
	}
	if list[0].Kind != domain.MediaImage || list[1].Kind != domain.MediaVideo || list[2].Kind != domain.MediaOther {
		t.Fatalf("mime classification wrong: %+v", list)
	}
	if list[0].Content != base64.StdEncoding.EncodeToString([]byte("aaa")) {
		t.Fatalf("payload not base64 materialized: %q", list[0].Content)
	}
	if gw.saves != 1 {
		t.Fatalf("one batch must persist exactly once, saves=%d", gw.saves)
	}
}

func TestAddAttachmentsBatchFailureRollsBackWholeBatch(t *testing.T) {
	svc, gw := newMediaService(t)

	_, err := svc.AddAttachments(1, []FileInput{
		okFile("a.jpg", "image/jpeg", "aaa"),
		badFile("b.jpg"),
		okFile("c.jpg", "image/jpeg", "ccc"),
	})
	if err == nil {
		t.Fatalf("failing read must surface an error")
	}
	if !strings.Contains(err.Error(), "b.jpg") {
		t.Fatalf("error should name the failing file: %v", err)
	}
	if got := svc.List(1); len(got) != 0 {
		t.Fatalf("rollback policy: nothing from the batch may commit, got %+v", got)
	}
	if gw.saves != 0 {
		t.Fatalf("failed batch must not persist, saves=%d", gw.saves)
	}
}

func TestRemoveAttachmentByPosition(t *testing.T) {
	svc, gw := newMediaService(t)

	if _, err := svc.AddAttachments(1, []FileInput{
		okFile("a.jpg", "image/jpeg", "aaa"),
		okFile("b.jpg", "image/jpeg", "bbb"),
	}); err != nil {
		t.Fatalf("add error: %v", err)
	}

	if err := svc.Remove(1, 0); err != nil {
		t.Fatalf("remove error: %v", err)
	}
	list := svc.List(1)
	if len(list) != 1 || list[0].Name != "b.jpg" {
		t.Fatalf("wrong element removed: %+v", list)
	}
	if gw.saves != 2 {
		t.Fatalf("remove must persist immediately, saves=%d", gw.saves)
	}

	if err := svc.Remove(1, 5); !domain.IsNotFound(err) {
		t.Fatalf("out-of-range index should be not found, got %v", err)
	}
	if err := svc.Remove(99, 0); !domain.IsNotFound(err) {
		t.Fatalf("unknown id should be not found, got %v", err)
	}
}

func TestMediaStateSurvivesReload(t *testing.T) {
	gw := newMemoryGateway()
	first := &MediaService{Gateway: gw}
	if err := first.Init(); err != nil {
		t.Fatalf("init error: %v", err)
	}
	if _, err := first.AddAttachments(3, []FileInput{okFile("a.jpg", "image/jpeg", "aaa")}); err != nil {
		t.Fatalf("add error: %v", err)
	}

	second := &MediaService{Gateway: gw}
	if err := second.Init(); err != nil {
		t.Fatalf("re-init error: %v", err)
	}
	if list := second.List(3); len(list) != 1 || list[0].Name != "a.jpg" {
		t.Fatalf("media snapshot not restored: %+v", list)
	}
}
