package service

import (
	"context"
	"errors"
	"testing"

	"service_directory/internal/directory"
	"service_directory/internal/repository"
)

func TestSessionService_Lifecycle(t *testing.T) {
	sessions := NewSessionService(newTestDirectory(t), nil, nil)

	vs, err := sessions.Open("interior-painting", "")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if vs.ID == "" || sessions.Count() != 1 {
		t.Fatalf("session not tracked: id=%q count=%d", vs.ID, sessions.Count())
	}
	if v := vs.View(); v.Count != 5 || v.View != "grid" {
		t.Fatalf("initial view: count=%d view=%q", v.Count, v.View)
	}

	v, err := vs.Apply(directory.Event{Type: directory.EventToggleFilter, Value: "Featured"})
	if err != nil || v.Count != 2 {
		t.Fatalf("toggle: count=%d err=%v", v.Count, err)
	}

	v, err = vs.Apply(directory.Event{Type: EventView, Value: "list"})
	if err != nil || v.View != "list" || v.Count != 2 {
		t.Fatalf("view switch: %+v, %v", v.View, err)
	}

	v, err = vs.Apply(directory.Event{Type: EventView, Value: "cards"})
	if !errors.Is(err, ErrInvalidView) || v.View != "list" {
		t.Fatalf("bad view switch: view=%q err=%v", v.View, err)
	}

	v, err = vs.Apply(directory.Event{Type: directory.EventSelect, Value: "3"})
	if err != nil || v.Selected == nil || v.Selected.ID != "3" {
		t.Fatalf("select: %+v, %v", v.Selected, err)
	}

	sessions.Close(vs)
	sessions.Close(vs)
	if sessions.Count() != 0 {
		t.Fatalf("count after close: %d", sessions.Count())
	}
}

func TestSessionService_OpenErrors(t *testing.T) {
	sessions := NewSessionService(newTestDirectory(t), nil, nil)
	if _, err := sessions.Open("", "table"); !errors.Is(err, ErrInvalidView) {
		t.Errorf("bad view: got %v", err)
	}

	down := NewDirectoryService(context.Background(),
		repository.NewRepository(&catalogSourceStub{err: directory.ErrCatalogUnavailable}, nil), nil, nil)
	if _, err := NewSessionService(down, nil, nil).Open("", ""); !errors.Is(err, directory.ErrCatalogUnavailable) {
		t.Errorf("unavailable: got %v", err)
	}
}
