package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/journalup/journal-up/internal/apperr"
	"github.com/journalup/journal-up/internal/model"
	"github.com/journalup/journal-up/internal/queue"
	"github.com/journalup/journal-up/internal/repository"
)

// JournalService guards journal and entry access. Every entry operation
// resolves the journal first and checks ownership, so one user can never
// read or write another user's journal through a guessed id.
type JournalService struct {
	Journals *repository.JournalRepo

	// Publish is called after a successful entry insert. Failures are
	// logged and ignored; the entry is already committed. Nil disables
	// publishing entirely.
	Publish func(ctx context.Context, event queue.EntryCreatedEvent) error
}

// CreateJournal starts a new journal for the user.
func (s *JournalService) CreateJournal(ctx context.Context, userID, title string) (model.Journal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Journal{}, apperr.Validation("journal title is required")
	}
	return s.Journals.Create(ctx, userID, title)
}

// GetJournals lists the user's journals, newest first.
func (s *JournalService) GetJournals(ctx context.Context, userID string) ([]model.Journal, error) {
	return s.Journals.FindByUserID(ctx, userID)
}

// CreateEntry appends an entry after verifying the journal belongs to the
// user. The created event is published best effort.
func (s *JournalService) CreateEntry(ctx context.Context, userID, journalID, content string) (model.Entry, error) {
	if strings.TrimSpace(content) == "" {
		return model.Entry{}, apperr.Validation("entry content is required")
	}
	journal, err := s.authorize(ctx, userID, journalID)
	if err != nil {
		return model.Entry{}, err
	}

	entry, err := s.Journals.CreateEntry(ctx, journal.ID, content)
	if err != nil {
		return model.Entry{}, err
	}

	if s.Publish != nil {
		event := queue.EntryCreatedEvent{
			EntryID:   entry.ID,
			JournalID: entry.JournalID,
			UserID:    userID,
			Content:   entry.Content,
			CreatedAt: entry.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := s.Publish(ctx, event); err != nil {
			log.Printf("journal: publish entry.created failed: %v", err)
		}
	}
	return entry, nil
}

// UpdateEntry rewrites an entry's content, owner only. No event is
// published; analysis tracks what was written, not every revision.
func (s *JournalService) UpdateEntry(ctx context.Context, userID, journalID, entryID, content string) (model.Entry, error) {
	if strings.TrimSpace(content) == "" {
		return model.Entry{}, apperr.Validation("entry content is required")
	}
	journal, err := s.authorize(ctx, userID, journalID)
	if err != nil {
		return model.Entry{}, err
	}
	return s.Journals.UpdateEntry(ctx, journal.ID, entryID, content)
}

// GetEntries lists a journal's entries, oldest first, owner only.
func (s *JournalService) GetEntries(ctx context.Context, userID, journalID string) ([]model.Entry, error) {
	journal, err := s.authorize(ctx, userID, journalID)
	if err != nil {
		return nil, err
	}
	return s.Journals.GetEntries(ctx, journal.ID)
}

// authorize loads the journal and confirms ownership. A journal that
// exists but belongs to someone else is an Authorization error, not
// NotFound, matching the API's error contract.
func (s *JournalService) authorize(ctx context.Context, userID, journalID string) (model.Journal, error) {
	journal, err := s.Journals.FindByID(ctx, journalID)
	if err != nil {
		return model.Journal{}, err
	}
	if journal.UserID != userID {
		return model.Journal{}, apperr.Authorization("you do not have access to this journal")
	}
	return journal, nil
}
