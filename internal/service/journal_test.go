package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/journalup/journal-up/internal/apperr"
	"github.com/journalup/journal-up/internal/queue"
	"github.com/journalup/journal-up/internal/repository"
)

var (
	journalColumns = []string{"id", "user_id", "title", "created_at", "updated_at"}
	entryColumns   = []string{"id", "journal_id", "content", "created_at", "updated_at"}
)

func newJournalService(t *testing.T) (*JournalService, sqlmock.Sqlmock, *[]queue.EntryCreatedEvent) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	published := &[]queue.EntryCreatedEvent{}
	svc := &JournalService{
		Journals: repository.NewJournalRepo(db),
		Publish: func(ctx context.Context, event queue.EntryCreatedEvent) error {
			*published = append(*published, event)
			return nil
		},
	}
	return svc, mock, published
}

func TestCreateJournalRequiresTitle(t *testing.T) {
	svc, _, _ := newJournalService(t)

	_, err := svc.CreateJournal(context.Background(), "u1", "   ")
	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, 400, e.Status)
}

func TestCreateEntryPublishesEvent(t *testing.T) {
	svc, mock, published := newJournalService(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, user_id, title`).
		WithArgs("j1").
		WillReturnRows(sqlmock.NewRows(journalColumns).AddRow("j1", "u1", "My journal", now, now))
	mock.ExpectQuery(`INSERT INTO entries`).
		WithArgs("j1", "today went well").
		WillReturnRows(sqlmock.NewRows(entryColumns).AddRow("e1", "j1", "today went well", now, now))

	entry, err := svc.CreateEntry(context.Background(), "u1", "j1", "today went well")
	require.NoError(t, err)
	assert.Equal(t, "e1", entry.ID)

	require.Len(t, *published, 1)
	event := (*published)[0]
	assert.Equal(t, "e1", event.EntryID)
	assert.Equal(t, "j1", event.JournalID)
	assert.Equal(t, "u1", event.UserID)
	assert.Equal(t, "today went well", event.Content)
}

func TestCreateEntryPublishFailureDoesNotFailRequest(t *testing.T) {
	svc, mock, _ := newJournalService(t)
	svc.Publish = func(ctx context.Context, event queue.EntryCreatedEvent) error {
		return assert.AnError
	}
	now := time.Now()

	mock.ExpectQuery(`SELECT id, user_id, title`).
		WithArgs("j1").
		WillReturnRows(sqlmock.NewRows(journalColumns).AddRow("j1", "u1", "My journal", now, now))
	mock.ExpectQuery(`INSERT INTO entries`).
		WithArgs("j1", "text").
		WillReturnRows(sqlmock.NewRows(entryColumns).AddRow("e1", "j1", "text", now, now))

	_, err := svc.CreateEntry(context.Background(), "u1", "j1", "text")
	assert.NoError(t, err)
}

func TestCreateEntryForeignJournalIsForbidden(t *testing.T) {
	svc, mock, published := newJournalService(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, user_id, title`).
		WithArgs("j1").
		WillReturnRows(sqlmock.NewRows(journalColumns).AddRow("j1", "someone-else", "Their journal", now, now))

	_, err := svc.CreateEntry(context.Background(), "u1", "j1", "sneaky")
	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, 403, e.Status)
	assert.Empty(t, *published)
}

func TestCreateEntryUnknownJournalIsNotFound(t *testing.T) {
	svc, mock, _ := newJournalService(t)

	mock.ExpectQuery(`SELECT id, user_id, title`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(journalColumns))

	_, err := svc.CreateEntry(context.Background(), "u1", "missing", "text")
	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, 404, e.Status)
}

func TestUpdateEntryScopedToJournal(t *testing.T) {
	svc, mock, _ := newJournalService(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, user_id, title`).
		WithArgs("j1").
		WillReturnRows(sqlmock.NewRows(journalColumns).AddRow("j1", "u1", "My journal", now, now))
	mock.ExpectQuery(`UPDATE entries SET content`).
		WithArgs("j1", "e-other", "revised").
		WillReturnRows(sqlmock.NewRows(entryColumns))

	// entry id from a different journal matches zero rows
	_, err := svc.UpdateEntry(context.Background(), "u1", "j1", "e-other", "revised")
	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, 404, e.Status)
}

func TestGetEntriesChecksOwnership(t *testing.T) {
	svc, mock, _ := newJournalService(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, user_id, title`).
		WithArgs("j1").
		WillReturnRows(sqlmock.NewRows(journalColumns).AddRow("j1", "other", "Not yours", now, now))

	_, err := svc.GetEntries(context.Background(), "u1", "j1")
	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, 403, e.Status)
}
