package usecase

import (
	"errors"
	"sort"
	"strings"
	"testing"

	emaildomain "mailagent-backend/internal/email/domain"
	emaildto "mailagent-backend/internal/email/dto"
	"mailagent-backend/internal/email/repository"
	"mailagent-backend/internal/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeEmailRepo is an in-memory EmailRepository mirroring the GORM
// implementation's filter, sort and pagination semantics.
type fakeEmailRepo struct {
	emails map[string]*emaildomain.Email
	drafts map[string]*emaildomain.EmailDraft
}

func newFakeEmailRepo() *fakeEmailRepo {
	return &fakeEmailRepo{
		emails: make(map[string]*emaildomain.Email),
		drafts: make(map[string]*emaildomain.EmailDraft),
	}
}

func (r *fakeEmailRepo) Create(email *emaildomain.Email) error {
	if email.ID == "" {
		email.ID = uuid.New().String()
	}
	copied := *email
	r.emails[email.ID] = &copied
	return nil
}

func (r *fakeEmailRepo) FindByID(id, userID string) (*emaildomain.Email, error) {
	e, ok := r.emails[id]
	if !ok || (userID != "" && e.UserID != userID) {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEmailRepo) List(opts repository.ListOptions) ([]*emaildomain.Email, error) {
	var out []*emaildomain.Email
	search := strings.ToLower(opts.Search)
	for _, e := range r.emails {
		if opts.UserID != "" && e.UserID != opts.UserID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Subject), search) &&
			!strings.Contains(strings.ToLower(e.Sender), search) &&
			!strings.Contains(strings.ToLower(e.Body), search) {
			continue
		}
		copied := *e
		out = append(out, &copied)
	}

	switch opts.SortBy {
	case repository.SortOldest:
		sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	case repository.SortSender:
		sort.Slice(out, func(i, j int) bool { return out[i].Sender < out[j].Sender })
	default:
		sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	}

	if opts.Offset > len(out) {
		return nil, nil
	}
	out = out[opts.Offset:]
	if opts.Limit > 0 && opts.Limit < len(out) {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (r *fakeEmailRepo) CountByUser(userID string) (int64, error) {
	var n int64
	for _, e := range r.emails {
		if e.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeEmailRepo) Update(email *emaildomain.Email) error {
	copied := *email
	r.emails[email.ID] = &copied
	return nil
}

func (r *fakeEmailRepo) Delete(id string) error {
	delete(r.emails, id)
	return nil
}

func (r *fakeEmailRepo) CreateDraft(draft *emaildomain.EmailDraft) error {
	if draft.ID == "" {
		draft.ID = uuid.New().String()
	}
	copied := *draft
	r.drafts[draft.ID] = &copied
	return nil
}

func (r *fakeEmailRepo) FindDraftByID(id string) (*emaildomain.EmailDraft, error) {
	d, ok := r.drafts[id]
	if !ok {
		return nil, nil
	}
	copied := *d
	return &copied, nil
}

func (r *fakeEmailRepo) ListDraftsByUser(userID string) ([]*emaildomain.EmailDraft, error) {
	var out []*emaildomain.EmailDraft
	for _, d := range r.drafts {
		if d.UserID == userID {
			copied := *d
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeEmailRepo) UpdateDraft(draft *emaildomain.EmailDraft) error {
	copied := *draft
	r.drafts[draft.ID] = &copied
	return nil
}

func (r *fakeEmailRepo) DeleteDraft(id string) error {
	delete(r.drafts, id)
	return nil
}

func newTestEmails(t *testing.T) (EmailUsecase, *fakeEmailRepo) {
	t.Helper()
	repo := newFakeEmailRepo()
	return NewEmailUsecase(repo, zap.NewNop()), repo
}

func seedEmail(t *testing.T, uc EmailUsecase, userID, subject, sender, category string) *emaildomain.Email {
	t.Helper()
	email := &emaildomain.Email{
		UserID:   userID,
		Sender:   sender,
		Subject:  subject,
		Body:     "body of " + subject,
		Category: category,
	}
	require.NoError(t, uc.CreateEmail(email))
	return email
}

func TestListEmailsCategoryPostFilter(t *testing.T) {
	uc, _ := newTestEmails(t)
	seedEmail(t, uc, "u1", "one", "a@x.com", "Important")
	seedEmail(t, uc, "u1", "two", "b@x.com", "Spam")
	seedEmail(t, uc, "u1", "three", "c@x.com", "Important")

	got, err := uc.ListEmails("u1", ListQuery{Category: "Important"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// "" and "all" disable the filter.
	for _, cat := range []string{"", "all"} {
		got, err = uc.ListEmails("u1", ListQuery{Category: cat})
		require.NoError(t, err)
		assert.Len(t, got, 3, "category %q", cat)
	}

	// Exact match only, no case folding.
	got, err = uc.ListEmails("u1", ListQuery{Category: "important"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListEmailsScopedToUser(t *testing.T) {
	uc, _ := newTestEmails(t)
	seedEmail(t, uc, "u1", "mine", "a@x.com", "")
	seedEmail(t, uc, "u2", "theirs", "b@x.com", "")

	got, err := uc.ListEmails("u1", ListQuery{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "mine", got[0].Subject)
}

func TestListEmailsSearch(t *testing.T) {
	uc, _ := newTestEmails(t)
	seedEmail(t, uc, "u1", "Quarterly report", "boss@x.com", "")
	seedEmail(t, uc, "u1", "Lunch?", "mike@x.com", "")

	got, err := uc.ListEmails("u1", ListQuery{Search: "quarterly"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Quarterly report", got[0].Subject)

	got, err = uc.ListEmails("u1", ListQuery{Search: "mike"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestGetEmailOwnership(t *testing.T) {
	uc, _ := newTestEmails(t)
	email := seedEmail(t, uc, "u1", "mine", "a@x.com", "")

	got, err := uc.GetEmailByID("u1", email.ID)
	require.NoError(t, err)
	assert.Equal(t, email.ID, got.ID)

	_, err = uc.GetEmailByID("u2", email.ID)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestEmailFlagUpdates(t *testing.T) {
	uc, repo := newTestEmails(t)
	email := seedEmail(t, uc, "u1", "flags", "a@x.com", "")

	require.NoError(t, uc.MarkRead("u1", email.ID, true))
	assert.True(t, repo.emails[email.ID].IsRead)

	require.NoError(t, uc.MarkRead("u1", email.ID, false))
	assert.False(t, repo.emails[email.ID].IsRead)

	require.NoError(t, uc.ToggleStar("u1", email.ID))
	assert.True(t, repo.emails[email.ID].IsStarred)
	require.NoError(t, uc.ToggleStar("u1", email.ID))
	assert.False(t, repo.emails[email.ID].IsStarred)

	require.NoError(t, uc.Archive("u1", email.ID))
	assert.True(t, repo.emails[email.ID].IsArchived)

	require.NoError(t, uc.UpdateCategory("u1", email.ID, "Spam"))
	assert.Equal(t, "Spam", repo.emails[email.ID].Category)
}

func TestDeleteEmailChecksOwnership(t *testing.T) {
	uc, repo := newTestEmails(t)
	email := seedEmail(t, uc, "u1", "gone", "a@x.com", "")

	err := uc.DeleteEmail("u2", email.ID)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
	assert.Contains(t, repo.emails, email.ID)

	require.NoError(t, uc.DeleteEmail("u1", email.ID))
	assert.NotContains(t, repo.emails, email.ID)
}

func TestLoadMockInboxSeedsOnce(t *testing.T) {
	uc, repo := newTestEmails(t)

	first, err := uc.LoadMockInbox("u1")
	require.NoError(t, err)
	assert.Len(t, first, len(mockInbox))

	// Reloading does not duplicate.
	second, err := uc.LoadMockInbox("u1")
	require.NoError(t, err)
	assert.Len(t, second, len(mockInbox))

	count, err := repo.CountByUser("u1")
	require.NoError(t, err)
	assert.Equal(t, int64(len(mockInbox)), count)

	for _, e := range second {
		assert.Equal(t, "u1", e.UserID)
	}
}

func TestLoadMockInboxSkipsWhenInboxNonEmpty(t *testing.T) {
	uc, _ := newTestEmails(t)
	seedEmail(t, uc, "u1", "pre-existing", "a@x.com", "")

	got, err := uc.LoadMockInbox("u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "pre-existing", got[0].Subject)
}

func TestDraftLifecycle(t *testing.T) {
	uc, _ := newTestEmails(t)

	draft, err := uc.CreateDraft("u1", &emaildto.CreateDraftRequest{
		To:      "boss@x.com",
		Subject: "Status",
		Body:    "All green.",
	})
	require.NoError(t, err)
	require.NotEmpty(t, draft.ID)

	newBody := "Mostly green."
	updated, err := uc.UpdateDraft("u1", draft.ID, &emaildto.UpdateDraftRequest{Body: &newBody})
	require.NoError(t, err)
	assert.Equal(t, "Mostly green.", updated.Body)
	assert.Equal(t, "Status", updated.Subject)

	drafts, err := uc.GetDrafts("u1")
	require.NoError(t, err)
	assert.Len(t, drafts, 1)

	require.NoError(t, uc.DeleteDraft("u1", draft.ID))
	drafts, err = uc.GetDrafts("u1")
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestDraftOwnership(t *testing.T) {
	uc, _ := newTestEmails(t)

	draft, err := uc.CreateDraft("u1", &emaildto.CreateDraftRequest{Subject: "private"})
	require.NoError(t, err)

	body := "hijacked"
	_, err = uc.UpdateDraft("u2", draft.ID, &emaildto.UpdateDraftRequest{Body: &body})
	assert.True(t, errors.Is(err, shared.ErrNotFound))

	err = uc.DeleteDraft("u2", draft.ID)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}
