package notice

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memRepo keeps notices in memory, mirroring the Mongo update semantics
// the service relies on.
type memRepo struct {
	notices map[primitive.ObjectID]*Notice
}

func newMemRepo() *memRepo {
	return &memRepo{notices: make(map[primitive.ObjectID]*Notice)}
}

func (r *memRepo) Create(_ context.Context, n *Notice) error {
	clone := *n
	r.notices[n.ID] = &clone
	return nil
}

func (r *memRepo) FindByID(_ context.Context, id primitive.ObjectID) (*Notice, error) {
	n, ok := r.notices[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *n
	return &clone, nil
}

func (r *memRepo) FindAllSorted(_ context.Context) ([]Notice, error) {
	notices := make([]Notice, 0, len(r.notices))
	for _, n := range r.notices {
		notices = append(notices, *n)
	}
	sort.Slice(notices, func(i, j int) bool { return notices[i].Date.After(notices[j].Date) })
	return notices, nil
}

func (r *memRepo) Update(_ context.Context, n *Notice) error {
	if _, ok := r.notices[n.ID]; !ok {
		return ErrNotFound
	}
	clone := *n
	r.notices[n.ID] = &clone
	return nil
}

func (r *memRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.notices[id]; !ok {
		return ErrNotFound
	}
	delete(r.notices, id)
	return nil
}

func (r *memRepo) AddReceipt(_ context.Context, noticeID, userID primitive.ObjectID, at time.Time) error {
	n, ok := r.notices[noticeID]
	if !ok || n.IsReadBy(userID) {
		return nil
	}
	n.ReadBy = append(n.ReadBy, ReadReceipt{User: userID, ReadAt: at})
	return nil
}

func (r *memRepo) RemoveReceipt(_ context.Context, noticeID, userID primitive.ObjectID) error {
	n, ok := r.notices[noticeID]
	if !ok {
		return nil
	}
	kept := n.ReadBy[:0]
	for _, receipt := range n.ReadBy {
		if receipt.User != userID {
			kept = append(kept, receipt)
		}
	}
	n.ReadBy = kept
	return nil
}

func (r *memRepo) AddReceiptToAll(_ context.Context, userID primitive.ObjectID, at time.Time) (int64, error) {
	var touched int64
	for _, n := range r.notices {
		if !n.IsReadBy(userID) {
			n.ReadBy = append(n.ReadBy, ReadReceipt{User: userID, ReadAt: at})
			touched++
		}
	}
	return touched, nil
}

func seedNotice(t *testing.T, svc *NoticeService, title string, date time.Time) *Notice {
	t.Helper()
	n, err := svc.Create(context.Background(), CreateRequest{
		Title:    title,
		Date:     date,
		Category: CategoryEvents,
	}, primitive.NewObjectID())
	require.NoError(t, err)
	return n
}

func TestCreateDefaultsDescription(t *testing.T) {
	svc := NewNoticeService(newMemRepo())

	n, err := svc.Create(context.Background(), CreateRequest{
		Title:    "Sports day",
		Date:     time.Now(),
		Category: CategorySports,
	}, primitive.NewObjectID())
	require.NoError(t, err)

	assert.Equal(t, defaultDescription, n.Description)
	assert.NotNil(t, n.ReadBy)
	assert.Empty(t, n.ReadBy)
}

func TestMarkReadIdempotent(t *testing.T) {
	repo := newMemRepo()
	svc := NewNoticeService(repo)
	ctx := context.Background()

	n := seedNotice(t, svc, "Holiday", time.Now())
	userID := primitive.NewObjectID()

	require.NoError(t, svc.MarkRead(ctx, n.ID, userID))
	require.NoError(t, svc.MarkRead(ctx, n.ID, userID))

	stored := repo.notices[n.ID]
	require.Len(t, stored.ReadBy, 1)
	assert.Equal(t, userID, stored.ReadBy[0].User)
}

func TestMarkReadMissingNotice(t *testing.T) {
	svc := NewNoticeService(newMemRepo())

	err := svc.MarkRead(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkUnreadReverses(t *testing.T) {
	repo := newMemRepo()
	svc := NewNoticeService(repo)
	ctx := context.Background()

	n := seedNotice(t, svc, "Meeting", time.Now())
	userID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()

	require.NoError(t, svc.MarkRead(ctx, n.ID, userID))
	require.NoError(t, svc.MarkRead(ctx, n.ID, otherID))
	require.NoError(t, svc.MarkUnread(ctx, n.ID, userID))

	stored := repo.notices[n.ID]
	assert.False(t, stored.IsReadBy(userID))
	assert.True(t, stored.IsReadBy(otherID))

	views, err := svc.List(ctx, userID, false, false)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.False(t, views[0].IsRead)
}

func TestMarkAllRead(t *testing.T) {
	repo := newMemRepo()
	svc := NewNoticeService(repo)
	ctx := context.Background()

	first := seedNotice(t, svc, "One", time.Now())
	seedNotice(t, svc, "Two", time.Now().Add(time.Hour))
	seedNotice(t, svc, "Three", time.Now().Add(2*time.Hour))

	userID := primitive.NewObjectID()
	require.NoError(t, svc.MarkRead(ctx, first.ID, userID))

	// Only the two unread notices pick up a receipt.
	count, err := svc.MarkAllRead(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = svc.MarkAllRead(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	views, err := svc.List(ctx, userID, false, false)
	require.NoError(t, err)
	for _, v := range views {
		assert.True(t, v.IsRead)
	}
}

func TestListProjections(t *testing.T) {
	svc := NewNoticeService(newMemRepo())
	ctx := context.Background()
	base := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	titles := []string{"a", "b", "c", "d", "e"}
	for i, title := range titles {
		seedNotice(t, svc, title, base.Add(time.Duration(i)*24*time.Hour))
	}
	userID := primitive.NewObjectID()

	// Newest first across the full listing.
	all, err := svc.List(ctx, userID, false, false)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "e", all[0].Title)
	assert.Equal(t, "a", all[4].Title)

	latest, err := svc.List(ctx, userID, true, false)
	require.NoError(t, err)
	require.Len(t, latest, 3)
	assert.Equal(t, "e", latest[0].Title)
	assert.Equal(t, "c", latest[2].Title)

	rest, err := svc.List(ctx, userID, false, true)
	require.NoError(t, err)
	require.Len(t, rest, 2)
	assert.Equal(t, "b", rest[0].Title)
	assert.Equal(t, "a", rest[1].Title)
}

func TestListExcludeLatestFewNotices(t *testing.T) {
	svc := NewNoticeService(newMemRepo())
	ctx := context.Background()

	seedNotice(t, svc, "only", time.Now())
	seedNotice(t, svc, "other", time.Now().Add(time.Hour))

	rest, err := svc.List(ctx, primitive.NewObjectID(), false, true)
	require.NoError(t, err)
	assert.Empty(t, rest)
}

func TestUpdatePartialFields(t *testing.T) {
	repo := newMemRepo()
	svc := NewNoticeService(repo)
	ctx := context.Background()

	n := seedNotice(t, svc, "Before", time.Now())

	updated, err := svc.Update(ctx, n.ID, UpdateRequest{Title: "After"})
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, n.Category, updated.Category)
	assert.Equal(t, n.Description, updated.Description)
}

func TestDeleteMissingNotice(t *testing.T) {
	svc := NewNoticeService(newMemRepo())

	err := svc.Delete(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}
