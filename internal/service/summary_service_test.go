package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sehyunpark/jindo/internal/domain"
	"github.com/sehyunpark/jindo/internal/repository"
	"github.com/sehyunpark/jindo/internal/testutil"
)

func newSummaryFixture(t *testing.T) (SummaryService, ProgressService, string) {
	t.Helper()
	database := testutil.NewTestDB(t)
	user := testutil.CreateTestUser(t, database, "sehyun")
	states := repository.NewSQLiteStateRepo(database)
	return NewSummaryService(states), NewProgressService(states), user
}

func setContent(t *testing.T, progress ProgressService, user string, weekID int, classID string, session int, content string) {
	t.Helper()
	key := domain.ProgressKey{WeekID: weekID, ClassID: classID, Subject: "과학A", Session: session}
	require.NoError(t, progress.Set(context.Background(), user, key, domain.ProgressEntry{Content: content}))
}

func TestSummaryService_Summary_DefaultOrderFromReferenceClass(t *testing.T) {
	svc, progress, user := newSummaryFixture(t)
	ctx := context.Background()

	// 3-5 (Mon p1, Tue p6) logs two contents; 3-10 (Tue p7, Wed p1) only one.
	setContent(t, progress, user, 1, "3-5", 1, "1단원")
	setContent(t, progress, user, 1, "3-5", 2, "2단원")
	setContent(t, progress, user, 1, "3-10", 1, "1단원")

	contents, err := svc.Summary(ctx, user, "과학A")
	require.NoError(t, err)
	assert.Equal(t, []string{"1단원", "2단원"}, contents)
}

func TestSummaryService_Summary_EmptyForUnknownSubject(t *testing.T) {
	svc, _, user := newSummaryFixture(t)

	contents, err := svc.Summary(context.Background(), user, "체육")
	require.NoError(t, err)
	assert.Empty(t, contents)
}

func TestSummaryService_Reorder_PersistsManualOrder(t *testing.T) {
	svc, progress, user := newSummaryFixture(t)
	ctx := context.Background()

	setContent(t, progress, user, 1, "3-5", 1, "A")
	setContent(t, progress, user, 1, "3-5", 2, "B")
	setContent(t, progress, user, 2, "3-5", 1, "C")

	before, err := svc.Summary(ctx, user, "과학A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, before)

	require.NoError(t, svc.Reorder(ctx, user, "과학A", []string{"C", "A", "B"}))

	after, err := svc.Summary(ctx, user, "과학A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, after)
}

func TestSummaryService_Summary_NewContentAppendsAfterManualOrder(t *testing.T) {
	svc, progress, user := newSummaryFixture(t)
	ctx := context.Background()

	setContent(t, progress, user, 1, "3-5", 1, "A")
	setContent(t, progress, user, 1, "3-5", 2, "B")
	require.NoError(t, svc.Reorder(ctx, user, "과학A", []string{"B", "A"}))

	setContent(t, progress, user, 2, "3-5", 1, "C")

	contents, err := svc.Summary(ctx, user, "과학A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, contents)
}

func TestSummaryService_Summary_DroppedContentLeavesManualOrder(t *testing.T) {
	svc, progress, user := newSummaryFixture(t)
	ctx := context.Background()

	setContent(t, progress, user, 1, "3-5", 1, "A")
	setContent(t, progress, user, 1, "3-5", 2, "B")
	require.NoError(t, svc.Reorder(ctx, user, "과학A", []string{"B", "A"}))

	// Clearing the only slot carrying "A" removes it from the summary.
	key := domain.ProgressKey{WeekID: 1, ClassID: "3-5", Subject: "과학A", Session: 1}
	require.NoError(t, progress.Set(ctx, user, key, domain.ProgressEntry{}))

	contents, err := svc.Summary(ctx, user, "과학A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, contents)
}

func TestSummaryService_Reorder_OtherSubjectsUntouched(t *testing.T) {
	svc, progress, user := newSummaryFixture(t)
	ctx := context.Background()

	setContent(t, progress, user, 1, "3-5", 1, "A")
	setContent(t, progress, user, 1, "3-5", 2, "B")

	other := domain.ProgressKey{WeekID: 1, ClassID: "3-6", Subject: "자율", Session: 1}
	require.NoError(t, progress.Set(ctx, user, other, domain.ProgressEntry{Content: "학급회의"}))

	require.NoError(t, svc.Reorder(ctx, user, "과학A", []string{"B", "A"}))

	contents, err := svc.Summary(ctx, user, "자율")
	require.NoError(t, err)
	assert.Equal(t, []string{"학급회의"}, contents)
}
