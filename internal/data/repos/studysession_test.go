package repos

import (
	"context"
	"testing"
	"time"

	"github.com/yungbote/kotoba-backend/internal/data/repos/testutil"
)

func TestStudySessionRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewStudySessionRepo(db, testutil.Logger(t))

	g1 := testutil.SeedGroup(t, ctx, tx, "Greetings")
	g2 := testutil.SeedGroup(t, ctx, tx, "Numbers")
	a1 := testutil.SeedActivity(t, ctx, tx, "flashcards")
	a2 := testutil.SeedActivity(t, ctx, tx, "typing")

	now := time.Now().UTC().Truncate(time.Second)
	s1 := testutil.SeedSession(t, ctx, tx, g1.ID, a1.ID, now.Add(-2*time.Hour))
	s2 := testutil.SeedSession(t, ctx, tx, g1.ID, a2.ID, now.Add(-1*time.Hour))
	s3 := testutil.SeedSession(t, ctx, tx, g2.ID, a1.ID, now)

	if got, err := repo.Count(ctx, tx); err != nil || got != 3 {
		t.Fatalf("Count: err=%v got=%d", err, got)
	}

	rows, err := repo.List(ctx, tx, 0, 2)
	if err != nil || len(rows) != 2 || rows[0].ID != s1.ID {
		t.Fatalf("List: err=%v len=%d", err, len(rows))
	}

	if got, err := repo.GetByID(ctx, tx, s2.ID); err != nil || got == nil || got.StudyActivityID != a2.ID {
		t.Fatalf("GetByID: err=%v got=%+v", err, got)
	}
	if got, err := repo.GetByID(ctx, tx, 777777); err != nil || got != nil {
		t.Fatalf("GetByID missing: err=%v got=%+v", err, got)
	}

	if got, err := repo.CountByGroupID(ctx, tx, g1.ID); err != nil || got != 2 {
		t.Fatalf("CountByGroupID: err=%v got=%d", err, got)
	}
	byGroup, err := repo.ListByGroupID(ctx, tx, g1.ID, 0, 10)
	if err != nil || len(byGroup) != 2 {
		t.Fatalf("ListByGroupID: err=%v len=%d", err, len(byGroup))
	}

	if got, err := repo.CountByActivityID(ctx, tx, a1.ID); err != nil || got != 2 {
		t.Fatalf("CountByActivityID: err=%v got=%d", err, got)
	}
	byActivity, err := repo.ListByActivityID(ctx, tx, a1.ID, 0, 10)
	if err != nil || len(byActivity) != 2 {
		t.Fatalf("ListByActivityID: err=%v len=%d", err, len(byActivity))
	}

	latest, err := repo.GetLatest(ctx, tx)
	if err != nil || latest == nil || latest.ID != s3.ID {
		t.Fatalf("GetLatest: err=%v got=%+v", err, latest)
	}

	if got, err := repo.CountDistinctGroups(ctx, tx); err != nil || got != 2 {
		t.Fatalf("CountDistinctGroups: err=%v got=%d", err, got)
	}

	dayStart := now.Truncate(24 * time.Hour)
	if got, err := repo.CountInRange(ctx, tx, dayStart, dayStart.Add(24*time.Hour)); err != nil || got == 0 {
		t.Fatalf("CountInRange: err=%v got=%d", err, got)
	}
	if got, err := repo.CountInRange(ctx, tx, dayStart.AddDate(0, 0, 7), dayStart.AddDate(0, 0, 8)); err != nil || got != 0 {
		t.Fatalf("CountInRange future: err=%v got=%d", err, got)
	}
}
