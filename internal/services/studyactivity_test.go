package services

import (
	"context"
	"testing"
	"time"

	"github.com/yungbote/kotoba-backend/internal/data/repos/testutil"
	"github.com/yungbote/kotoba-backend/internal/pagination"
	"github.com/yungbote/kotoba-backend/internal/pkg/apierr"
)

func TestStudyActivityServiceGet(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	d := newDeps(t, db)
	svc := NewStudyActivityService(db, testutil.Logger(t), d.activities, d.groups, d.sessions, d.reviews)

	a := testutil.SeedActivity(t, ctx, tx, "Vocabulary Quiz")

	detail, err := svc.Get(ctx, tx, a.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if detail.Name != "Vocabulary Quiz" {
		t.Fatalf("detail = %+v", detail)
	}

	if _, err := svc.Get(ctx, tx, 99999); !apierr.IsNotFound(err) {
		t.Fatalf("Get missing activity err = %v, want not found", err)
	}
}

func TestStudyActivityServiceListSessions(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	d := newDeps(t, db)
	svc := NewStudyActivityService(db, testutil.Logger(t), d.activities, d.groups, d.sessions, d.reviews)

	g := testutil.SeedGroup(t, ctx, tx, "Verbs")
	a1 := testutil.SeedActivity(t, ctx, tx, "quiz")
	a2 := testutil.SeedActivity(t, ctx, tx, "typing")
	testutil.SeedSession(t, ctx, tx, g.ID, a1.ID, time.Now().UTC())
	testutil.SeedSession(t, ctx, tx, g.ID, a1.ID, time.Now().UTC())
	testutil.SeedSession(t, ctx, tx, g.ID, a2.ID, time.Now().UTC())

	env, err := svc.ListSessions(ctx, tx, a1.ID, pagination.DefaultParams())
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(env.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(env.Items))
	}
	if env.Pagination.TotalItems != 2 {
		t.Fatalf("pagination = %+v", env.Pagination)
	}

	if _, err := svc.ListSessions(ctx, tx, 99999, pagination.DefaultParams()); !apierr.IsNotFound(err) {
		t.Fatalf("ListSessions missing activity err = %v, want not found", err)
	}
}

func TestStudyActivityServiceLaunch(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	d := newDeps(t, db)
	svc := NewStudyActivityService(db, testutil.Logger(t), d.activities, d.groups, d.sessions, d.reviews)

	g := testutil.SeedGroup(t, ctx, tx, "Verbs")
	a := testutil.SeedActivity(t, ctx, tx, "quiz")

	result, err := svc.Launch(ctx, tx, g.ID, a.ID)
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if result.SessionID == 0 {
		t.Fatal("Launch returned zero session id")
	}
	if result.GroupID != g.ID || result.StudyActivityID != a.ID {
		t.Fatalf("result = %+v", result)
	}

	session, err := d.sessions.GetByID(ctx, tx, result.SessionID)
	if err != nil || session == nil {
		t.Fatalf("session lookup: err=%v session=%v", err, session)
	}

	if _, err := svc.Launch(ctx, tx, 99999, a.ID); !apierr.IsNotFound(err) {
		t.Fatalf("Launch missing group err = %v, want not found", err)
	}
	if _, err := svc.Launch(ctx, tx, g.ID, 99999); !apierr.IsNotFound(err) {
		t.Fatalf("Launch missing activity err = %v, want not found", err)
	}
}
