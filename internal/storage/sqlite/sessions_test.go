package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fleetcore/helmsman/internal/core"
	"github.com/fleetcore/helmsman/internal/session"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	ctx := context.Background()

	db, err := NewDB(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewBackend(db)
}

func TestBackendRoundTrip(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	mem := session.New("s1")
	session.AppendMessage(mem, core.RoleUser, "hello there")

	if err := b.Put(ctx, "s1", mem); err != nil {
		t.Fatal(err)
	}

	got, err := b.Get(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("expected stored session")
	}
	if got.SessionID != "s1" || got.MessageCount != 1 {
		t.Errorf("round trip lost data: %+v", got)
	}
	if got.RecentMessages[0].Content != "hello there" {
		t.Errorf("round trip lost message: %+v", got.RecentMessages)
	}
}

func TestBackendGetMissing(t *testing.T) {
	b := newTestBackend(t)

	got, err := b.Get(context.Background(), "never-seen")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("missing session must read as nil, got %+v", got)
	}
}

func TestBackendUpsert(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	mem := session.New("s1")
	if err := b.Put(ctx, "s1", mem); err != nil {
		t.Fatal(err)
	}
	session.AppendMessage(mem, core.RoleUser, "second write")
	if err := b.Put(ctx, "s1", mem); err != nil {
		t.Fatal(err)
	}

	got, err := b.Get(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if got.MessageCount != 1 {
		t.Errorf("second put should overwrite, got %+v", got)
	}
}

func TestExpiredSessionReadsAsAbsent(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	mem := session.New("s1")
	if err := b.Put(ctx, "s1", mem); err != nil {
		t.Fatal(err)
	}

	// Force the row past its retention window
	_, err := b.db.ExecContext(ctx, `UPDATE sessions SET expires_at = ?`, time.Now().UTC().Add(-time.Hour))
	if err != nil {
		t.Fatal(err)
	}

	got, err := b.Get(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("expired session must read as absent, got %+v", got)
	}
}

func TestPurgeExpired(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	if err := b.Put(ctx, "live", session.New("live")); err != nil {
		t.Fatal(err)
	}
	if err := b.Put(ctx, "stale", session.New("stale")); err != nil {
		t.Fatal(err)
	}
	_, err := b.db.ExecContext(ctx, `UPDATE sessions SET expires_at = ? WHERE id = ?`,
		time.Now().UTC().Add(-time.Hour), "stale")
	if err != nil {
		t.Fatal(err)
	}

	purged, err := b.PurgeExpired(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if purged != 1 {
		t.Errorf("expected 1 purged row, got %d", purged)
	}

	if got, _ := b.Get(ctx, "live"); got == nil {
		t.Error("live session must survive the purge")
	}
}
