package board

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/thenoetrevino/dreamscape/internal/celebration"
	"github.com/thenoetrevino/dreamscape/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// sequentialIDs returns an IDFunc yielding "new-1", "new-2", ...
func sequentialIDs() IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("new-%d", n)
	}
}

func idsOf(items []models.BoardItem) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

// ============================================================================
// SEED + ADD
// ============================================================================

func TestNewStore_Seeded(t *testing.T) {
	s := NewStore()

	if diff := cmp.Diff(SeedItems(), s.Items()); diff != "" {
		t.Errorf("seed mismatch (-want +got):\n%s", diff)
	}
}

func TestAdd_DefaultsPerKind(t *testing.T) {
	tests := []struct {
		kind        models.Kind
		wantContent string
		wantHeight  int
	}{
		{models.KindImage, models.DefaultImageURL, 200},
		{models.KindQuote, "Add your inspirational quote here", 150},
		{models.KindProgress, "New Progress:0", 200},
		{models.KindGoal, "New Goal:2024", 200},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			s := NewStore(WithIDFunc(sequentialIDs()))
			item := s.Add(tt.kind)

			want := models.BoardItem{
				ID:       "new-1",
				Kind:     tt.kind,
				Content:  tt.wantContent,
				Position: models.Position{X: 250, Y: 250},
				Size:     models.Size{Width: 250, Height: tt.wantHeight},
			}
			if diff := cmp.Diff(want, item); diff != "" {
				t.Errorf("Add(%s) mismatch (-want +got):\n%s", tt.kind, diff)
			}

			items := s.Items()
			if items[len(items)-1].ID != item.ID {
				t.Error("new item should be appended last")
			}
		})
	}
}

func TestAddFromURL(t *testing.T) {
	s := NewStore(WithIDFunc(sequentialIDs()))
	url := "https://images.unsplash.com/photo-1469474968028-56623f02e42e?w=600&q=80"

	item := s.AddFromURL(url)

	if item.Kind != models.KindImage {
		t.Errorf("Kind = %s, want image", item.Kind)
	}
	if item.Content != url {
		t.Errorf("Content = %q, want %q", item.Content, url)
	}
	if item.Size != models.DefaultSize(models.KindImage) {
		t.Errorf("Size = %+v, want image default", item.Size)
	}
}

func TestAdd_NeverReusesIDs(t *testing.T) {
	// Generator collides with a seed id and then with itself
	ids := []string{"3", "a", "a", "b"}
	next := 0
	s := NewStore(WithIDFunc(func() string {
		id := ids[next]
		next++
		return id
	}))

	first := s.Add(models.KindQuote)
	s.Remove(first.ID)
	second := s.Add(models.KindQuote)

	if first.ID != "a" {
		t.Errorf("first id = %q, want a (seed id 3 skipped)", first.ID)
	}
	if second.ID != "b" {
		t.Errorf("second id = %q, want b (removed id a not reused)", second.ID)
	}
}

// ============================================================================
// REMOVE
// ============================================================================

func TestRemove_Absent_NoOp(t *testing.T) {
	s := NewStore()
	before := s.Items()

	s.Remove("zzz")

	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
	if diff := cmp.Diff(before, s.Items()); diff != "" {
		t.Errorf("items changed (-want +got):\n%s", diff)
	}
}

func TestRemove_Idempotent(t *testing.T) {
	s := NewStore()
	s.Remove("2")
	s.Remove("2")

	if diff := cmp.Diff([]string{"1", "3", "4"}, idsOf(s.Items())); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
}

// TestAddRemove_SetEquality checks that after any sequence of adds and
// removes the store holds exactly the added-and-not-removed ids.
func TestAddRemove_SetEquality(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewStore(WithIDFunc(sequentialIDs()))

	live := map[string]bool{}
	for _, id := range idsOf(SeedItems()) {
		live[id] = true
	}

	for range 500 {
		if rng.Intn(3) == 0 && len(live) > 0 {
			keys := make([]string, 0, len(live))
			for k := range live {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			victim := keys[rng.Intn(len(keys))]
			s.Remove(victim)
			delete(live, victim)
			continue
		}
		if rng.Intn(5) == 0 {
			s.Remove("missing")
			continue
		}
		item := s.Add(models.Kinds[rng.Intn(len(models.Kinds))])
		live[item.ID] = true
	}

	want := make([]string, 0, len(live))
	for k := range live {
		want = append(want, k)
	}
	got := idsOf(s.Items())
	slices.Sort(want)
	slices.Sort(got)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("id set mismatch (-want +got):\n%s", diff)
	}
}

// ============================================================================
// UPDATE + MOVE
// ============================================================================

func TestUpdateContent(t *testing.T) {
	s := NewStore()
	s.UpdateContent("2", "Dream big.")

	item, ok := s.Get("2")
	if !ok {
		t.Fatal("item 2 missing")
	}
	if item.Content != "Dream big." {
		t.Errorf("Content = %q, want %q", item.Content, "Dream big.")
	}
}

func TestUpdateContent_Absent_NoOp(t *testing.T) {
	s := NewStore()
	before := s.Items()

	s.UpdateContent("zzz", "anything")

	if diff := cmp.Diff(before, s.Items()); diff != "" {
		t.Errorf("items changed (-want +got):\n%s", diff)
	}
}

func TestMove_ReadBack(t *testing.T) {
	s := NewStore()
	for _, id := range idsOf(SeedItems()) {
		p := models.Position{X: -17, Y: 9001}
		s.Move(id, p)

		got, _ := s.Get(id)
		if got.Position != p {
			t.Errorf("Move(%s) then Get = %+v, want %+v", id, got.Position, p)
		}
	}
}

func TestMove_Absent_NoOp(t *testing.T) {
	s := NewStore()
	before := s.Items()
	s.Move("zzz", models.Position{X: 1, Y: 1})

	if diff := cmp.Diff(before, s.Items()); diff != "" {
		t.Errorf("items changed (-want +got):\n%s", diff)
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	s := NewStore()
	items := s.Items()
	items[0].Content = "mutated"

	got, _ := s.Get(items[0].ID)
	if got.Content == "mutated" {
		t.Error("Items() must not expose internal storage")
	}
}

// ============================================================================
// CELEBRATION
// ============================================================================

func TestUpdateContent_CelebratesAtHundred(t *testing.T) {
	var events []celebration.Event
	s := NewStore(
		WithIDFunc(sequentialIDs()),
		WithCelebrations(func(ev celebration.Event) { events = append(events, ev) }),
	)

	item := s.Add(models.KindProgress)
	s.UpdateContent(item.ID, "Learn Spanish:90")
	if len(events) != 0 {
		t.Fatalf("celebrated at 90")
	}

	next := models.ParseProgress("Learn Spanish:90").Step(models.ProgressStep)
	s.UpdateContent(item.ID, next.String())

	got, _ := s.Get(item.ID)
	if got.Content != "Learn Spanish:100" {
		t.Errorf("Content = %q, want %q", got.Content, "Learn Spanish:100")
	}
	if len(events) != 1 {
		t.Fatalf("got %d celebrations, want 1", len(events))
	}
	if !strings.Contains(events[0].Message, "Learn Spanish") {
		t.Errorf("Message %q does not mention label", events[0].Message)
	}
}

func TestUpdateContent_NonProgressNeverCelebrates(t *testing.T) {
	fired := false
	s := NewStore(WithCelebrations(func(celebration.Event) { fired = true }))

	s.UpdateContent("4", "Marathon:100")
	s.UpdateContent("2", "x:100")

	if fired {
		t.Error("only progress items may celebrate")
	}
}

// ============================================================================
// COMMANDS
// ============================================================================

func TestDispatch(t *testing.T) {
	s := NewStore(WithIDFunc(sequentialIDs()))

	Dispatch(s,
		AddItem{Kind: models.KindGoal},
		AddImage{URL: "https://example.com/a.jpg"},
		RemoveItem{ID: "1"},
		SetContent{ID: "3", Content: "Learn Spanish:80"},
		MoveItem{ID: "new-1", Position: models.Position{X: 5, Y: 6}},
		nil,
	)

	if diff := cmp.Diff([]string{"2", "3", "4", "new-1", "new-2"}, idsOf(s.Items())); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
	goal, _ := s.Get("new-1")
	if goal.Position != (models.Position{X: 5, Y: 6}) {
		t.Errorf("goal position = %+v", goal.Position)
	}
	progress, _ := s.Get("3")
	if progress.Content != "Learn Spanish:80" {
		t.Errorf("progress content = %q", progress.Content)
	}
}

func TestWithItems(t *testing.T) {
	s := NewStore(WithItems(nil), WithIDFunc(sequentialIDs()))
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
	s.Add(models.KindQuote)
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}
