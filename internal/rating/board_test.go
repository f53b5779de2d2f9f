package rating

import (
	"context"
	"log/slog"
	"testing"
)

// countingHandler tallies records per level.
type countingHandler struct {
	warns int
}

func (h *countingHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h *countingHandler) Handle(_ context.Context, r slog.Record) error {
	if r.Level == slog.LevelWarn {
		h.warns++
	}
	return nil
}
func (h *countingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *countingHandler) WithGroup(string) slog.Handler      { return h }

func testBoard() *Board {
	return NewBoard("test", []*Line{
		NewLine("a", 2, 0),
		NewLine("b", 4, 1),
	})
}

func TestBoardAggregate(t *testing.T) {
	b := testBoard()
	if got := b.AggregateHalfUnits(); got != 13 {
		t.Fatalf("AggregateHalfUnits() = %d, want 13", got)
	}
	if got := b.AggregateStars(); got != "6.5" {
		t.Fatalf("AggregateStars() = %q, want %q", got, "6.5")
	}
}

func TestBoardAggregateTracksMutations(t *testing.T) {
	b := testBoard()
	b.Init(slog.New(&countingHandler{}))

	if !b.Apply(0, DeltaFullUp) {
		t.Fatalf("Apply(0, +1) rejected")
	}
	if got := b.AggregateHalfUnits(); got != 15 {
		t.Fatalf("after +1: aggregate = %d, want 15", got)
	}

	// A rejected delta leaves the aggregate untouched.
	if b.Apply(1, DeltaFullUp) {
		t.Fatalf("Apply(1, +1) accepted at 4.5")
	}
	if got := b.AggregateHalfUnits(); got != 15 {
		t.Fatalf("rejected delta changed aggregate to %d", got)
	}
}

func TestBoardApplyBounds(t *testing.T) {
	b := testBoard()
	b.Init(slog.New(&countingHandler{}))
	if b.Apply(-1, DeltaFullUp) {
		t.Fatalf("Apply(-1, +1) accepted")
	}
	if b.Apply(2, DeltaFullUp) {
		t.Fatalf("Apply(2, +1) accepted")
	}
}

func TestBoardApplyBeforeInitIsNoOp(t *testing.T) {
	b := testBoard()
	if b.Apply(0, DeltaFullUp) {
		t.Fatalf("Apply accepted on an unwired board")
	}
	if got := b.AggregateHalfUnits(); got != 13 {
		t.Fatalf("unwired Apply changed aggregate to %d", got)
	}
}

func TestBoardInitIsIdempotent(t *testing.T) {
	h := &countingHandler{}
	b := testBoard()
	logger := slog.New(h)
	b.Init(logger)
	b.Init(logger)
	for i := range b.Lines() {
		if !b.Wired(i) {
			t.Fatalf("line %d not wired after Init", i)
		}
	}
	if h.warns != 0 {
		t.Fatalf("Init warned %d times on a populated board", h.warns)
	}
}

func TestBoardInitEmptyWarnsOnce(t *testing.T) {
	h := &countingHandler{}
	b := NewBoard("empty", nil)
	b.Init(slog.New(h))
	if h.warns != 1 {
		t.Fatalf("Init on empty board warned %d times, want 1", h.warns)
	}
}
