package splitter

import (
	"errors"
	"reflect"
	"testing"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		maxPages int
		want     []Chunk
	}{
		{"uneven", 250, 100, []Chunk{{0, 100}, {100, 200}, {200, 250}}},
		{"even", 300, 100, []Chunk{{0, 100}, {100, 200}, {200, 300}}},
		{"single page chunks", 3, 1, []Chunk{{0, 1}, {1, 2}, {2, 3}}},
		{"limit above total", 50, 100, []Chunk{{0, 50}}},
		{"one over", 101, 100, []Chunk{{0, 100}, {100, 101}}},
		{"empty", 0, 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Plan(tt.total, tt.maxPages)
			if err != nil {
				t.Fatalf("Plan: %v", err)
			}
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Plan(%d, %d) = %v, want %v", tt.total, tt.maxPages, got, tt.want)
			}
		})
	}
}

func TestPlan_ZeroLimit(t *testing.T) {
	for _, limit := range []int{0, -1} {
		_, err := Plan(10, limit)
		if !errors.Is(err, ErrInvalidPageLimit) {
			t.Errorf("Plan(10, %d): expected ErrInvalidPageLimit, got %v", limit, err)
		}
	}
}

func TestPlan_CoversRangeExactly(t *testing.T) {
	for total := 1; total <= 60; total++ {
		for limit := 1; limit <= 25; limit++ {
			chunks, err := Plan(total, limit)
			if err != nil {
				t.Fatalf("Plan(%d, %d): %v", total, limit, err)
			}

			next := 0
			for i, c := range chunks {
				if c.Start != next {
					t.Fatalf("Plan(%d, %d): chunk %d starts at %d, want %d", total, limit, i, c.Start, next)
				}
				if c.Size() < 1 || c.Size() > limit {
					t.Fatalf("Plan(%d, %d): chunk %d has size %d", total, limit, i, c.Size())
				}
				if i < len(chunks)-1 && c.Size() != limit {
					t.Fatalf("Plan(%d, %d): non-final chunk %d has size %d", total, limit, i, c.Size())
				}
				next = c.End
			}
			if next != total {
				t.Fatalf("Plan(%d, %d): chunks end at %d", total, limit, next)
			}

			last := chunks[len(chunks)-1].Size()
			want := total % limit
			if want == 0 {
				want = limit
			}
			if last != want {
				t.Fatalf("Plan(%d, %d): last chunk size %d, want %d", total, limit, last, want)
			}
		}
	}
}

func TestChunk_String(t *testing.T) {
	if got := (Chunk{Start: 100, End: 200}).String(); got != "pages 101-200" {
		t.Errorf("String() = %q", got)
	}
}

func TestChunk_Complement(t *testing.T) {
	tests := []struct {
		chunk Chunk
		total int
		want  []int
	}{
		{Chunk{0, 2}, 5, []int{3, 4, 5}},
		{Chunk{2, 4}, 5, []int{1, 2, 5}},
		{Chunk{3, 5}, 5, []int{1, 2, 3}},
		{Chunk{0, 5}, 5, []int{}},
	}

	for _, tt := range tests {
		if got := tt.chunk.complement(tt.total); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%v.complement(%d) = %v, want %v", tt.chunk, tt.total, got, tt.want)
		}
	}
}
