package internal

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestReverse(t *testing.T) {
	tests := []struct {
		in   []int
		want []int
	}{
		{nil, nil},
		{[]int{1}, []int{1}},
		{[]int{1, 2}, []int{2, 1}},
		{[]int{1, 2, 3, 4, 5}, []int{5, 4, 3, 2, 1}},
	}
	for _, tt := range tests {
		got := Reverse(slices.Clone(tt.in))
		if !slices.Equal(got, tt.want) {
			t.Errorf("Reverse(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	s := make([]int, 100)
	for i := range s {
		s[i] = i
	}
	Shuffle(s, rng.IntN)

	sorted := slices.Clone(s)
	slices.Sort(sorted)
	for i, v := range sorted {
		if v != i {
			t.Fatalf("shuffled slice lost or duplicated elements: %v", s)
		}
	}
	if slices.IsSorted(s) {
		t.Error("Expected shuffle to move at least one element")
	}
}

func TestShuffleDeterministicForSeed(t *testing.T) {
	a := []string{"a", "b", "c", "d", "e", "f"}
	b := slices.Clone(a)
	Shuffle(a, rand.New(rand.NewPCG(1, 2)).IntN)
	Shuffle(b, rand.New(rand.NewPCG(1, 2)).IntN)
	if !slices.Equal(a, b) {
		t.Errorf("same seed produced %v and %v", a, b)
	}
}
