package engine

import "testing"

func TestRunSeedDeterminism(t *testing.T) {
	r1, _ := NewRunSeed("alpha-seed")
	r2, _ := NewRunSeed("alpha-seed")
	s1 := r1.Stream("x").Intn(1000000)
	s2 := r2.Stream("x").Intn(1000000)
	if s1 != s2 {
		t.Fatalf("streams differ: %d vs %d", s1, s2)
	}
	// child streams
	c1 := r1.Stream("x").Child("y").Intn(1000000)
	c2 := r2.Stream("x").Child("y").Intn(1000000)
	if c1 != c2 {
		t.Fatalf("child streams differ: %d vs %d", c1, c2)
	}
}

func TestNewRunSeedRejectsEmpty(t *testing.T) {
	if _, err := NewRunSeed(""); err == nil {
		t.Fatal("expected error for empty seed text")
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	seed, _ := NewRunSeed("shuffle")
	s := seed.Stream("p")
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	s.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	seen := make([]bool, len(items))
	for _, v := range items {
		if seen[v] {
			t.Fatalf("value %d appears twice after shuffle: %v", v, items)
		}
		seen[v] = true
	}
}

func TestPickCoversAllItems(t *testing.T) {
	seed, _ := NewRunSeed("pick")
	s := seed.Stream("p")
	counts := map[Effect]int{}
	for i := 0; i < 400; i++ {
		counts[Pick(s, AllEffects)]++
	}
	for _, e := range AllEffects {
		if counts[e] == 0 {
			t.Fatalf("effect %s never picked: %v", e, counts)
		}
	}
}
