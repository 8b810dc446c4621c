package random

import "testing"

func TestNewSeed(t *testing.T) {
	if _, err := NewSeed(); err != nil {
		t.Fatalf("new seed: %v", err)
	}
}

func TestNewRoller(t *testing.T) {
	roller, err := NewRoller()
	if err != nil {
		t.Fatalf("new roller: %v", err)
	}
	if roller == nil {
		t.Fatal("expected roller")
	}
}

func TestRollStaysInRange(t *testing.T) {
	roller := NewRollerFromSeed(42)
	for _, sides := range []uint{1, 2, 6, 20, 100} {
		for i := 0; i < 200; i++ {
			value := roller.Roll(sides)
			if value < 1 || value > sides {
				t.Fatalf("Roll(%d) = %d, out of range [1, %d]", sides, value, sides)
			}
		}
	}
}

func TestRollOneSidedDie(t *testing.T) {
	roller := NewRollerFromSeed(7)
	for i := 0; i < 20; i++ {
		if value := roller.Roll(1); value != 1 {
			t.Fatalf("Roll(1) = %d, want 1", value)
		}
	}
}

func TestRollZeroSides(t *testing.T) {
	roller := NewRollerFromSeed(7)
	if value := roller.Roll(0); value != 0 {
		t.Fatalf("Roll(0) = %d, want 0", value)
	}
}

func TestRollDeterministicForSeed(t *testing.T) {
	first := NewRollerFromSeed(12345)
	second := NewRollerFromSeed(12345)

	for i := 0; i < 50; i++ {
		a := first.Roll(20)
		b := second.Roll(20)
		if a != b {
			t.Fatalf("roll %d differs: %d vs %d", i, a, b)
		}
	}
}
