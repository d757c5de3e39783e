package season

import "testing"

func TestResolveGameweeks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       []Gameweek
		previous int
		current  int
		next     int
	}{
		{
			name: "mid season",
			in: []Gameweek{
				{ID: 1, Finished: true},
				{ID: 2, IsPrevious: true, Finished: true},
				{ID: 3, IsCurrent: true},
				{ID: 4, IsNext: true},
			},
			previous: 2,
			current:  3,
			next:     4,
		},
		{
			name: "pre season",
			in: []Gameweek{
				{ID: 1, IsNext: true},
				{ID: 2},
			},
			next: 1,
		},
		{
			name: "no flags",
			in:   []Gameweek{{ID: 1}, {ID: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveGameweeks(Snapshot{Gameweeks: tt.in})
			assertGameweek(t, "previous", got.Previous, tt.previous)
			assertGameweek(t, "current", got.Current, tt.current)
			assertGameweek(t, "next", got.Next, tt.next)
		})
	}
}

func TestSnapshotValidate_RejectsDuplicateFlags(t *testing.T) {
	t.Parallel()

	s := Snapshot{Gameweeks: []Gameweek{{ID: 1, IsCurrent: true}, {ID: 2, IsCurrent: true}}}
	if err := s.Validate(); err == nil {
		t.Fatalf("expected error for two current gameweeks")
	}
}

func TestSnapshotValidate_RejectsDuplicateTeamCodes(t *testing.T) {
	t.Parallel()

	s := Snapshot{Teams: []Team{{Code: 3, Name: "Arsenal"}, {Code: 3, Name: "Arsenal again"}}}
	if err := s.Validate(); err == nil {
		t.Fatalf("expected error for duplicate team code")
	}
}

func TestPlayerAvailable(t *testing.T) {
	t.Parallel()

	if (Player{Status: StatusUnavailable}).Available() {
		t.Fatalf("expected status %q to be unavailable", StatusUnavailable)
	}
	if !(Player{Status: "a"}).Available() {
		t.Fatalf("expected status a to be available")
	}
}

func assertGameweek(t *testing.T, field string, got *int, want int) {
	t.Helper()
	if want == 0 {
		if got != nil {
			t.Fatalf("expected %s to be absent, got %d", field, *got)
		}
		return
	}
	if got == nil {
		t.Fatalf("expected %s=%d, got absent", field, want)
	}
	if *got != want {
		t.Fatalf("expected %s=%d, got %d", field, want, *got)
	}
}
