package entity

import "testing"

func TestSlotTimesMorningBlock(t *testing.T) {
	ws := &WorkSchedule{StartTime: "08:00", EndTime: "12:00", SlotMinutes: 30}

	slots, err := ws.SlotTimes()
	if err != nil {
		t.Fatalf("SlotTimes error: %v", err)
	}

	want := []string{"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	if len(slots) != len(want) {
		t.Fatalf("got %d slots, want %d: %v", len(slots), len(want), slots)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot[%d] = %q, want %q", i, slots[i], want[i])
		}
	}
}

func TestSlotTimesNoTrailingPartialSlot(t *testing.T) {
	// 45-minute slots in a 2-hour block: 09:30 would run past 10:00.
	ws := &WorkSchedule{StartTime: "08:00", EndTime: "10:00", SlotMinutes: 45}

	slots, err := ws.SlotTimes()
	if err != nil {
		t.Fatalf("SlotTimes error: %v", err)
	}
	want := []string{"08:00", "08:45", "09:30"}
	if len(slots) != len(want) {
		t.Fatalf("got %v, want %v", slots, want)
	}
}

func TestSlotTimesSingleSlotBlock(t *testing.T) {
	ws := &WorkSchedule{StartTime: "08:00", EndTime: "09:00", SlotMinutes: 30}

	slots, err := ws.SlotTimes()
	if err != nil {
		t.Fatalf("SlotTimes error: %v", err)
	}
	want := []string{"08:00", "08:30"}
	if len(slots) != 2 || slots[0] != want[0] || slots[1] != want[1] {
		t.Fatalf("got %v, want %v", slots, want)
	}
}

func TestCovers(t *testing.T) {
	ws := &WorkSchedule{StartTime: "08:00", EndTime: "12:00", SlotMinutes: 30}

	cases := []struct {
		clock string
		want  bool
	}{
		{"08:00", true},
		{"11:30", true},
		{"12:00", false}, // end is exclusive
		{"07:30", false},
		{"garbage", false},
	}
	for _, tc := range cases {
		if got := ws.Covers(tc.clock); got != tc.want {
			t.Errorf("Covers(%q) = %v, want %v", tc.clock, got, tc.want)
		}
	}
}
