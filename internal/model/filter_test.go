package model

import "testing"

func ptr(s string) *string { return &s }

func TestTaskFilterEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b TaskFilter
		want bool
	}{
		{"both zero", TaskFilter{}, TaskFilter{}, true},
		{
			"same values different pointers",
			TaskFilter{Status: ptr("todo"), Priority: ptr("high")},
			TaskFilter{Status: ptr("todo"), Priority: ptr("high")},
			true,
		},
		{
			"nil vs set",
			TaskFilter{Status: ptr("todo")},
			TaskFilter{},
			false,
		},
		{
			"different values",
			TaskFilter{Status: ptr("todo")},
			TaskFilter{Status: ptr("completed")},
			false,
		},
		{
			"category differs",
			TaskFilter{CategoryID: ptr("c1")},
			TaskFilter{CategoryID: ptr("c2")},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTaskFilterIsZero(t *testing.T) {
	if !(TaskFilter{}).IsZero() {
		t.Error("zero filter IsZero() = false")
	}
	if (TaskFilter{Status: ptr("todo")}).IsZero() {
		t.Error("filter with status IsZero() = true")
	}
	if (TaskFilter{Status: ptr("")}).IsZero() {
		t.Error("filter with non-nil pointer IsZero() = true")
	}
}
