package entities

import "testing"

func TestProjectFilter_IsZero(t *testing.T) {
	t.Run("zero value matches all projects", func(t *testing.T) {
		if !(ProjectFilter{}).IsZero() {
			t.Fatal("expected zero filter to be zero")
		}
	})

	t.Run("any constraint makes it non-zero", func(t *testing.T) {
		filters := map[string]ProjectFilter{
			"surveyor":    {SurveyorID: "s-1"},
			"client user": {ClientUserID: "c-1"},
			"id set":      {IDs: []string{"p-1"}},
		}
		for name, f := range filters {
			if f.IsZero() {
				t.Fatalf("expected %s filter to be non-zero", name)
			}
		}
	})
}
