package testutil

import (
	"testing"

	"github.com/udisondev/dpscalc/internal/model"
)

// AssertStat fails the test if s[id] differs from expected by more than delta.
func AssertStat(t testing.TB, expected float64, s model.Snapshot, id model.StatID, delta float64) {
	t.Helper()

	actual := s[id]
	if diff := actual - expected; diff < -delta || diff > delta {
		t.Fatalf("%s = %v, expected %v (±%v)", id, actual, expected, delta)
	}
}

// AssertSnapshotsEqual compares every stat within delta.
func AssertSnapshotsEqual(t testing.TB, expected, actual model.Snapshot, delta float64) {
	t.Helper()

	for _, id := range model.AllStats() {
		if diff := actual[id] - expected[id]; diff < -delta || diff > delta {
			t.Errorf("%s = %v, expected %v (±%v)", id, actual[id], expected[id], delta)
		}
	}
}
