package availability

import (
	"path"
	"testing"
	"time"

	"github.com/google/uuid"
)

// Glob semantics here match Redis SCAN for these keys: no separator chars,
// '*' spans anything.
func globMatches(t *testing.T, pattern, key string) bool {
	t.Helper()
	ok, err := path.Match(pattern, key)
	if err != nil {
		t.Fatalf("bad pattern %q: %v", pattern, err)
	}
	return ok
}

func TestInvalidationPatternsMatchCacheKeys(t *testing.T) {
	therapistID := uuid.New()
	serviceID := uuid.New()
	branchID := uuid.New()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	branchKey := cacheKey(therapistID, date, serviceID, &branchID)
	allKey := cacheKey(therapistID, date, serviceID, nil)

	for _, key := range []string{branchKey, allKey} {
		if !globMatches(t, therapistDatePattern(therapistID, date), key) {
			t.Errorf("therapist+date pattern misses key %q", key)
		}
		if !globMatches(t, therapistPattern(therapistID), key) {
			t.Errorf("therapist pattern misses key %q", key)
		}
		if !globMatches(t, servicePattern(serviceID), key) {
			t.Errorf("service pattern misses key %q", key)
		}
	}
}

func TestInvalidationPatternsAreSelective(t *testing.T) {
	therapistID := uuid.New()
	serviceID := uuid.New()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	key := cacheKey(therapistID, date, serviceID, nil)

	if globMatches(t, therapistPattern(uuid.New()), key) {
		t.Error("another therapist's pattern matched the key")
	}
	if globMatches(t, therapistDatePattern(therapistID, date.AddDate(0, 0, 1)), key) {
		t.Error("another date's pattern matched the key")
	}
	if globMatches(t, servicePattern(uuid.New()), key) {
		t.Error("another service's pattern matched the key")
	}
}
