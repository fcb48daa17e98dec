package systems

import "testing"

// Persistence is deliberately a no-op until InitPersistence succeeds,
// so a fresh run on a machine with no storage still works.
func TestPersistenceDefaultsWithoutStorage(t *testing.T) {
	if gdataInitialized {
		t.Skip("persistence initialized, cannot test uninitialized defaults")
	}

	if best := LoadBestScore(); best != 0 {
		t.Errorf("expected best score 0 without storage, got %d", best)
	}
	if err := SaveBestScore(42); err != nil {
		t.Errorf("expected save to no-op without storage, got %v", err)
	}

	settings, err := LoadSettings()
	if err != nil {
		t.Errorf("expected nil error loading settings without storage, got %v", err)
	}
	if settings != nil {
		t.Errorf("expected nil settings without storage, got %+v", settings)
	}
}
