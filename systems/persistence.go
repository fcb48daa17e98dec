package systems

import (
	"encoding/json"
	"log"
	"strconv"

	"github.com/quasilyte/gdata"
)

const bestScoreKey = "highscore"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Muted      bool `json:"muted"`
	Fullscreen bool `json:"fullscreen"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for best-score and
// settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "gravibox",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadBestScore reads the stored best score. Absent or unparseable data
// is silently treated as zero.
func LoadBestScore() int {
	if !gdataInitialized || gdataManager == nil {
		return 0
	}

	data, err := gdataManager.LoadItem(bestScoreKey)
	if err != nil || len(data) == 0 {
		return 0
	}

	best, err := strconv.Atoi(string(data))
	if err != nil || best < 0 {
		return 0
	}
	return best
}

// SaveBestScore writes a newly achieved best score to disk
func SaveBestScore(score int) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	if err := gdataManager.SaveItem(bestScoreKey, []byte(strconv.Itoa(score))); err != nil {
		log.Printf("Warning: Could not save best score: %v", err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}
