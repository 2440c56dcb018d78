package models

// Settings holds the preferences shown on the settings screen
type Settings struct {
	Notifications     bool   `json:"notifications"`
	SoundEnabled      bool   `json:"soundEnabled"`
	DataSharing       bool   `json:"dataSharing"`
	AutoBackup        bool   `json:"autoBackup"`
	ShowSensitiveData bool   `json:"showSensitiveData"`
	Language          string `json:"language"`
	Theme             string `json:"theme"` // System, Light or Dark
}
