package domain

// AppSetting is one key/value row of the app_settings table. Three score
// thresholds and the main-page order are multiplexed onto this table.
type AppSetting struct {
	Key   string `gorm:"column:key;primaryKey;size:64" json:"key"`
	Value string `gorm:"column:value;size:255" json:"value"`
}

func (AppSetting) TableName() string {
	return "app_settings"
}

// Setting keys
const (
	SettingTopScore      = "top_score_threshold"
	SettingArchiveScore  = "archive_score"
	SettingAutoDelete    = "auto_delete_score"
	SettingMainPageOrder = "main_page_default_order"
)

// Defaults used when no row exists for a key
const (
	DefaultTopScoreThreshold = 25
	DefaultArchiveScore      = 500
	DefaultAutoDeleteScore   = -10
)

// Main-page ordering modes
const (
	MainPageOrderRecent = "recent"
	MainPageOrderTop    = "top"
)

// ScoreThresholds are the two thresholds every listing read needs
type ScoreThresholds struct {
	TopScoreThreshold int `json:"topScoreThreshold"`
	ArchiveScore      int `json:"archiveScore"`
}

// SettingsResponse is the admin settings document
type SettingsResponse struct {
	TopScoreThreshold int    `json:"topScoreThreshold"`
	ArchiveScore      int    `json:"archiveScore"`
	AutoDeleteScore   int    `json:"autoDeleteScore"`
	MainPageOrder     string `json:"mainPageOrder"`
}

// UpdateSettingsRequest carries partial settings updates; nil fields are
// left untouched.
type UpdateSettingsRequest struct {
	TopScoreThreshold *int    `json:"topScoreThreshold"`
	ArchiveScore      *int    `json:"archiveScore"`
	AutoDeleteScore   *int    `json:"autoDeleteScore"`
	MainPageOrder     *string `json:"mainPageOrder"`
}
