package model

type Preferences struct {
	IsDarkMode bool `json:"isDarkMode"`
}
