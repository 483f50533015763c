package config

type Config struct {
	Roots           []string          `json:"roots"`
	IncludeExternal bool              `json:"includeExternal"`
	Terminals       []string          `json:"terminals"`
	Theme           string            `json:"theme"`
	KeyBindings     map[string]string `json:"keyBindings"`
}

type fileConfig struct {
	Roots           []string          `json:"roots"`
	IncludeExternal *bool             `json:"includeExternal"`
	Terminals       []string          `json:"terminals"`
	Theme           *string           `json:"theme"`
	KeyBindings     map[string]string `json:"keyBindings"`
}
