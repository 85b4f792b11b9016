package config

import (
	"os"
	"strings"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName   string
	Port      string
	Env       string
	Debug     bool
	MediaRoot string
	MediaURL  string

	// Language handling. DefaultLanguage is used when nothing else
	// resolves; Languages is the whitelist for the ?language param.
	DefaultLanguage    string
	Languages          []string
	LanguageSessionKey string

	// Resize-on-upload bounds. Zero disables the corresponding bound.
	MaxImageWidth  int
	MaxImageHeight int
}

// HasLanguage reports whether lang is one of the configured languages.
func (c *Config) HasLanguage(lang string) bool {
	for _, l := range c.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		languages := []string{"en"}
		if raw := os.Getenv("LANGUAGES"); raw != "" {
			languages = strings.Split(raw, ",")
			for i := range languages {
				languages[i] = strings.TrimSpace(languages[i])
			}
		}
		AppConfig = &Config{
			AppName:            GetEnv("APP_NAME", "klaatu"),
			Port:               GetEnv("PORT", "8080"),
			Env:                os.Getenv("APP_ENV"),
			Debug:              os.Getenv("DEBUG") == "true",
			MediaRoot:          GetEnv("MEDIA_ROOT", "media"),
			MediaURL:           GetEnv("MEDIA_URL", "/media/"),
			DefaultLanguage:    GetEnv("LANGUAGE_CODE", "en"),
			Languages:          languages,
			LanguageSessionKey: GetEnv("LANGUAGE_CODE_SESSION_KEY", "language"),
			MaxImageWidth:      GetEnvInt("MAX_IMAGE_WIDTH", 1920),
			MaxImageHeight:     GetEnvInt("MAX_IMAGE_HEIGHT", 1920),
		}
		if !AppConfig.HasLanguage(AppConfig.DefaultLanguage) {
			AppConfig.Languages = append(AppConfig.Languages, AppConfig.DefaultLanguage)
		}
	})
}
