package parts

import (
	"log"
	"os"

	"github.com/Eboreg/klaatu-go/config"
	"github.com/Eboreg/klaatu-go/core/cache"
)

const criticalCSSKey = "parts:critical_css"

// GetCriticalCSS reads the critical CSS file and returns it as a string.
func GetCriticalCSS() (string, error) {
	css, err := os.ReadFile(config.GetEnv("CRITICAL_CSS", "assets/critical.css"))
	if err != nil {
		log.Println("Critical CSS error:", err)
		return "", err
	}
	return string(css), nil
}

// GetCriticalCSSCached returns the critical CSS from the fragment cache,
// reading the file at most once every 10 minutes.
func GetCriticalCSSCached() (string, error) {
	c := cache.GetInstance()
	if v, ok := c.Get(criticalCSSKey); ok {
		return v.(string), nil
	}
	css, err := GetCriticalCSS()
	if err != nil {
		return "", err
	}
	c.Set(criticalCSSKey, css, 600, []string{"assets"})
	return css, nil
}
