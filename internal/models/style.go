package models

// StyleAttributes lists every recognized style key, in the order they are
// written to the config file. Color attributes theme the result list; font
// attributes are accepted and persisted for external presentation use.
var StyleAttributes = []string{
	"title",
	"comment",
	"background",
	"highlight",
	"match",
	"regular",
	"bold",
	"smallregular",
	"smallbold",
	"large",
}

// DefaultStyle returns the built-in style attribute values.
func DefaultStyle() map[string]string {
	return map[string]string{
		"title":        "#111111",
		"comment":      "#999999",
		"background":   "#ffffff",
		"highlight":    "#f8c291",
		"match":        "#111111",
		"regular":      "Ubuntu,sans-11",
		"bold":         "Ubuntu,sans-11:bold",
		"smallregular": "Ubuntu,sans-10",
		"smallbold":    "Ubuntu,sans-10:bold",
		"large":        "Ubuntu,sans-20:light",
	}
}

// IsStyleAttribute reports whether key is a recognized style attribute.
func IsStyleAttribute(key string) bool {
	for _, attr := range StyleAttributes {
		if key == attr {
			return true
		}
	}
	return false
}
