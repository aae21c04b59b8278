package domain

import "strings"

// AllowedIconKeys is the fixed set of icon identifiers the frontend can
// render. Anything outside this list (after legacy translation) is rejected.
var AllowedIconKeys = []string{
	"grid",
	"briefcase",
	"users",
	"settings",
	"chart",
	"database",
	"file",
	"calendar",
	"message",
	"shield",
	"globe",
	"link",
	"shop",
	"credit-card",
	"box",
}

// legacyIconMap translates two-letter icon codes from the first deployment
// generation to current keys.
var legacyIconMap = map[string]string{
	"TS": "shop",
	"TB": "grid",
	"EX": "credit-card",
}

var allowedIconSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(AllowedIconKeys))
	for _, k := range AllowedIconKeys {
		set[k] = struct{}{}
	}
	return set
}()

// NormalizeIconKey maps a raw stored or submitted icon value to an
// allow-listed key. It returns "" when the value is empty or unknown.
func NormalizeIconKey(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if _, ok := allowedIconSet[value]; ok {
		return value
	}
	if mapped, ok := legacyIconMap[value]; ok {
		return mapped
	}
	return ""
}

// IsAllowedIconKey reports whether raw resolves to an allow-listed icon key.
func IsAllowedIconKey(raw string) bool {
	return NormalizeIconKey(raw) != ""
}
