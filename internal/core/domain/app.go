package domain

import "time"

// AppType determines which routing field an app uses: internal apps are
// reached through a path on the platform host, external apps through an
// absolute URL.
type AppType string

const (
	AppTypeInternal AppType = "internal"
	AppTypeExternal AppType = "external"
)

// Valid reports whether t is one of the known app types.
func (t AppType) Valid() bool {
	return t == AppTypeInternal || t == AppTypeExternal
}

// App is a launchable application on the dashboard. Exactly one of
// InternalPath / ExternalURL is set, matching Type; the other is nil.
// "Deleting" an app only flips IsActive to false.
type App struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Type         AppType   `json:"type"`
	InternalPath *string   `json:"internalPath"`
	ExternalURL  *string   `json:"externalUrl"`
	Icon         *string   `json:"icon"`
	Version      string    `json:"version"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RoutingTarget returns the path or URL the launcher should open.
func (a *App) RoutingTarget() string {
	if a.Type == AppTypeInternal && a.InternalPath != nil {
		return *a.InternalPath
	}
	if a.Type == AppTypeExternal && a.ExternalURL != nil {
		return *a.ExternalURL
	}
	return ""
}
