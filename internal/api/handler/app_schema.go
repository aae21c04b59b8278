package handler

type createAppRequest struct {
	Name         string  `json:"name" validate:"required"`
	Slug         string  `json:"slug" validate:"required"`
	Type         string  `json:"type" validate:"required,oneof=internal external"`
	InternalPath string  `json:"internalPath"`
	ExternalURL  string  `json:"externalUrl"`
	IconKey      *string `json:"iconKey"`
	// Icon is the legacy field name still sent by older clients; IconKey
	// wins when both are present.
	Icon     *string `json:"icon"`
	Version  string  `json:"version"`
	IsActive *bool   `json:"isActive"`
}

func (r *createAppRequest) iconValue() (string, bool) {
	if r.IconKey != nil {
		return *r.IconKey, true
	}
	if r.Icon != nil {
		return *r.Icon, true
	}
	return "", false
}

type updateAppRequest struct {
	Name         *string `json:"name"`
	Slug         *string `json:"slug"`
	Type         *string `json:"type" validate:"omitempty,oneof=internal external"`
	InternalPath *string `json:"internalPath"`
	ExternalURL  *string `json:"externalUrl"`
	IconKey      *string `json:"iconKey"`
	Icon         *string `json:"icon"`
	Version      *string `json:"version"`
	IsActive     *bool   `json:"isActive"`
}

func (r *updateAppRequest) iconValue() *string {
	if r.IconKey != nil {
		return r.IconKey
	}
	return r.Icon
}

type appEnvelope struct {
	App appResponse `json:"app"`
}

type listAppsResponse struct {
	Apps []appResponse `json:"apps"`
}
