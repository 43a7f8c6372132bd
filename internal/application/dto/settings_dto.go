package dto

// UpdateSettingsRequest body for PATCH /settings/update.
type UpdateSettingsRequest struct {
	ShopName string `json:"shopName"`
	TRN      string `json:"trn"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

// SettingsResponse shop settings in responses.
type SettingsResponse struct {
	ShopName string `json:"shopName"`
	TRN      string `json:"trn"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}
