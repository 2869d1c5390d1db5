package schema

// QuoteLine is one priced component of a quote breakdown.
type QuoteLine struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

// Quote is the pricing engine's answer. Days and DailyRate are zero for
// services without a day multiplier; checkout pages re-derive their display
// data from these fields instead of carrying totals across navigation.
type Quote struct {
	Type         ServiceType `json:"type"`
	Days         int         `json:"days,omitempty"`
	DailyRate    int         `json:"dailyRate,omitempty"`
	BasePrice    int         `json:"basePrice"`
	ClassUpgrade int         `json:"classUpgrade,omitempty"`
	AddOns       []QuoteLine `json:"addOns"`
	Total        int         `json:"total"`
}
