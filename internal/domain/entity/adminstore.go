package entity

// PromoCode is a marketing discount code managed from the admin panel
type PromoCode struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Code         string  `json:"code"`
	DiscountRate float64 `json:"discount_rate"`
	IsActive     bool    `json:"is_active"`
	CreatedAt    string  `json:"created_at"`
}

// ChatBan blocks a specific client-contractor pair from chatting
type ChatBan struct {
	ID           string `json:"id"`
	ClientID     string `json:"client_id"`
	ContractorID string `json:"contractor_id"`
	BannedAt     string `json:"banned_at"`
}

// ChatSettings are the global chat feature toggles. DisableChatCompletely
// overrides the other two for consumers but does not clear their stored
// values.
type ChatSettings struct {
	HideChatDuringOffers  bool `json:"hide_chat_during_offers"`
	HideChatAfterAward    bool `json:"hide_chat_after_award"`
	DisableChatCompletely bool `json:"disable_chat_completely"`
}

// Effective returns the toggles as the rest of the system should read them.
func (s ChatSettings) Effective() ChatSettings {
	if s.DisableChatCompletely {
		return ChatSettings{
			HideChatDuringOffers:  true,
			HideChatAfterAward:    true,
			DisableChatCompletely: true,
		}
	}
	return s
}
