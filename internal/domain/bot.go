package domain

// BotConfig is the second locally persisted entry: settings for the Discord
// sales bot template the dashboard can emit. The bot itself never runs here;
// the settings only get substituted into generated source code.
type BotConfig struct {
	Token    string      `json:"token"`
	Prefix   string      `json:"prefix"`
	Channels BotChannels `json:"channels"`
	Roles    BotRoles    `json:"roles"`
	Messages BotMessages `json:"messages"`
}

// BotChannels maps bot features to Discord channel ids.
type BotChannels struct {
	Sales   string `json:"sales"`
	Logs    string `json:"logs"`
	Support string `json:"support"`
}

// BotRoles maps permission tiers to Discord role ids.
type BotRoles struct {
	Admin     string `json:"admin"`
	Moderator string `json:"moderator"`
	Customer  string `json:"customer"`
}

// BotMessages are the operator-editable reply texts.
type BotMessages struct {
	Welcome         string `json:"welcome"`
	PurchaseSuccess string `json:"purchase_success"`
	PurchaseError   string `json:"purchase_error"`
}

// DefaultBotConfig mirrors the defaults the dashboard ships with.
func DefaultBotConfig() BotConfig {
	return BotConfig{
		Prefix: "!",
		Messages: BotMessages{
			Welcome:         "Bem-vindo ao nosso servidor! Use !produtos para ver nossos produtos.",
			PurchaseSuccess: "✅ Compra realizada com sucesso! Você receberá o produto em breve.",
			PurchaseError:   "❌ Erro ao processar a compra. Tente novamente ou entre em contato com o suporte.",
		},
	}
}

// BotConfigUpdate is a typed partial update; each nested group is updated
// field by field so sibling values are never clobbered.
type BotConfigUpdate struct {
	Token    *string           `json:"token,omitempty"`
	Prefix   *string           `json:"prefix,omitempty"`
	Channels *BotChannelsPatch `json:"channels,omitempty"`
	Roles    *BotRolesPatch    `json:"roles,omitempty"`
	Messages *BotMessagesPatch `json:"messages,omitempty"`
}

// BotChannelsPatch updates individual channel ids.
type BotChannelsPatch struct {
	Sales   *string `json:"sales,omitempty"`
	Logs    *string `json:"logs,omitempty"`
	Support *string `json:"support,omitempty"`
}

// BotRolesPatch updates individual role ids.
type BotRolesPatch struct {
	Admin     *string `json:"admin,omitempty"`
	Moderator *string `json:"moderator,omitempty"`
	Customer  *string `json:"customer,omitempty"`
}

// BotMessagesPatch updates individual reply texts.
type BotMessagesPatch struct {
	Welcome         *string `json:"welcome,omitempty"`
	PurchaseSuccess *string `json:"purchase_success,omitempty"`
	PurchaseError   *string `json:"purchase_error,omitempty"`
}
