package domain

// DefaultNitroEndpoint is used until the operator saves an endpoint of their
// own. Must end with a trailing slash; endpoint paths are appended verbatim.
const DefaultNitroEndpoint = "https://api.nitropagamentos.com/api/"

// NitroConfig holds the primary provider credentials.
type NitroConfig struct {
	Endpoint string `json:"endpoint"`
	APIToken string `json:"api_token"`
}

// MercadoPagoConfig holds the optional secondary provider credentials.
type MercadoPagoConfig struct {
	AccessToken string `json:"access_token"`
	PublicKey   string `json:"public_key"`
}

// APIConfig is the locally persisted connection configuration. It is the only
// entity this service owns; everything else lives at the provider.
type APIConfig struct {
	Nitro       NitroConfig        `json:"nitro"`
	MercadoPago *MercadoPagoConfig `json:"mercadopago,omitempty"`
}

// DefaultAPIConfig is returned whenever no config has been saved yet or the
// stored entry cannot be decoded.
func DefaultAPIConfig() APIConfig {
	return APIConfig{Nitro: NitroConfig{Endpoint: DefaultNitroEndpoint}}
}

// IsConfigured reports whether data-fetching views may call the provider.
// An empty token means unconfigured regardless of the endpoint.
func (c APIConfig) IsConfigured() bool {
	return c.Nitro.APIToken != ""
}

// NitroUpdate is a typed partial update for the primary provider group.
// Nil fields keep their stored value.
type NitroUpdate struct {
	Endpoint *string `json:"endpoint,omitempty"`
	APIToken *string `json:"api_token,omitempty"`
}

// MercadoPagoUpdate is a typed partial update for the secondary provider
// group.
type MercadoPagoUpdate struct {
	AccessToken *string `json:"access_token,omitempty"`
	PublicKey   *string `json:"public_key,omitempty"`
}

// ConnectionTestResult is transient state returned by the connection tester;
// it is never persisted.
type ConnectionTestResult struct {
	OK        bool   `json:"ok"`
	Status    int    `json:"status,omitempty"`
	Error     string `json:"error,omitempty"`
	LatencyMs int64  `json:"latency_ms"`
}
