package domain

// ClientMetrics is a point-in-time snapshot of provider-call health served to
// the dashboard's metrics panel.
type ClientMetrics struct {
	ProviderCalls  int64   `json:"provider_calls"`
	ProviderErrors int64   `json:"provider_errors"`
	ErrorRate      float64 `json:"error_rate"`
	CacheHitRate   float64 `json:"cache_hit_rate"`
}
