package domain

// DashboardSummary is derived from the raw product and transaction lists.
// All values are computed in a single pass; nothing here is persisted.
type DashboardSummary struct {
	// TotalSales sums amounts of paid transactions, in minor currency units.
	TotalSales int64 `json:"total_sales"`
	// TotalProducts is the catalog size as returned by the provider.
	TotalProducts int `json:"total_products"`
	// TotalTransactions counts every transaction regardless of status.
	TotalTransactions int `json:"total_transactions"`
	// TotalCustomers counts distinct customer emails (exact match).
	TotalCustomers int `json:"total_customers"`
	// RecentTransactions is the first five transactions in provider order,
	// which is trusted to be newest-first.
	RecentTransactions []Transaction `json:"recent_transactions"`
}
