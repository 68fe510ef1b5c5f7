package dto

type DashboardStatsDTO struct {
	TotalProperties        uint64            `json:"total_properties"`
	ActiveProperties       uint64            `json:"active_properties"`
	TotalDepartments       uint64            `json:"total_departments"`
	TotalCategories        uint64            `json:"total_categories"`
	PropertiesByDepartment map[string]uint64 `json:"properties_by_department"`
	RecentTransfers        []TransferDTO     `json:"recent_transfers"`
}
