package dto

// DashboardResponse resumen del tablero principal.
type DashboardResponse struct {
	Clients          int               `json:"clients"`
	Suppliers        int               `json:"suppliers"`
	Items            int               `json:"items"`
	Documents        int               `json:"documents"`
	PendingRequests  int               `json:"pending_requests"`
	ProjectsByStatus map[string]int    `json:"projects_by_status"`
	RecentProjects   []ProjectResponse `json:"recent_projects"`
}
