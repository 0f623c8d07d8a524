package entity

// DashboardCounts conteos agregados para el tablero principal.
type DashboardCounts struct {
	Clients          int
	Suppliers        int
	Items            int
	Documents        int
	PendingRequests  int
	ProjectsByStatus map[ProjectStatus]int
}
