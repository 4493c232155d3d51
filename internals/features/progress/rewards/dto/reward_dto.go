package dto

type DrawResult struct {
	Reward      string `json:"reward"`
	NewPoints   int    `json:"new_points"`
	NewSpins    int    `json:"new_spins"`
	PointsAdded int    `json:"points_added"`
}
