package dto

import "math"

// UpdatePointsRequest: body POST /api/u/update-points.
// Points diterima sebagai angka JSON apa pun (100, 1e2, 100.0); harus bulat.
type UpdatePointsRequest struct {
	Points *float64 `json:"points" validate:"required,min=0"`
}

// WholePoints mengembalikan Points sebagai int; ok=false kalau pecahan atau
// di luar jangkauan int32.
func (r UpdatePointsRequest) WholePoints() (int, bool) {
	if r.Points == nil {
		return 0, false
	}
	v := *r.Points
	if v != math.Trunc(v) || v > math.MaxInt32 {
		return 0, false
	}
	return int(v), true
}

// AwardResult: hasil satu award poin ke ledger.
type AwardResult struct {
	NewPoints   int `json:"new_points"`
	NewSpins    int `json:"new_spins"`
	PointsAdded int `json:"points_added"`
	SpinsEarned int `json:"spins_earned"`
}
