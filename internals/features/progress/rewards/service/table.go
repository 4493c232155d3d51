package service

import (
	"errors"
	"fmt"
)

// TryAgain: label yang tidak memakan spin.
const TryAgain = "Try Again"

type Reward struct {
	Label       string  `json:"label"`
	Weight      float64 `json:"weight"`
	BonusPoints int     `json:"bonus_points"`
}

// Table: urutan entri menentukan hasil Pick untuk r yang sama.
type Table []Reward

// DefaultTable: bobot dalam persen, total 100.
var DefaultTable = Table{
	{Label: "10% Discount", Weight: 20},
	{Label: "50% Discount", Weight: 5},
	{Label: "$50 Gift Card", Weight: 5},
	{Label: "$10 Gift Card", Weight: 30},
	{Label: "Free Online Doctor Consultation", Weight: 10},
	{Label: "Free Dental Appointment", Weight: 10},
	{Label: TryAgain, Weight: 20},
}

func (t Table) Validate() error {
	if len(t) == 0 {
		return errors.New("reward table kosong")
	}
	for i, r := range t {
		if r.Label == "" {
			return fmt.Errorf("reward #%d tanpa label", i)
		}
		if !(r.Weight > 0) {
			return fmt.Errorf("reward %q: weight harus > 0", r.Label)
		}
		if r.BonusPoints < 0 {
			return fmt.Errorf("reward %q: bonus_points negatif", r.Label)
		}
	}
	return nil
}

func (t Table) TotalWeight() float64 {
	var sum float64
	for _, r := range t {
		sum += r.Weight
	}
	return sum
}

// Pick: r di [0, total). Kurangi bobot berurutan, ambil entri pertama yang
// membuat r <= 0; entri terakhir sebagai jaring pengaman.
func (t Table) Pick(r float64) Reward {
	for _, reward := range t {
		r -= reward.Weight
		if r <= 0 {
			return reward
		}
	}
	return t[len(t)-1]
}
