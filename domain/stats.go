package domain

var MessageFailedGetStats = "failed to compute statistics"

// StatsResponse keys mirror the frontend contract. Kg and pieces sums are
// reported separately; they are different units and must never be added.
type (
	RawFoodStats struct {
		InFreezerKg     float64 `json:"inFreezerKg"`
		InFreezerPieces float64 `json:"inFreezerPieces"`
		ConsumedKg      float64 `json:"consumedKg"`
		ConsumedPieces  float64 `json:"consumedPieces"`
	}

	PreparedMealStats struct {
		BagsInFreezer     int64 `json:"bagsInFreezer"`
		PortionsInFreezer int64 `json:"portionsInFreezer"`
		PortionsConsumed  int64 `json:"portionsConsumed"`
	}

	BreastMilkStats struct {
		InFreezerML int64 `json:"inFreezerMl"`
		ConsumedML  int64 `json:"consumedMl"`
	}

	StatsResponse struct {
		RawFood       RawFoodStats      `json:"rawFood"`
		PreparedMeals PreparedMealStats `json:"preparedMeals"`
		BreastMilk    BreastMilkStats   `json:"breastMilk"`
	}
)
