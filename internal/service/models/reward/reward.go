package reward

// Reward represents an item a customer can buy with loyalty points.
type Reward struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	PointsCost  int64  `json:"pointsCost" yaml:"points_cost"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image,omitempty" yaml:"image"`
}

// Affordable reports whether the balance covers the reward.
func (r Reward) Affordable(points int64) bool {
	return points >= r.PointsCost
}
