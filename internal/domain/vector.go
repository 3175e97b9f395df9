package domain

// Vector holds the five behavioural dimensions shared by user preferences
// and bet attributes. All components live in [0,1].
type Vector struct {
	Strategic   float64 `db:"strategic" json:"strategic"`
	Creative    float64 `db:"creative" json:"creative"`
	Social      float64 `db:"social" json:"social"`
	Competitive float64 `db:"competitive" json:"competitive"`
	Quick       float64 `db:"quick" json:"quick"`
}

// DefaultVector is the neutral profile assigned at creation.
func DefaultVector() Vector {
	return Vector{Strategic: 0.5, Creative: 0.5, Social: 0.5, Competitive: 0.5, Quick: 0.5}
}

// Blend moves v toward target by alpha: v*(1-alpha) + target*alpha.
// A convex combination, so components stay in [0,1] when both operands do.
func (v Vector) Blend(target Vector, alpha float64) Vector {
	keep := 1 - alpha
	return Vector{
		Strategic:   v.Strategic*keep + target.Strategic*alpha,
		Creative:    v.Creative*keep + target.Creative*alpha,
		Social:      v.Social*keep + target.Social*alpha,
		Competitive: v.Competitive*keep + target.Competitive*alpha,
		Quick:       v.Quick*keep + target.Quick*alpha,
	}
}

// Dot is the un-normalized dot product used as the recommendation score.
func (v Vector) Dot(other Vector) float64 {
	return v.Strategic*other.Strategic +
		v.Creative*other.Creative +
		v.Social*other.Social +
		v.Competitive*other.Competitive +
		v.Quick*other.Quick
}
