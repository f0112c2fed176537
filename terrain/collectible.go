package terrain

// Kind identifies a collectible type
type Kind uint8

const (
	KindCoin Kind = iota
	KindFuel
)

func (k Kind) String() string {
	switch k {
	case KindCoin:
		return "coin"
	case KindFuel:
		return "fuel"
	default:
		return "unknown"
	}
}

// Collectible is a pickup placed above a terrain sample
// Consumed moves false -> true once and never back
type Collectible struct {
	ID       uint64  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Kind     Kind    `json:"kind"`
	Value    int     `json:"value"`
	Consumed bool    `json:"consumed"`
}
