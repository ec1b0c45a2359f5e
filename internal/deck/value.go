package deck

import "fmt"

// Value is the blackjack point value of a card. Most cards carry a single
// fixed value; an ace is flexible and carries a low and a high value.
// Consumers should branch on Fixed/Flexible rather than guessing.
type Value struct {
	low      int
	high     int
	flexible bool
}

// FixedValue returns a single-valued card value
func FixedValue(n int) Value {
	return Value{low: n, high: n}
}

// FlexibleValue returns a dual-valued card value (aces)
func FlexibleValue(low, high int) Value {
	return Value{low: low, high: high, flexible: true}
}

// Fixed reports the single value, or false if the value is flexible
func (v Value) Fixed() (int, bool) {
	if v.flexible {
		return 0, false
	}
	return v.low, true
}

// Flexible reports the low and high values, or false if the value is fixed
func (v Value) Flexible() (low, high int, ok bool) {
	if !v.flexible {
		return 0, 0, false
	}
	return v.low, v.high, true
}

// Low returns the smallest value the card can count as
func (v Value) Low() int {
	return v.low
}

// String returns the string representation of a value (e.g., "10" or "1/11")
func (v Value) String() string {
	if v.flexible {
		return fmt.Sprintf("%d/%d", v.low, v.high)
	}
	return fmt.Sprintf("%d", v.low)
}
