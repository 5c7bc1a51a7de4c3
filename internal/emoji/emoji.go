package emoji

import "math"

// https://unicode.org/emoji/charts/full-emoji-list.html
const (
	Target = "🎯"
	Chart  = "📊"

	HalfEclipse  = "🌓"
	FirstEclipse = "🌔"
	FullMoon     = "🌕"
	SunFace      = "🌞"
	Star         = "🌟"

	Error = "🚫"
)

// MapAccuracy maps an accuracy score in [0,1] to an emoji.
func MapAccuracy(value float64) string {
	if value < 0 || value > 1 || math.IsNaN(value) {
		return Error
	}
	if value >= 0.95 {
		return Star
	} else if value >= 0.9 {
		return SunFace
	} else if value >= 0.8 {
		return FullMoon
	} else if value >= 0.6 {
		return FirstEclipse
	}
	return HalfEclipse
}
