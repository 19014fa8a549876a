package core

import "math/rand"

// Marker channel range for generated tile colors
const (
	markerChannelMin = 0.2
	markerChannelMax = 0.8
)

// RGB stores explicit float64 color channels, decoupled from any renderer
// Equality is exact per-channel comparison; markers read back from the grid
// must compare identical to the table entry that produced them
type RGB struct {
	R, G, B float64
}

// Equal reports exact per-channel equality, no tolerance
func (c RGB) Equal(o RGB) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B
}

// RandomRGB draws a fresh marker color with each channel uniform
// in [0.2, 0.8). Distinctness across draws is NOT guaranteed here;
// the pattern table enforces it at construction
func RandomRGB(rng *rand.Rand) RGB {
	span := markerChannelMax - markerChannelMin
	return RGB{
		R: markerChannelMin + rng.Float64()*span,
		G: markerChannelMin + rng.Float64()*span,
		B: markerChannelMin + rng.Float64()*span,
	}
}
