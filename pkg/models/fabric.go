package models

// Default fabric properties.
const (
	DefaultFabricWidth  uint16 = 60
	DefaultFabricHeight uint16 = 80
	DefaultFabricSPI    uint16 = 14
	DefaultFabricKind          = "Aida"
	DefaultFabricName          = "White"
	DefaultFabricColor         = "FFFFFF"
)

// Fabric describes the cloth a pattern is stitched on. Width and height are
// counted in stitches; SPI is the (x, y) stitches-per-inch density. Color is
// an RGB hex string without the leading #.
type Fabric struct {
	Width  uint16    `json:"width"`
	Height uint16    `json:"height"`
	SPI    [2]uint16 `json:"spi"`
	Kind   string    `json:"kind"`
	Name   string    `json:"name"`
	Color  string    `json:"color"`
}

// DefaultFabric returns a 60x80 white Aida at 14x14 stitches per inch.
func DefaultFabric() Fabric {
	return Fabric{
		Width:  DefaultFabricWidth,
		Height: DefaultFabricHeight,
		SPI:    [2]uint16{DefaultFabricSPI, DefaultFabricSPI},
		Kind:   DefaultFabricKind,
		Name:   DefaultFabricName,
		Color:  DefaultFabricColor,
	}
}
