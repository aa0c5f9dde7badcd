package config

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"go.trai.ch/brot/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ColorDTO is a layer color given as [r, g, b] or as a "#rrggbb" hex string.
type ColorDTO domain.Color

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ColorDTO) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		hex := strings.TrimSpace(node.Value)
		if !strings.HasPrefix(hex, "#") {
			hex = "#" + hex
		}
		col, err := colorful.Hex(hex)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "invalid hex color"), "line", node.Line)
		}
		r, g, b := col.RGB255()
		*c = ColorDTO{r, g, b}
		return nil
	case yaml.SequenceNode:
		var channels []int
		if err := node.Decode(&channels); err != nil {
			return err
		}
		if len(channels) != len(c) {
			return zerr.With(zerr.New("color needs exactly three channels"), "line", node.Line)
		}
		for i, v := range channels {
			if v < 0 || v > 255 {
				err := zerr.With(zerr.New("color channel out of range 0..255"), "line", node.Line)
				return zerr.With(err, "value", v)
			}
			c[i] = uint8(v)
		}
		return nil
	default:
		return zerr.With(zerr.New("color must be a sequence or a hex string"), "line", node.Line)
	}
}
