package timeline

import "fmt"

// Alignment places cards on one or both sides of the line.
type Alignment int

const (
	AlignAlternating Alignment = iota
	AlignLeft
	AlignRight
)

// ParseAlignment maps a configuration name to an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "", "alternating":
		return AlignAlternating, nil
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	default:
		return 0, fmt.Errorf("timeline: unknown alignment %q", s)
	}
}

func (a Alignment) String() string {
	switch a {
	case AlignAlternating:
		return "alternating"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "alternating"
	}
}

// LeftSide reports whether card i sits left of the line.
func (a Alignment) LeftSide(i int) bool {
	switch a {
	case AlignLeft:
		return true
	case AlignRight:
		return false
	case AlignAlternating:
		return i%2 == 0
	default:
		return i%2 == 0
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(b []byte) error {
	v, err := ParseAlignment(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// CardVariant is the card surface treatment.
type CardVariant int

const (
	CardDefault CardVariant = iota
	CardElevated
	CardOutlined
	CardFilled
)

// ParseCardVariant maps a configuration name to a CardVariant.
func ParseCardVariant(s string) (CardVariant, error) {
	switch s {
	case "", "default":
		return CardDefault, nil
	case "elevated":
		return CardElevated, nil
	case "outlined":
		return CardOutlined, nil
	case "filled":
		return CardFilled, nil
	default:
		return 0, fmt.Errorf("timeline: unknown card variant %q", s)
	}
}

func (v CardVariant) String() string {
	switch v {
	case CardDefault:
		return "default"
	case CardElevated:
		return "elevated"
	case CardOutlined:
		return "outlined"
	case CardFilled:
		return "filled"
	default:
		return "default"
	}
}

// CSS returns the inline declarations for the variant.
func (v CardVariant) CSS() string {
	switch v {
	case CardElevated:
		return "background:#111827;box-shadow:0 10px 30px rgba(0,0,0,.45);border:1px solid transparent;"
	case CardOutlined:
		return "background:transparent;border:2px solid #22d3ee;"
	case CardFilled:
		return "background:linear-gradient(135deg,#0e7490,#1e3a8a);border:1px solid transparent;"
	case CardDefault:
		return "background:#0f172a;border:1px solid #1f2937;"
	default:
		return "background:#0f172a;border:1px solid #1f2937;"
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *CardVariant) UnmarshalText(b []byte) error {
	p, err := ParseCardVariant(string(b))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// CardEffect is the hover treatment of a card.
type CardEffect int

const (
	EffectNone CardEffect = iota
	EffectGlow
	EffectShadow
	EffectBounce
)

// ParseCardEffect maps a configuration name to a CardEffect.
func ParseCardEffect(s string) (CardEffect, error) {
	switch s {
	case "", "none":
		return EffectNone, nil
	case "glow":
		return EffectGlow, nil
	case "shadow":
		return EffectShadow, nil
	case "bounce":
		return EffectBounce, nil
	default:
		return 0, fmt.Errorf("timeline: unknown card effect %q", s)
	}
}

func (e CardEffect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectGlow:
		return "glow"
	case EffectShadow:
		return "shadow"
	case EffectBounce:
		return "bounce"
	default:
		return "none"
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *CardEffect) UnmarshalText(b []byte) error {
	p, err := ParseCardEffect(string(b))
	if err != nil {
		return err
	}
	*e = p
	return nil
}

// Reveal is the entrance animation applied by the browser.
type Reveal int

const (
	RevealFade Reveal = iota
	RevealSlide
	RevealScale
	RevealFlip
	RevealNone
)

// ParseReveal maps a configuration name to a Reveal.
func ParseReveal(s string) (Reveal, error) {
	switch s {
	case "", "fade":
		return RevealFade, nil
	case "slide":
		return RevealSlide, nil
	case "scale":
		return RevealScale, nil
	case "flip":
		return RevealFlip, nil
	case "none":
		return RevealNone, nil
	default:
		return 0, fmt.Errorf("timeline: unknown reveal %q", s)
	}
}

func (r Reveal) String() string {
	switch r {
	case RevealFade:
		return "fade"
	case RevealSlide:
		return "slide"
	case RevealScale:
		return "scale"
	case RevealFlip:
		return "flip"
	case RevealNone:
		return "none"
	default:
		return "fade"
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Reveal) UnmarshalText(b []byte) error {
	p, err := ParseReveal(string(b))
	if err != nil {
		return err
	}
	*r = p
	return nil
}

// Connector is the style of the vertical line between cards.
type Connector int

const (
	ConnectorLine Connector = iota
	ConnectorDots
	ConnectorDashed
)

// ParseConnector maps a configuration name to a Connector.
func ParseConnector(s string) (Connector, error) {
	switch s {
	case "", "line":
		return ConnectorLine, nil
	case "dots":
		return ConnectorDots, nil
	case "dashed":
		return ConnectorDashed, nil
	default:
		return 0, fmt.Errorf("timeline: unknown connector %q", s)
	}
}

func (c Connector) String() string {
	switch c {
	case ConnectorLine:
		return "line"
	case ConnectorDots:
		return "dots"
	case ConnectorDashed:
		return "dashed"
	default:
		return "line"
	}
}

// BorderStyle returns the CSS border-style for the connector.
func (c Connector) BorderStyle() string {
	switch c {
	case ConnectorDots:
		return "dotted"
	case ConnectorDashed:
		return "dashed"
	case ConnectorLine:
		return "solid"
	default:
		return "solid"
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Connector) UnmarshalText(b []byte) error {
	p, err := ParseConnector(string(b))
	if err != nil {
		return err
	}
	*c = p
	return nil
}

// Icon names the glyph drawn in a timeline marker.
type Icon int

const (
	IconCall Icon = iota
	IconCheck
	IconUsers
	IconTarget
	IconChart
	IconZap
	IconAward
	IconCalendar
)

// ParseIcon maps a configuration name to an Icon.
func ParseIcon(s string) (Icon, error) {
	switch s {
	case "call":
		return IconCall, nil
	case "check":
		return IconCheck, nil
	case "users":
		return IconUsers, nil
	case "target":
		return IconTarget, nil
	case "chart":
		return IconChart, nil
	case "zap":
		return IconZap, nil
	case "award":
		return IconAward, nil
	case "calendar", "":
		return IconCalendar, nil
	default:
		return 0, fmt.Errorf("timeline: unknown icon %q", s)
	}
}

func (i Icon) String() string {
	switch i {
	case IconCall:
		return "call"
	case IconCheck:
		return "check"
	case IconUsers:
		return "users"
	case IconTarget:
		return "target"
	case IconChart:
		return "chart"
	case IconZap:
		return "zap"
	case IconAward:
		return "award"
	case IconCalendar:
		return "calendar"
	default:
		return "calendar"
	}
}

// Glyph returns the text symbol drawn for the icon.
func (i Icon) Glyph() string {
	switch i {
	case IconCall:
		return "&#9742;"
	case IconCheck:
		return "&#10003;"
	case IconUsers:
		return "&#9787;"
	case IconTarget:
		return "&#9678;"
	case IconChart:
		return "&#9650;"
	case IconZap:
		return "&#9889;"
	case IconAward:
		return "&#9733;"
	case IconCalendar:
		return "&#9638;"
	default:
		return "&#9638;"
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Icon) UnmarshalText(b []byte) error {
	p, err := ParseIcon(string(b))
	if err != nil {
		return err
	}
	*i = p
	return nil
}

// Style groups the section-wide look settings.
type Style struct {
	Alignment Alignment   `yaml:"alignment"`
	Card      CardVariant `yaml:"card"`
	Effect    CardEffect  `yaml:"effect"`
	Reveal    Reveal      `yaml:"reveal"`
	Connector Connector   `yaml:"connector"`
}
