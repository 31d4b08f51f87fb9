package engine

// Fixed content tables. Nothing here changes at runtime; callers get copies.

// Character is one member of the fixed cast.
type Character struct {
	Name        string
	Emoji       string
	Catchphrase string
	Color       string // accent, hex
}

// Effect is the visual effect tag applied to a scene.
type Effect string

const (
	EffectShake  Effect = "shake"
	EffectFlash  Effect = "flash"
	EffectWiggle Effect = "wiggle"
	EffectGlitch Effect = "glitch"
)

var AllEffects = []Effect{EffectShake, EffectFlash, EffectWiggle, EffectGlitch}

// Background describes a scene backdrop as a named gradient.
type Background struct {
	Name  string
	Stops []string
}

const (
	// ClosingLine ends every script.
	ClosingLine = "🎬 FINE! 🇮🇹"
	// FallbackEmoji is shown when a scene has no character to borrow an emoji from.
	FallbackEmoji = "🇮🇹"
)

var roster = []Character{
	{Name: "Bombardiro Coccodrillo", Emoji: "🐊💣", Catchphrase: "BOMBARDINO!", Color: "#ff6b6b"},
	{Name: "Tralalero Tralala", Emoji: "🎵🕺", Catchphrase: "TRA LA LA LERO!", Color: "#4ecdc4"},
	{Name: "Lirili Larila", Emoji: "🎶✨", Catchphrase: "LIRILI LARILAAAA!", Color: "#ffe66d"},
	{Name: "Tung Tung Tung Sahur", Emoji: "🥁🌙", Catchphrase: "TUNG TUNG TUNG!", Color: "#95e1d3"},
	{Name: "Bombombini Gusini", Emoji: "🦆💥", Catchphrase: "BOMBOMBINI!", Color: "#f38181"},
	{Name: "Cappuccino Assassino", Emoji: "☕🔪", Catchphrase: "ASSASSINO!", Color: "#aa96da"},
	{Name: "Brr Brr Patapim", Emoji: "❄️👋", Catchphrase: "PATAPIM PATAPAM!", Color: "#a8e6cf"},
	{Name: "Chimpanzini Bananini", Emoji: "🐵🍌", Catchphrase: "BANANINI!", Color: "#ffd93d"},
	{Name: "Spaghettini Macaronini", Emoji: "🍝🤌", Catchphrase: "MAMA MIA!", Color: "#ff9a76"},
	{Name: "Pizzarello Mozzarello", Emoji: "🍕🧀", Catchphrase: "MOZZARELLO!", Color: "#f5cac3"},
	{Name: "Gelato Tremendo", Emoji: "🍦😱", Catchphrase: "TREMENDOOO!", Color: "#dcedc1"},
	{Name: "Espressino Violentino", Emoji: "☕💪", Catchphrase: "VIOLENTINO!", Color: "#6c5b7b"},
}

// phrases are the filler lines placed between characters. Three profane lines from the
// web version are replaced by "Che roba ragazzi!", "Santo cielo che spettacolo!" and "Ma che fai?!".
var phrases = []string{
	"Mamma mia che disastro! 🤌",
	"Che casino tremendo!",
	"Madonna santa!",
	"Porca miseria!",
	"Che schifo magnifico!",
	"Bellissimo caos!",
	"Fantastico assurdo!",
	"Incredibile follia!",
	"Pazzesco totale!",
	"Che roba ragazzi!",
	"Santo cielo che spettacolo!",
	"Ma che fai?!",
}

var sounds = []string{"💥 BOOM", "🎵 DING", "🔔 BOING", "💫 WOOSH", "🎺 HONK", "🥁 DRUM"}

var backgrounds = []Background{
	{Name: "tricolore stripes", Stops: []string{"#009246", "#ffffff", "#ce2b37"}},
	{Name: "radial candy", Stops: []string{"#ff6b6b", "#4ecdc4", "#ffe66d"}},
	{Name: "violet dusk", Stops: []string{"#667eea", "#764ba2"}},
	{Name: "sunset", Stops: []string{"#fc5c7d", "#6a82fb"}},
	{Name: "ocean", Stops: []string{"#00c6ff", "#0072ff"}},
	{Name: "tricolore spin", Stops: []string{"#009246", "#ffffff", "#ce2b37", "#009246"}},
}

// Cast returns a copy of the full roster in its canonical order.
func Cast() []Character {
	out := make([]Character, len(roster))
	copy(out, roster)
	return out
}

// Backgrounds returns a copy of the backdrop table.
func Backgrounds() []Background {
	out := make([]Background, len(backgrounds))
	for i, b := range backgrounds {
		out[i] = Background{Name: b.Name, Stops: append([]string(nil), b.Stops...)}
	}
	return out
}

// DefaultBackground is the backdrop shown before any scene has been picked.
func DefaultBackground() Background { return Backgrounds()[0] }
