package icons

// Capability selects the glyph shown for an advertised product capability.
type Capability string

const (
	CapabilityChat    Capability = "chat"
	CapabilityVision  Capability = "vision"
	CapabilityVoice   Capability = "voice"
	CapabilityVideo   Capability = "video"
	CapabilityActions Capability = "actions"
	CapabilitySafety  Capability = "safety"
)

// Definition pairs a capability with its Lucide glyph.
type Definition struct {
	Capability Capability
	Glyph      string
}

// Catalog order is the feature grid order.
var catalog = []Definition{
	{Capability: CapabilityChat, Glyph: "message-square"},
	{Capability: CapabilityVision, Glyph: "image"},
	{Capability: CapabilityVoice, Glyph: "mic"},
	{Capability: CapabilityVideo, Glyph: "video"},
	{Capability: CapabilityActions, Glyph: "wand-2"},
	{Capability: CapabilitySafety, Glyph: "shield-check"},
}

// Catalog returns a copy of the capability catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}
