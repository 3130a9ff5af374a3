package humandesign

// Type is the energy type derived from center definition.
type Type string

// Types.
const (
	Reflector            Type = "Reflector"
	Generator            Type = "Generator"
	ManifestingGenerator Type = "Manifesting Generator"
	Manifestor           Type = "Manifestor"
	Projector            Type = "Projector"
)

// Authority is the inner decision-making authority.
type Authority string

// Authorities in priority order.
const (
	EmotionalAuthority     Authority = "Emotional"
	SacralAuthority        Authority = "Sacral"
	SplenicAuthority       Authority = "Splenic"
	EgoManifestedAuthority Authority = "Ego Manifested"
	EgoProjectedAuthority  Authority = "Ego Projected"
	SelfProjectedAuthority Authority = "Self-Projected"
	LunarAuthority         Authority = "Lunar"
	MentalAuthority        Authority = "Mental"
)

// Definition describes how many separate groups the defined centers form.
type Definition string

// Definitions.
const (
	NoDefinition   Definition = "None"
	Single         Definition = "Single"
	Split          Definition = "Split"
	TripleSplit    Definition = "Triple Split"
	QuadrupleSplit Definition = "Quadruple Split"
)

// ActiveChannels returns the channels whose two gates are both in gates,
// in table order.
func ActiveChannels(gates GateSet) []Channel {
	var out []Channel
	for _, ch := range Channels {
		if gates.Has(ch.A) && gates.Has(ch.B) {
			out = append(out, ch)
		}
	}
	return out
}

// DefinedCenters returns the centers touched by at least one of the
// channels, in crown-to-root order.
func DefinedCenters(channels []Channel) []Center {
	g := newCenterGraph(channels)
	var out []Center
	for _, c := range AllCenters {
		if g.defined(c) {
			out = append(out, c)
		}
	}
	return out
}

// Classify derives type and authority from the active channels.
func Classify(channels []Channel) (Type, Authority) {
	g := newCenterGraph(channels)
	t := classifyType(g)
	return t, classifyAuthority(g, t)
}

// DefinitionOf reports the split definition of the active channels.
func DefinitionOf(channels []Channel) Definition {
	switch newCenterGraph(channels).components() {
	case 0:
		return NoDefinition
	case 1:
		return Single
	case 2:
		return Split
	case 3:
		return TripleSplit
	default:
		return QuadrupleSplit
	}
}

func classifyType(g *centerGraph) Type {
	motorToThroat := false
	for _, m := range motors {
		if g.reaches(m, Throat) {
			motorToThroat = true
			break
		}
	}

	switch {
	case len(g.parent) == 0:
		return Reflector
	case g.defined(Sacral) && motorToThroat:
		return ManifestingGenerator
	case g.defined(Sacral):
		return Generator
	case motorToThroat:
		return Manifestor
	default:
		return Projector
	}
}

func classifyAuthority(g *centerGraph, t Type) Authority {
	switch {
	case g.defined(SolarPlexus):
		return EmotionalAuthority
	case g.defined(Sacral):
		return SacralAuthority
	case g.defined(Spleen):
		return SplenicAuthority
	case g.defined(Heart) && g.reaches(Heart, Throat):
		return EgoManifestedAuthority
	case g.defined(Heart):
		return EgoProjectedAuthority
	case g.defined(G):
		return SelfProjectedAuthority
	case t == Reflector:
		return LunarAuthority
	default:
		return MentalAuthority
	}
}
