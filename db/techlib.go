package db

// LayerType classifies a routing layer the way LEF's LAYER TYPE does.
type LayerType int

const (
	LayerUndefined LayerType = iota
	LayerRouting
	LayerCut
	LayerMasterslice
	LayerOverlap
)

// PreferredDirection is a routing layer's preferred wiring direction.
type PreferredDirection int

const (
	DirNone PreferredDirection = iota
	DirHorizontal
	DirVertical
)

// Layer is one entry of the technology's routing stack.
type Layer struct {
	Name              string
	Type              LayerType
	PreferredDir      PreferredDirection
	PitchNM           int64
	WidthNM           int64
	SpacingNM         int64
	ResistanceOhmSq   float64
	CapacitancePFUM2  float64
	ThicknessNM       int64
	MinAreaUM2        float64
}

// SiteClass classifies a Site the way LEF's SITE CLASS does.
type SiteClass int

const (
	SiteCore SiteClass = iota
	SitePad
)

// Site is the fundamental placement grid unit.
type Site struct {
	Name     string
	Class    SiteClass
	Width    int64
	Height   int64
	Symmetry SymmetryFlags
}

// TechLib holds the process technology description: layers, sites, and
// the single manufacturing grid shared by all of them.
type TechLib struct {
	Layers            []Layer
	Sites             []Site
	ManufacturingGrid int64 // nm
}

// LayerByName returns the named layer, or ok=false if absent.
func (t *TechLib) LayerByName(name string) (Layer, bool) {
	for _, l := range t.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return Layer{}, false
}

// SiteByName returns the named site, or ok=false if absent.
func (t *TechLib) SiteByName(name string) (Site, bool) {
	for _, s := range t.Sites {
		if s.Name == name {
			return s, true
		}
	}
	return Site{}, false
}
