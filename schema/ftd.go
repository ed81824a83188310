package schema

import "go.zusi3.dev/fahrpult"

// DATA_FTD attribute ids (command 0x000A): the fuehrerstand-data ("FTD")
// telemetry table (spec.md §6).
const (
	FtdGeschwindigkeit              uint16 = 1
	FtdDruckHauptluftleitung        uint16 = 2
	FtdDruckBremszylinder           uint16 = 3
	FtdDruckHauptluftbehaelter      uint16 = 4
	FtdLuftpresserLaeuft            uint16 = 5
	FtdZugkraftGesamt               uint16 = 9
	FtdOberstrom                    uint16 = 13
	FtdFahrleitungsspannung         uint16 = 14
	FtdMotordrehzahl                uint16 = 15
	FtdUhrzeitStunde                uint16 = 16
	FtdUhrzeitMinute                uint16 = 17
	FtdUhrzeitSekunde               uint16 = 18
	FtdHauptschalter                uint16 = 19
	FtdAfbSollGeschwindigkeit       uint16 = 23
	FtdGesamtweg                    uint16 = 25
	FtdLMSchleudern                 uint16 = 27
	FtdUhrzeitDigital               uint16 = 35
	FtdAfbEinAus                    uint16 = 54
	FtdDatum                        uint16 = 75
	FtdStreckenhoechstgeschwindigkeit uint16 = 77
	FtdSifa                         uint16 = 100
)

// Sifa sub-node (id 100) attribute ids: the vigilance-control ("Sicherheits-
// fahrschaltung") composite.
const (
	SifaBauart          uint16 = 1
	SifaLeuchtmelder    uint16 = 2
	SifaHupe            uint16 = 3
	SifaHauptschalter   uint16 = 4
	SifaStoerschalter   uint16 = 5
	SifaLuftabsperrhahn uint16 = 6
)

// Sifa is a typed view over the Sifa composite sub-node of DATA_FTD.
// Constructing it validates the node id and extracts each required
// sub-attribute; a missing required sub-attribute is fahrpult.ErrSchema.
type Sifa struct {
	Bauart          string
	Leuchtmelder    uint8
	Hupe            uint8
	Hauptschalter   uint8
	Stoerschalter   uint8
	Luftabsperrhahn uint8
}

// NewSifa validates n.ID == FtdSifa and extracts every required attribute.
func NewSifa(n *fahrpult.Node) (*Sifa, error) {
	if n.ID != FtdSifa {
		return nil, schemaErrf("Sifa: wrong node id %d, want %d", n.ID, FtdSifa)
	}
	s := &Sifa{}
	var ok bool
	var err error

	if s.Bauart, ok, err = String(n, SifaBauart); err != nil {
		return nil, err
	} else if !ok {
		return nil, schemaErrf("Sifa: missing required attribute Bauart")
	}
	if s.Leuchtmelder, ok, err = Uint8(n, SifaLeuchtmelder); err != nil {
		return nil, err
	} else if !ok {
		return nil, schemaErrf("Sifa: missing required attribute Leuchtmelder")
	}
	if s.Hupe, ok, err = Uint8(n, SifaHupe); err != nil {
		return nil, err
	} else if !ok {
		return nil, schemaErrf("Sifa: missing required attribute Hupe")
	}
	if s.Hauptschalter, ok, err = Uint8(n, SifaHauptschalter); err != nil {
		return nil, err
	} else if !ok {
		return nil, schemaErrf("Sifa: missing required attribute Hauptschalter")
	}
	if s.Stoerschalter, ok, err = Uint8(n, SifaStoerschalter); err != nil {
		return nil, err
	} else if !ok {
		return nil, schemaErrf("Sifa: missing required attribute Stoerschalter")
	}
	if s.Luftabsperrhahn, ok, err = Uint8(n, SifaLuftabsperrhahn); err != nil {
		return nil, err
	} else if !ok {
		return nil, schemaErrf("Sifa: missing required attribute Luftabsperrhahn")
	}
	return s, nil
}

// ToNode renders the Sifa view back into its wire sub-node shape.
func (s *Sifa) ToNode() fahrpult.Node {
	n := fahrpult.NewNode(FtdSifa)
	PutString(n, SifaBauart, s.Bauart)
	PutUint8(n, SifaLeuchtmelder, s.Leuchtmelder)
	PutUint8(n, SifaHupe, s.Hupe)
	PutUint8(n, SifaHauptschalter, s.Hauptschalter)
	PutUint8(n, SifaStoerschalter, s.Stoerschalter)
	PutUint8(n, SifaLuftabsperrhahn, s.Luftabsperrhahn)
	return *n
}

// FtdView is a typed accessor over a DATA_FTD command node's attributes and
// Sifa sub-node. Every Get returns (value, present, error); absent fields
// are not an error, matching spec.md §4.3's "returns absent if missing".
type FtdView struct {
	node *fahrpult.Node
}

// NewFtdView wraps the DATA_FTD command node for typed access.
func NewFtdView(n *fahrpult.Node) *FtdView { return &FtdView{node: n} }

func (v *FtdView) Geschwindigkeit() (float32, bool, error) { return Float32(v.node, FtdGeschwindigkeit) }
func (v *FtdView) DruckHauptluftleitung() (float32, bool, error) {
	return Float32(v.node, FtdDruckHauptluftleitung)
}
func (v *FtdView) DruckBremszylinder() (float32, bool, error) {
	return Float32(v.node, FtdDruckBremszylinder)
}
func (v *FtdView) DruckHauptluftbehaelter() (float32, bool, error) {
	return Float32(v.node, FtdDruckHauptluftbehaelter)
}
func (v *FtdView) LuftpresserLaeuft() (bool, bool, error) { return Bool(v.node, FtdLuftpresserLaeuft) }
func (v *FtdView) ZugkraftGesamt() (float32, bool, error) { return Float32(v.node, FtdZugkraftGesamt) }
func (v *FtdView) Oberstrom() (float32, bool, error)      { return Float32(v.node, FtdOberstrom) }
func (v *FtdView) Fahrleitungsspannung() (float32, bool, error) {
	return Float32(v.node, FtdFahrleitungsspannung)
}
func (v *FtdView) Motordrehzahl() (float32, bool, error) { return Float32(v.node, FtdMotordrehzahl) }
func (v *FtdView) UhrzeitStunde() (float32, bool, error) { return Float32(v.node, FtdUhrzeitStunde) }
func (v *FtdView) UhrzeitMinute() (float32, bool, error) { return Float32(v.node, FtdUhrzeitMinute) }
func (v *FtdView) UhrzeitSekunde() (float32, bool, error) {
	return Float32(v.node, FtdUhrzeitSekunde)
}
func (v *FtdView) Hauptschalter() (bool, bool, error) { return Bool(v.node, FtdHauptschalter) }
func (v *FtdView) AfbSollGeschwindigkeit() (float32, bool, error) {
	return Float32(v.node, FtdAfbSollGeschwindigkeit)
}
func (v *FtdView) Gesamtweg() (float32, bool, error)   { return Float32(v.node, FtdGesamtweg) }
func (v *FtdView) LMSchleudern() (bool, bool, error)   { return Bool(v.node, FtdLMSchleudern) }
func (v *FtdView) UhrzeitDigital() (float32, bool, error) {
	return Float32(v.node, FtdUhrzeitDigital)
}
func (v *FtdView) AfbEinAus() (float32, bool, error) { return Float32(v.node, FtdAfbEinAus) }
func (v *FtdView) Datum() (float32, bool, error)     { return Float32(v.node, FtdDatum) }
func (v *FtdView) Streckenhoechstgeschwindigkeit() (float32, bool, error) {
	return Float32(v.node, FtdStreckenhoechstgeschwindigkeit)
}

// Sifa returns the Sifa composite sub-node, if present.
func (v *FtdView) Sifa() (*Sifa, bool, error) {
	child, ok := v.node.Child(FtdSifa)
	if !ok {
		return nil, false, nil
	}
	s, err := NewSifa(child)
	if err != nil {
		return nil, true, err
	}
	return s, true, nil
}
