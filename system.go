package ndastro

import "strconv"

// System identifies one of the supported ayanamsa reference systems.
type System int

const (
	Lahiri System = iota + 1
	Raman
	KrishnamurtiNew
	FaganBradley
	Kali
	Janma
	True
	Madhava
	Vishnu
	Yukteshwar
	Suryasiddhanta
	Aryabhatta
	Ushashasi
	TrueCitra
	TrueRevati
	TruePusya
)

//Registry row: display name, slug accepted by ParseSystem and the
//ayanamsa in degrees at J2000.0.
type systemInfo struct {
	name   string
	slug   string
	anchor float64
}

//Indexed by System, the zero slot is unused. Never mutated.
var registry = [...]systemInfo{
	{},
	Lahiri:          {"Lahiri", "lahiri", 23.85},
	Raman:           {"Raman", "raman", 22.412222},
	KrishnamurtiNew: {"Krishnamurti (new)", "krishnamurti", 23.75},
	FaganBradley:    {"Fagan-Bradley", "fagan-bradley", 24.733333},
	Kali:            {"Kali", "kali", 27.3999844448},
	Janma:           {"Janma", "janma", 22.4601764990},
	True:            {"True", "true", 24.0421808936},
	Madhava:         {"Madhava", "madhava", 23.8957787517},
	Vishnu:          {"Vishnu", "vishnu", 24.0083808936},
	Yukteshwar:      {"Yukteshwar", "yukteshwar", 22.466667},
	Suryasiddhanta:  {"Suryasiddhanta", "suryasiddhanta", 23.9999809105},
	Aryabhatta:      {"Aryabhatta", "aryabhatta", 23.6999794966},
	Ushashasi:       {"Ushashasi", "ushashasi", 20.05},
	TrueCitra:       {"True Citra", "true-citra", 23.833333},
	TrueRevati:      {"True Revati", "true-revati", 20.033333},
	TruePusya:       {"True Pusya", "true-pusya", 24.0999811369},
}

// Systems returns every supported system in registry order.
func Systems() []System {
	out := make([]System, 0, len(registry)-1)
	for s := Lahiri; s <= TruePusya; s++ {
		out = append(out, s)
	}
	return out
}

// Valid reports whether s is a registered system.
func (s System) Valid() bool {
	return s >= Lahiri && s <= TruePusya
}

func (s System) String() string {
	if !s.Valid() {
		return "System(" + strconv.Itoa(int(s)) + ")"
	}
	return registry[s].name
}

// Slug returns the lower case, dash separated identifier of s.
func (s System) Slug() string {
	if !s.Valid() {
		return ""
	}
	return registry[s].slug
}

// Anchor returns the ayanamsa of s in degrees at J2000.0.
func (s System) Anchor() (float64, error) {
	if !s.Valid() {
		return 0, &UnknownSystemError{System: s}
	}
	return registry[s].anchor, nil
}
