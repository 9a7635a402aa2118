package catalog

// Icon identifies the pictogram rendered next to a service. The set is
// closed; unknown names resolve to IconMusic.
type Icon int

const (
	IconMusic Icon = iota
	IconMonitorSpeaker
	IconMic
	IconHeadphones
	IconCable
	IconPartyPopper
)

var iconNames = map[Icon]string{
	IconMusic:          "Music",
	IconMonitorSpeaker: "MonitorSpeaker",
	IconMic:            "Mic",
	IconHeadphones:     "Headphones",
	IconCable:          "Cable",
	IconPartyPopper:    "PartyPopper",
}

var iconsByName = func() map[string]Icon {
	m := make(map[string]Icon, len(iconNames))
	for icon, name := range iconNames {
		m[name] = icon
	}
	return m
}()

// String returns the canonical icon name.
func (i Icon) String() string {
	if name, ok := iconNames[i]; ok {
		return name
	}
	return iconNames[IconMusic]
}

// ParseIcon maps a stored icon name to its Icon. Unknown names map to
// IconMusic with ok=false so callers can log a fallback.
func ParseIcon(name string) (icon Icon, ok bool) {
	if icon, ok = iconsByName[name]; ok {
		return icon, true
	}
	return IconMusic, false
}
