package models

// ZoneID names one sub-zone of a multi-zone container, e.g. one column.
type ZoneID string

func (z ZoneID) String() string { return string(z) }

// Zone is one named, ordered sub-list of a multi-zone container's children.
// Members reference the container's own Children entries by id. Width is a
// display hint ("50%"), opaque to the engine.
type Zone struct {
	ID      ZoneID    `json:"zoneId"`
	Width   string    `json:"width,omitempty"`
	Members []BlockID `json:"blockIds"`
}

// ZoneMap is the ordered list of zones of one container. Every method below
// is copy-on-write: the receiver is never modified, matching the engine's
// structural-sharing contract.
type ZoneMap []Zone

// Settings is the open map for container layout metadata. Multi-zone
// containers keep their zone map here under the "zones" key.
type Settings map[string]any

const zonesKey = "zones"

// Zones returns the container's zone map, or nil for single-zone containers.
func (s Settings) Zones() ZoneMap {
	if s == nil {
		return nil
	}
	zm, ok := s[zonesKey].(ZoneMap)
	if !ok {
		return nil
	}
	return zm
}

// WithZones returns a copy of the settings carrying the given zone map.
func (s Settings) WithZones(zm ZoneMap) Settings {
	out := make(Settings, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out[zonesKey] = zm
	return out
}

// Find locates the zone and position holding id. Returns (-1, -1, false)
// when no zone references it.
func (zm ZoneMap) Find(id BlockID) (zone int, pos int, ok bool) {
	for zi, z := range zm {
		for mi, member := range z.Members {
			if member == id {
				return zi, mi, true
			}
		}
	}
	return -1, -1, false
}

// Index returns the position of the named zone, or -1.
func (zm ZoneMap) Index(zid ZoneID) int {
	for i, z := range zm {
		if z.ID == zid {
			return i
		}
	}
	return -1
}

// Remove drops id from whichever zone holds it. The bool reports whether a
// membership entry was removed.
func (zm ZoneMap) Remove(id BlockID) (ZoneMap, bool) {
	zi, mi, ok := zm.Find(id)
	if !ok {
		return zm, false
	}
	out := zm.clone()
	out[zi].Members = append(out[zi].Members[:mi], out[zi].Members[mi+1:]...)
	return out, true
}

// InsertAt splices id into the named zone at index, clamped to the valid
// range. The bool reports whether the zone exists.
func (zm ZoneMap) InsertAt(zid ZoneID, index int, id BlockID) (ZoneMap, bool) {
	zi := zm.Index(zid)
	if zi < 0 {
		return zm, false
	}
	out := zm.clone()
	members := out[zi].Members
	index = clampIndex(index, len(members))
	members = append(members[:index:index], append([]BlockID{id}, members[index:]...)...)
	out[zi].Members = members
	return out, true
}

// InsertAfter places id immediately after ref within ref's zone. The bool
// reports whether ref was found.
func (zm ZoneMap) InsertAfter(ref, id BlockID) (ZoneMap, bool) {
	zi, mi, ok := zm.Find(ref)
	if !ok {
		return zm, false
	}
	return zm.InsertAt(zm[zi].ID, mi+1, id)
}

func (zm ZoneMap) clone() ZoneMap {
	out := make(ZoneMap, len(zm))
	for i, z := range zm {
		out[i] = Zone{
			ID:      z.ID,
			Width:   z.Width,
			Members: append([]BlockID(nil), z.Members...),
		}
	}
	return out
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}
