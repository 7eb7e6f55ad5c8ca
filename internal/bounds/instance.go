package bounds

// ObjectInstance is a named entity's current world-space bound.
type ObjectInstance struct {
	Name     string
	BoxWorld BoundingBox
}

// Contact names one overlapping moving/static pair.
type Contact struct {
	Moving string
	Static string
}

// CheckCollisions tests every moving instance against every static one
// and returns the overlapping pairs in input order.
func CheckCollisions(moving, statics []ObjectInstance) []Contact {
	var contacts []Contact
	for _, m := range moving {
		for _, s := range statics {
			if IntersectAABB(m.BoxWorld, s.BoxWorld) {
				contacts = append(contacts, Contact{Moving: m.Name, Static: s.Name})
			}
		}
	}
	return contacts
}
