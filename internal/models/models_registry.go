package models

// ModelTypeRegistry maps model names to their zero values.
var ModelTypeRegistry = map[string]interface{}{
	"Location":    Location{},
	"Office":      Office{},
	"Testimonial": Testimonial{},
}

// All returns pointers to the models ordered so that parents precede children.
func All() []interface{} {
	return []interface{}{&Location{}, &Office{}, &Testimonial{}}
}
