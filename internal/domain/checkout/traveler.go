package checkout

import "tour-storefront/internal/domain/user"

type Traveler struct {
	Name               string `json:"nombre"`
	Surname            string `json:"apellido"`
	BirthDate          string `json:"fechaNacimiento"`
	IdentificationType string `json:"tipoIdentificacion"`
	Identification     string `json:"identificacion"`
}

// Manifest returns the supplied travelers, or the logged-in user as the sole traveler.
func Manifest(travelers []Traveler, s *user.Session, identificationType string) []Traveler {
	if len(travelers) > 0 {
		out := make([]Traveler, len(travelers))
		copy(out, travelers)
		for i := range out {
			if out[i].IdentificationType == "" {
				out[i].IdentificationType = identificationType
			}
		}
		return out
	}
	return []Traveler{{
		Name:               s.Name(),
		Surname:            s.Surname(),
		IdentificationType: identificationType,
		Identification:     s.NationalID(),
	}}
}
