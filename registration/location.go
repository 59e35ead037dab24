package registration

import (
	"fmt"

	"github.com/mouvement-citoyen/adhesion-api/geo"
)

// LocationPicker tient le couple département / commune du formulaire.
// La liste des communes est toujours dérivée du département courant :
// changer de département recalcule la liste et efface une commune qui
// n'y figure plus, avant toute lecture dépendante.
type LocationPicker struct {
	department string
	communes   []string
	commune    string

	// onCommuneCleared prévient le formulaire quand la commune
	// retenue est invalidée par un changement de département.
	onCommuneCleared func()
}

// NewLocationPicker crée un sélecteur vide. notify peut être nil.
func NewLocationPicker(notify func()) *LocationPicker {
	return &LocationPicker{
		communes:         []string{},
		onCommuneCleared: notify,
	}
}

// SelectDepartment change le département sélectionné et recalcule
// la liste de communes. Une valeur vide remet tout à zéro.
func (p *LocationPicker) SelectDepartment(name string) {
	p.department = name
	if name == "" {
		p.communes = []string{}
	} else {
		p.communes = geo.CommunesByDepartment(name)
	}

	if p.commune != "" && !inList(p.commune, p.communes) {
		p.commune = ""
		if p.onCommuneCleared != nil {
			p.onCommuneCleared()
		}
	}
}

// SelectCommune retient une commune du département courant.
func (p *LocationPicker) SelectCommune(name string) error {
	if !inList(name, p.communes) {
		return fmt.Errorf("commune %q inconnue pour le département %q", name, p.department)
	}
	p.commune = name
	return nil
}

// Department retourne le département sélectionné, ou une chaîne vide.
func (p *LocationPicker) Department() string { return p.department }

// Commune retourne la commune retenue, ou une chaîne vide.
func (p *LocationPicker) Commune() string { return p.commune }

// Communes retourne les communes valides pour le département courant,
// dans l'ordre d'affichage.
func (p *LocationPicker) Communes() []string { return p.communes }
