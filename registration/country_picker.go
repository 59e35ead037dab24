package registration

import (
	"github.com/mouvement-citoyen/adhesion-api/geo"
)

// CountryState est l'état du sélecteur de pays.
type CountryState int

const (
	// CountryEmpty : ni texte ni résolution (après effacement explicite).
	CountryEmpty CountryState = iota
	// CountryTyping : texte en cours de saisie, résolution absente ou épinglée.
	CountryTyping
	// CountryResolved : le texte correspond exactement à un pays de la table.
	CountryResolved
)

// CountryPicker est la machine à états de l'autocomplétion pays.
//
// Une résolution acquise reste épinglée quand l'utilisateur vide le
// champ : le nom est restauré à la perte de focus. Ce comportement est
// volontaire, ne pas le "corriger" en effaçant la résolution.
type CountryPicker struct {
	text        string
	resolved    *geo.Country
	suggestions []geo.Country

	// onResolve reçoit le nom canonique et l'indicatif téléphonique
	// à chaque résolution (sélection, blur) et à l'effacement.
	onResolve func(name, dialCode string)
}

// NewCountryPicker crée le sélecteur. Une valeur initiale non vide est
// normalisée puis résolue si elle correspond exactement à un pays ;
// sans valeur initiale, le pays du mouvement est présélectionné.
// notify peut être nil.
func NewCountryPicker(initial string, notify func(name, dialCode string)) *CountryPicker {
	p := &CountryPicker{onResolve: notify}

	if initial == "" {
		home, _ := geo.FindCountryExact(geo.HomeCountry)
		p.text = home.Name
		p.resolved = &home
		return p
	}

	normalized := geo.NormalizeCountryName(initial)
	if c, ok := geo.FindCountryExact(normalized); ok {
		p.text = c.Name
		p.resolved = &c
	} else {
		p.text = initial
	}
	return p
}

// State retourne l'état courant du sélecteur.
func (p *CountryPicker) State() CountryState {
	switch {
	case p.resolved != nil && p.text == p.resolved.Name:
		return CountryResolved
	case p.text == "" && p.resolved == nil:
		return CountryEmpty
	default:
		return CountryTyping
	}
}

// Input enregistre une frappe. Un texte vide n'efface pas une
// résolution déjà acquise ; un texte différent du pays résolu la
// fait tomber et recalcule les suggestions.
func (p *CountryPicker) Input(text string) {
	p.text = text

	if text == "" {
		p.suggestions = nil
		return
	}
	if p.resolved != nil && text != p.resolved.Name {
		p.resolved = nil
	}
	if p.resolved == nil {
		p.suggestions = geo.FindCountryByName(text)
	} else {
		p.suggestions = nil
	}
}

// Choose applique la sélection d'une suggestion : texte et résolution
// prennent le nom canonique, l'indicatif est propagé au formulaire.
func (p *CountryPicker) Choose(c geo.Country) {
	p.text = c.Name
	p.resolved = &c
	p.suggestions = nil
	if p.onResolve != nil {
		p.onResolve(c.Name, c.DialCode)
	}
}

// Blur traite la perte de focus : restaure le nom épinglé si le champ
// a été vidé, sinon tente une résolution exacte du texte normalisé.
// Les suggestions sont masquées dans tous les cas.
func (p *CountryPicker) Blur() {
	p.suggestions = nil

	if p.text == "" {
		if p.resolved != nil {
			p.text = p.resolved.Name
		}
		return
	}
	if p.resolved != nil {
		return
	}

	normalized := geo.NormalizeCountryName(p.text)
	if c, ok := geo.FindCountryExact(normalized); ok {
		p.text = c.Name
		p.resolved = &c
		if p.onResolve != nil {
			p.onResolve(c.Name, c.DialCode)
		}
		return
	}
	// Pas de correspondance : on garde le texte normalisé, sans résolution.
	p.text = normalized
}

// Clear efface texte, résolution et suggestions ; l'indicatif
// retombe sur la valeur par défaut.
func (p *CountryPicker) Clear() {
	p.text = ""
	p.resolved = nil
	p.suggestions = nil
	if p.onResolve != nil {
		p.onResolve("", geo.DefaultDialCode)
	}
}

// Text retourne le texte visible du champ.
func (p *CountryPicker) Text() string { return p.text }

// Resolved retourne le pays résolu, s'il existe.
func (p *CountryPicker) Resolved() (geo.Country, bool) {
	if p.resolved == nil {
		return geo.Country{}, false
	}
	return *p.resolved, true
}

// Suggestions retourne la liste d'autocomplétion courante.
func (p *CountryPicker) Suggestions() []geo.Country { return p.suggestions }
