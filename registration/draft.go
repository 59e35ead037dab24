// registration/draft.go
// ============================================================================
// BROUILLON D'ADHÉSION - Champs du formulaire, validation, charge utile
// ============================================================================

package registration

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mouvement-citoyen/adhesion-api/geo"
)

// MinimumAge est l'âge minimum pour adhérer au mouvement.
const MinimumAge = 16

// minBirthYear borne basse de l'année de naissance acceptée.
const minBirthYear = 1900

// Professions est la liste fermée proposée par le formulaire.
var Professions = []string{
	"Agriculteur / Éleveur",
	"Artisan",
	"Commerçant",
	"Enseignant",
	"Étudiant",
	"Fonctionnaire",
	"Ouvrier",
	"Profession libérale",
	"Salarié du privé",
	"Retraité",
	"Sans emploi",
	"Autre",
}

// Availabilities est la liste fermée des niveaux de disponibilité.
var Availabilities = []string{
	"Quelques heures par mois",
	"Quelques heures par semaine",
	"Week-ends uniquement",
	"Très disponible",
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationErrors associe un message à chaque champ invalide.
// La clé reprend le nom du champ côté formulaire.
type ValidationErrors map[string]string

// Draft est le brouillon d'adhésion en cours de saisie.
// Créé vide au montage du formulaire, muté champ par champ,
// validé en bloc à la soumission.
type Draft struct {
	LastName        string `json:"lastName"`
	FirstName       string `json:"firstName"`
	Email           string `json:"email"`
	PhoneCode       string `json:"phoneCode"`
	Phone           string `json:"phone"`
	BirthYear       string `json:"birthYear"`
	Country         string `json:"country"`
	Department      string `json:"department"`
	Commune         string `json:"commune"`
	City            string `json:"city"`
	Profession      string `json:"profession"`
	Availability    string `json:"availability"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Motivation      string `json:"motivation"`
}

// NewDraft retourne un brouillon vide, pays et indicatif par défaut.
func NewDraft() *Draft {
	return &Draft{
		Country:   geo.HomeCountry,
		PhoneCode: geo.DefaultDialCode,
	}
}

// Age calcule l'âge dérivé de l'année de naissance.
// Second retour faux si l'année n'est pas un entier.
func (d *Draft) Age(currentYear int) (int, bool) {
	year, err := strconv.Atoi(strings.TrimSpace(d.BirthYear))
	if err != nil {
		return 0, false
	}
	return currentYear - year, true
}

// Validate évalue toutes les règles ensemble et retourne un message
// par champ invalide. Aucune règle ne court-circuite les autres ;
// une carte vide signifie que le brouillon est soumissible.
func (d *Draft) Validate(currentYear int) ValidationErrors {
	errs := ValidationErrors{}

	validateName(errs, "lastName", d.LastName, "Le nom est requis", "Le nom doit contenir au moins 2 caractères")
	validateName(errs, "firstName", d.FirstName, "Le prénom est requis", "Le prénom doit contenir au moins 2 caractères")

	email := strings.TrimSpace(d.Email)
	if email == "" {
		errs["email"] = "L'adresse email est requise"
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "L'adresse email est invalide"
	}

	if strings.TrimSpace(d.Phone) == "" {
		errs["phone"] = "Le numéro de téléphone est requis"
	}

	d.validateBirthYear(errs, currentYear)
	d.validateLocation(errs)

	if !inList(d.Profession, Professions) {
		errs["profession"] = "Veuillez sélectionner votre profession"
	}
	if !inList(d.Availability, Availabilities) {
		errs["availability"] = "Veuillez indiquer votre disponibilité"
	}

	if d.Password == "" {
		errs["password"] = "Le mot de passe est requis"
	} else if utf8.RuneCountInString(d.Password) < 8 {
		errs["password"] = "Le mot de passe doit contenir au moins 8 caractères"
	}
	if d.ConfirmPassword == "" {
		errs["confirmPassword"] = "Veuillez confirmer le mot de passe"
	} else if d.ConfirmPassword != d.Password {
		errs["confirmPassword"] = "Les mots de passe ne correspondent pas"
	}

	if motivation := strings.TrimSpace(d.Motivation); motivation == "" {
		errs["motivation"] = "La lettre de motivation est requise"
	} else if utf8.RuneCountInString(motivation) < 20 {
		errs["motivation"] = "La motivation doit contenir au moins 20 caractères"
	}

	return errs
}

func validateName(errs ValidationErrors, field, value, requiredMsg, shortMsg string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		errs[field] = requiredMsg
	} else if utf8.RuneCountInString(trimmed) < 2 {
		errs[field] = shortMsg
	}
}

func (d *Draft) validateBirthYear(errs ValidationErrors, currentYear int) {
	raw := strings.TrimSpace(d.BirthYear)
	if raw == "" {
		errs["birthYear"] = "L'année de naissance est requise"
		return
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		errs["birthYear"] = "L'année de naissance est invalide"
		return
	}
	if year < minBirthYear || year > currentYear {
		errs["birthYear"] = "L'année de naissance est invalide"
		return
	}
	if currentYear-year < MinimumAge {
		errs["birthYear"] = "Vous devez avoir au moins 16 ans pour adhérer"
	}
}

// validateLocation applique les règles domestiques ou étrangères
// selon le pays sélectionné. Le couple département/commune est
// revérifié contre la table de référence, la frontière HTTP ne fait
// pas confiance au client.
func (d *Draft) validateLocation(errs ValidationErrors) {
	if d.Country == geo.HomeCountry {
		dept := strings.TrimSpace(d.Department)
		commune := strings.TrimSpace(d.Commune)
		communes := geo.CommunesByDepartment(dept)

		switch {
		case dept == "":
			errs["department"] = "Veuillez sélectionner votre département"
		case len(communes) == 0:
			errs["department"] = "Département inconnu"
		}

		switch {
		case commune == "":
			errs["commune"] = "Veuillez sélectionner votre commune"
		case len(communes) > 0 && !inList(commune, communes):
			errs["commune"] = "Cette commune n'appartient pas au département sélectionné"
		}
		return
	}
	if strings.TrimSpace(d.City) == "" {
		errs["city"] = "Veuillez indiquer votre ville ou région"
	}
}

// IsProfession indique si la valeur appartient à la liste fermée.
func IsProfession(value string) bool { return inList(value, Professions) }

// IsAvailability indique si la valeur appartient à la liste fermée.
func IsAvailability(value string) bool { return inList(value, Availabilities) }

func inList(value string, list []string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

// Payload est la charge utile normalisée envoyée au service
// d'enregistrement après validation.
type Payload struct {
	LastName     string `json:"last_name"`
	FirstName    string `json:"first_name"`
	Email        string `json:"email"`
	PhoneCode    string `json:"phone_code"`
	Phone        string `json:"phone"`
	BirthYear    int    `json:"birth_year"`
	Country      string `json:"country"`
	Department   string `json:"department"`
	Commune      string `json:"commune"`
	City         string `json:"city"`
	Profession   string `json:"profession"`
	Availability string `json:"availability"`
	Password     string `json:"password"`
	Motivation   string `json:"motivation"`
}

// Payload normalise le brouillon : email minuscule et sans espaces,
// année de naissance entière, champs textuels épurés.
// À n'appeler qu'après une validation sans erreur.
func (d *Draft) Payload() Payload {
	year, _ := strconv.Atoi(strings.TrimSpace(d.BirthYear))
	return Payload{
		LastName:     strings.TrimSpace(d.LastName),
		FirstName:    strings.TrimSpace(d.FirstName),
		Email:        strings.ToLower(strings.TrimSpace(d.Email)),
		PhoneCode:    d.PhoneCode,
		Phone:        strings.TrimSpace(d.Phone),
		BirthYear:    year,
		Country:      d.Country,
		Department:   strings.TrimSpace(d.Department),
		Commune:      strings.TrimSpace(d.Commune),
		City:         strings.TrimSpace(d.City),
		Profession:   d.Profession,
		Availability: d.Availability,
		Password:     d.Password,
		Motivation:   strings.TrimSpace(d.Motivation),
	}
}
