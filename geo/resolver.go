// geo/resolver.go
// ============================================================================
// RÉSOLUTION GÉOGRAPHIQUE - Normalisation et recherche sur les tables fixes
// ============================================================================

package geo

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxSuggestions limite le nombre de résultats de l'autocomplétion.
const maxSuggestions = 10

// linkingWords sont les mots de liaison français jamais capitalisés,
// sauf en début de nom.
var linkingWords = map[string]bool{
	"de": true, "du": true, "des": true,
	"la": true, "le": true, "les": true,
	"et": true, "à": true, "en": true,
	"sur": true, "sous": true,
}

// irregularNames corrige les noms composés que la capitalisation
// générique ne sait pas produire (tirets, apostrophes).
// La clé est comparée sans tenir compte de la casse.
var irregularNames = []string{
	"Bosnie-Herzégovine",
	"Cap-Vert",
	"Corée du Nord",
	"Corée du Sud",
	"Côte d'Ivoire",
	"États-Unis",
	"Guinée-Bissau",
	"Nouvelle-Zélande",
	"Papouasie-Nouvelle-Guinée",
	"Pays-Bas",
	"Royaume-Uni",
	"Sao Tomé-et-Principe",
	"Timor-Leste",
	"Trinité-et-Tobago",
}

// NormalizeCountryName ramène un nom de pays saisi librement à sa
// capitalisation canonique. Fonction totale et idempotente : une
// entrée vide donne une sortie vide, jamais d'erreur.
func NormalizeCountryName(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}

	words := strings.Split(strings.ToLower(trimmed), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		// Les mots de liaison restent en minuscules, sauf le premier mot.
		if i > 0 && linkingWords[w] {
			continue
		}
		words[i] = titleWord(w)
	}
	generic := strings.Join(words, " ")

	for _, canonical := range irregularNames {
		if strings.EqualFold(generic, canonical) {
			return canonical
		}
	}
	return generic
}

func titleWord(w string) string {
	r := []rune(w)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// FindCountryByName retourne les pays dont le nom contient ou commence
// par la requête normalisée (insensible à la casse et aux accents),
// dans l'ordre de la table, limités à 10. Requête vide : aucun résultat.
func FindCountryByName(text string) []Country {
	query := foldAccents(strings.ToLower(NormalizeCountryName(text)))
	if query == "" {
		return nil
	}

	var matches []Country
	for _, c := range Countries {
		name := foldAccents(strings.ToLower(c.Name))
		if strings.Contains(name, query) || strings.HasPrefix(name, query) {
			matches = append(matches, c)
			if len(matches) == maxSuggestions {
				break
			}
		}
	}
	return matches
}

// FindCountryExact retourne le pays dont le nom canonique correspond
// exactement au texte normalisé.
func FindCountryExact(text string) (Country, bool) {
	name := NormalizeCountryName(text)
	for _, c := range Countries {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Country{}, false
}

// CommunesByDepartment retourne les communes d'un département
// (comparaison exacte insensible à la casse). Département inconnu :
// liste vide, jamais d'erreur.
func CommunesByDepartment(name string) []string {
	for _, d := range Departments {
		if strings.EqualFold(d.Name, name) {
			return d.Communes
		}
	}
	return []string{}
}

// PhoneCodeForCountry retourne l'indicatif téléphonique d'un pays,
// ou l'indicatif par défaut si le pays est inconnu.
func PhoneCodeForCountry(name string) string {
	if c, ok := FindCountryExact(name); ok {
		return c.DialCode
	}
	return DefaultDialCode
}

// foldAccents supprime les signes diacritiques pour la recherche
// ("benin" doit trouver "Bénin").
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
