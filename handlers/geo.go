package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mouvement-citoyen/adhesion-api/geo"
)

// GeoHandler expose les tables de référence géographiques au
// formulaire d'adhésion. Aucune recherche n'échoue : table fixe,
// résultats vides ou valeur par défaut en cas d'absence.
type GeoHandler struct{}

// SearchCountries alimente l'autocomplétion pays (?q=..., max 10).
func (h *GeoHandler) SearchCountries(c *gin.Context) {
	query := c.Query("q")
	results := geo.FindCountryByName(query)
	if results == nil {
		results = []geo.Country{}
	}
	c.JSON(http.StatusOK, gin.H{"countries": results})
}

// ListDepartments retourne les 12 départements avec leurs communes.
func (h *GeoHandler) ListDepartments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"departments": geo.Departments})
}

// ListCommunes retourne les communes d'un département. Département
// inconnu : liste vide, statut 200.
func (h *GeoHandler) ListCommunes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"communes": geo.CommunesByDepartment(c.Param("name"))})
}

// PhoneCode retourne l'indicatif téléphonique d'un pays
// (?country=...), ou l'indicatif par défaut.
func (h *GeoHandler) PhoneCode(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"phone_code": geo.PhoneCodeForCountry(c.Query("country"))})
}
