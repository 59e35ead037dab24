package handlers

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mouvement-citoyen/adhesion-api/middleware"
	"github.com/mouvement-citoyen/adhesion-api/models"
	"github.com/mouvement-citoyen/adhesion-api/utils"
)

type AdminHandler struct {
	DB *sql.DB
}

// ============================================================================
// LISTE DES ADHÉRENTS
// ============================================================================

// ListMembers retourne la liste paginée, filtrable par département et
// par recherche plein texte sur nom, email et numéro de carte.
func (h *AdminHandler) ListMembers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "25"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 25
	}

	search := strings.TrimSpace(c.Query("q"))
	department := strings.TrimSpace(c.Query("department"))

	where := []string{"1=1"}
	args := []interface{}{}

	if search != "" {
		args = append(args, "%"+strings.ToLower(search)+"%")
		n := strconv.Itoa(len(args))
		where = append(where, `(LOWER(last_name) LIKE $`+n+
			` OR LOWER(first_name) LIKE $`+n+
			` OR LOWER(email) LIKE $`+n+
			` OR LOWER(membership_number) LIKE $`+n+`)`)
	}
	if department != "" {
		args = append(args, department)
		where = append(where, "department = $"+strconv.Itoa(len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	if err := h.DB.QueryRow(`SELECT COUNT(*) FROM members WHERE `+whereClause, args...).Scan(&total); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	args = append(args, pageSize, (page-1)*pageSize)
	limitArg := strconv.Itoa(len(args) - 1)
	offsetArg := strconv.Itoa(len(args))

	rows, err := h.DB.Query(`
		SELECT id, membership_number, email, last_name, first_name,
		       phone_code, phone, birth_year, country,
		       COALESCE(department, ''), COALESCE(commune, ''), COALESCE(city, ''),
		       profession, availability, role, totp_enabled, created_at, updated_at
		FROM members
		WHERE `+whereClause+`
		ORDER BY created_at DESC
		LIMIT $`+limitArg+` OFFSET $`+offsetArg,
		args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(
			&m.ID, &m.MembershipNumber, &m.Email, &m.LastName, &m.FirstName,
			&m.PhoneCode, &m.Phone, &m.BirthYear, &m.Country,
			&m.Department, &m.Commune, &m.City,
			&m.Profession, &m.Availability, &m.Role, &m.TOTPEnabled,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, models.MemberListResponse{
		Members:  members,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetMember retourne la fiche complète d'un adhérent.
func (h *AdminHandler) GetMember(c *gin.Context) {
	memberHandler := &MemberHandler{DB: h.DB}
	member, err := memberHandler.fetchMember(c.Param("id"))
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Adhérent introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, member)
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=member admin"`
}

// UpdateRole promeut ou rétrograde un adhérent.
func (h *AdminHandler) UpdateRole(c *gin.Context) {
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	memberID := c.Param("id")
	result, err := h.DB.Exec(`UPDATE members SET role = $1, updated_at = NOW() WHERE id = $2`, req.Role, memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Adhérent introuvable"})
		return
	}

	utils.LogMemberAction("role-change:"+req.Role, memberID, middleware.GetMemberID(c))
	c.JSON(http.StatusOK, gin.H{"message": "Rôle mis à jour"})
}

// DeleteMember radie un adhérent. Ses sessions tombent en cascade.
func (h *AdminHandler) DeleteMember(c *gin.Context) {
	memberID := c.Param("id")
	if memberID == middleware.GetMemberID(c) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Impossible de supprimer son propre compte"})
		return
	}

	result, err := h.DB.Exec(`DELETE FROM members WHERE id = $1`, memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Adhérent introuvable"})
		return
	}

	utils.LogMemberAction("delete", memberID, middleware.GetMemberID(c))
	c.JSON(http.StatusOK, gin.H{"message": "Adhérent supprimé"})
}

// ============================================================================
// STATISTIQUES DU TABLEAU DE BORD
// ============================================================================

// Stats alimente les cartes du tableau de bord : total, adhésions du
// mois, répartition par département, série mensuelle sur un an.
func (h *AdminHandler) Stats(c *gin.Context) {
	var stats models.StatsResponse

	if err := h.DB.QueryRow(`SELECT COUNT(*) FROM members`).Scan(&stats.TotalMembers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err := h.DB.QueryRow(`
		SELECT COUNT(*) FROM members
		WHERE created_at >= date_trunc('month', NOW())
	`).Scan(&stats.NewThisMonth); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	rows, err := h.DB.Query(`
		SELECT COALESCE(NULLIF(department, ''), 'Étranger'), COUNT(*)
		FROM members
		GROUP BY 1
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	stats.ByDepartment = []models.DepartmentCount{}
	for rows.Next() {
		var dc models.DepartmentCount
		if err := rows.Scan(&dc.Department, &dc.Count); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		stats.ByDepartment = append(stats.ByDepartment, dc)
	}

	monthRows, err := h.DB.Query(`
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM'), COUNT(*)
		FROM members
		WHERE created_at >= NOW() - INTERVAL '12 months'
		GROUP BY 1
		ORDER BY 1
	`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer monthRows.Close()

	stats.MonthlySignups = []models.MonthlyCount{}
	for monthRows.Next() {
		var mc models.MonthlyCount
		if err := monthRows.Scan(&mc.Month, &mc.Count); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		stats.MonthlySignups = append(stats.MonthlySignups, mc)
	}

	c.JSON(http.StatusOK, stats)
}
