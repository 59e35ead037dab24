package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mouvement-citoyen/adhesion-api/geo"
	"github.com/mouvement-citoyen/adhesion-api/middleware"
	"github.com/mouvement-citoyen/adhesion-api/models"
	"github.com/mouvement-citoyen/adhesion-api/registration"
	"github.com/mouvement-citoyen/adhesion-api/utils"
)

type MemberHandler struct {
	DB *sql.DB
}

// ============================================================================
// CARTE DE MEMBRE
// ============================================================================

// GetProfile retourne la fiche de l'adhérent connecté (carte de membre).
func (h *MemberHandler) GetProfile(c *gin.Context) {
	memberID := middleware.GetMemberID(c)
	if memberID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	member, err := h.fetchMember(memberID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Adhérent introuvable"})
		return
	}
	if err != nil {
		utils.SafeError("Error fetching profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, member)
}

// UpdateProfile modifie les champs éditables de la fiche adhérent.
// Les listes fermées et la cohérence département/commune sont
// revalidées côté serveur.
func (h *MemberHandler) UpdateProfile(c *gin.Context) {
	memberID := middleware.GetMemberID(c)
	if memberID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	errs := registration.ValidationErrors{}
	if req.Profession != "" && !registration.IsProfession(req.Profession) {
		errs["profession"] = "Profession inconnue"
	}
	if req.Availability != "" && !registration.IsAvailability(req.Availability) {
		errs["availability"] = "Disponibilité inconnue"
	}
	locationProvided := req.Department != "" || req.Commune != "" || req.City != ""
	if req.Department != "" || req.Commune != "" {
		if req.Department == "" || req.Commune == "" {
			errs["commune"] = "Le département et la commune vont ensemble"
		} else {
			communes := geo.CommunesByDepartment(req.Department)
			valid := false
			for _, commune := range communes {
				if commune == req.Commune {
					valid = true
					break
				}
			}
			if !valid {
				errs["commune"] = "Cette commune n'appartient pas au département sélectionné"
			}
		}
	}
	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	// La localisation se remplace en bloc : un adhérent rentré de
	// l'étranger ne doit pas garder une ville fantôme à côté de son
	// nouveau département.
	_, err := h.DB.Exec(`
		UPDATE members
		SET phone_code = COALESCE(NULLIF($1, ''), phone_code),
		    phone = COALESCE(NULLIF($2, ''), phone),
		    department = CASE WHEN $3 THEN NULLIF($4, '') ELSE department END,
		    commune = CASE WHEN $3 THEN NULLIF($5, '') ELSE commune END,
		    city = CASE WHEN $3 THEN NULLIF($6, '') ELSE city END,
		    profession = COALESCE(NULLIF($7, ''), profession),
		    availability = COALESCE(NULLIF($8, ''), availability),
		    updated_at = NOW()
		WHERE id = $9
	`, req.PhoneCode, req.Phone, locationProvided, req.Department, req.Commune, req.City,
		req.Profession, req.Availability, memberID)

	if err != nil {
		utils.SafeError("Error updating profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	member, err := h.fetchMember(memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profil mis à jour",
		"member":  member,
	})
}

// ============================================================================
// PHOTO
// ============================================================================

// UploadPhoto enregistre la photo de la carte de membre.
func (h *MemberHandler) UploadPhoto(c *gin.Context) {
	memberID := middleware.GetMemberID(c)
	if memberID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier photo requis"})
		return
	}
	if file.Size > 5*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La photo ne doit pas dépasser 5 Mo"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format accepté : jpg, png ou webp"})
		return
	}

	filename := fmt.Sprintf("%s%s", uuid.NewString(), ext)
	dst := filepath.Join("uploads", "photos", filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		utils.SafeError("Photo upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save photo"})
		return
	}

	photoURL := "/uploads/photos/" + filename
	if _, err := h.DB.Exec(`UPDATE members SET photo = $1, updated_at = NOW() WHERE id = $2`, photoURL, memberID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save photo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo": photoURL})
}

// ============================================================================
// MOT DE PASSE
// ============================================================================

func (h *MemberHandler) ChangePassword(c *gin.Context) {
	memberID := middleware.GetMemberID(c)
	if memberID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var currentHash string
	err := h.DB.QueryRow(`SELECT password_hash FROM members WHERE id = $1`, memberID).Scan(&currentHash)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !utils.CheckPassword(req.CurrentPassword, currentHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Mot de passe actuel incorrect"})
		return
	}

	newHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	if _, err := h.DB.Exec(`UPDATE members SET password_hash = $1, updated_at = NOW() WHERE id = $2`, newHash, memberID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	// Toutes les autres sessions tombent.
	if _, err := h.DB.Exec(`DELETE FROM sessions WHERE member_id = $1`, memberID); err != nil {
		utils.SafeWarn("Failed to revoke sessions for %s: %v", memberID, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mot de passe modifié"})
}

// ============================================================================
// 2FA
// ============================================================================

func (h *MemberHandler) SetupTOTP(c *gin.Context) {
	memberID := middleware.GetMemberID(c)
	email := middleware.GetEmail(c)
	if memberID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	secret, url, err := utils.GenerateTOTPSecret(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate 2FA secret"})
		return
	}

	encrypted, err := utils.EncryptSecret(secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store 2FA secret"})
		return
	}

	if _, err := h.DB.Exec(`UPDATE members SET totp_secret = $1, updated_at = NOW() WHERE id = $2`, encrypted, memberID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store 2FA secret"})
		return
	}

	c.JSON(http.StatusOK, models.TOTPSetupResponse{Secret: secret, QRCode: url})
}

func (h *MemberHandler) VerifyTOTP(c *gin.Context) {
	memberID := middleware.GetMemberID(c)
	if memberID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.VerifyTOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var encrypted sql.NullString
	if err := h.DB.QueryRow(`SELECT totp_secret FROM members WHERE id = $1`, memberID).Scan(&encrypted); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if !encrypted.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "2FA non configurée"})
		return
	}

	secret, err := utils.DecryptSecret(encrypted.String)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify 2FA"})
		return
	}

	if !utils.VerifyTOTP(secret, req.Code) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Code 2FA invalide"})
		return
	}

	if _, err := h.DB.Exec(`UPDATE members SET totp_enabled = TRUE, updated_at = NOW() WHERE id = $1`, memberID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enable 2FA"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "2FA activée"})
}

func (h *MemberHandler) DisableTOTP(c *gin.Context) {
	memberID := middleware.GetMemberID(c)
	if memberID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if _, err := h.DB.Exec(`UPDATE members SET totp_secret = NULL, totp_enabled = FALSE, updated_at = NOW() WHERE id = $1`, memberID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to disable 2FA"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "2FA désactivée"})
}

// ============================================================================
// HELPERS
// ============================================================================

func (h *MemberHandler) fetchMember(memberID string) (models.Member, error) {
	var member models.Member
	var department, commune, city, motivation, photo sql.NullString

	err := h.DB.QueryRow(`
		SELECT id, membership_number, email, last_name, first_name,
		       phone_code, phone, birth_year, country, department, commune, city,
		       profession, availability, motivation, photo, role,
		       totp_enabled, created_at, updated_at
		FROM members
		WHERE id = $1
	`, memberID).Scan(
		&member.ID, &member.MembershipNumber, &member.Email,
		&member.LastName, &member.FirstName, &member.PhoneCode, &member.Phone,
		&member.BirthYear, &member.Country, &department, &commune, &city,
		&member.Profession, &member.Availability, &motivation, &photo,
		&member.Role, &member.TOTPEnabled, &member.CreatedAt, &member.UpdatedAt,
	)
	if err != nil {
		return member, err
	}

	member.Department = department.String
	member.Commune = commune.String
	member.City = city.String
	member.Motivation = motivation.String
	member.Photo = photo.String
	return member, nil
}
