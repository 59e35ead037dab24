package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/mouvement-citoyen/adhesion-api/geo"
	"github.com/mouvement-citoyen/adhesion-api/models"
	"github.com/mouvement-citoyen/adhesion-api/registration"
	"github.com/mouvement-citoyen/adhesion-api/services"
	"github.com/mouvement-citoyen/adhesion-api/utils"
)

const refreshTokenTTL = 7 * 24 * time.Hour

type AuthHandler struct {
	DB    *sql.DB
	WS    *WSHandler
	Email *services.EmailService
}

// Register traite une demande d'adhésion : validation du brouillon en
// bloc, détection d'email déjà utilisé rattachée au champ email,
// création de l'adhérent avec son numéro de carte, ouverture de session.
func (h *AuthHandler) Register(c *gin.Context) {
	var draft registration.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if draft.Country == "" {
		draft.Country = geo.HomeCountry
	}
	if draft.PhoneCode == "" {
		draft.PhoneCode = geo.PhoneCodeForCountry(draft.Country)
	}

	if errs := draft.Validate(time.Now().Year()); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	payload := draft.Payload()

	var exists bool
	err := h.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM members WHERE email = $1)", payload.Email).Scan(&exists)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{
			"errors": registration.ValidationErrors{"email": "Cette adresse email est déjà utilisée"},
		})
		return
	}

	passwordHash, err := utils.HashPassword(payload.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	membershipNumber := utils.NewMembershipNumber(time.Now())

	// Les champs de localisation non renseignés sont stockés en NULL,
	// jamais en chaîne vide : les statistiques par département comptent
	// sur cette convention.
	var memberID string
	var createdAt time.Time
	err = h.DB.QueryRow(`
		INSERT INTO members (
			membership_number, email, password_hash, last_name, first_name,
			phone_code, phone, birth_year, country, department, commune, city,
			profession, availability, motivation
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9,
		        NULLIF($10, ''), NULLIF($11, ''), NULLIF($12, ''), $13, $14, $15)
		RETURNING id, created_at
	`, membershipNumber, payload.Email, passwordHash, payload.LastName, payload.FirstName,
		payload.PhoneCode, payload.Phone, payload.BirthYear, payload.Country,
		payload.Department, payload.Commune, payload.City,
		payload.Profession, payload.Availability, payload.Motivation).Scan(&memberID, &createdAt)

	if err != nil {
		// Deux inscriptions simultanées avec le même email peuvent passer
		// le pré-contrôle : la contrainte unique tranche.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{
				"errors": registration.ValidationErrors{"email": "Cette adresse email est déjà utilisée"},
			})
			return
		}
		utils.SafeError("Failed to create member: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create member"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(memberID, payload.Email, "member")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate refresh token"})
		return
	}

	_, err = h.DB.Exec(`
		INSERT INTO sessions (member_id, refresh_token, expires_at)
		VALUES ($1, $2, $3)
	`, memberID, refreshToken, time.Now().Add(refreshTokenTTL))

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	member := models.Member{
		ID:               memberID,
		MembershipNumber: membershipNumber,
		LastName:         payload.LastName,
		FirstName:        payload.FirstName,
		Email:            payload.Email,
		PhoneCode:        payload.PhoneCode,
		Phone:            payload.Phone,
		BirthYear:        payload.BirthYear,
		Country:          payload.Country,
		Department:       payload.Department,
		Commune:          payload.Commune,
		City:             payload.City,
		Profession:       payload.Profession,
		Availability:     payload.Availability,
		Role:             "member",
		CreatedAt:        createdAt,
		UpdatedAt:        createdAt,
	}

	utils.LogRegistration(membershipNumber, payload.Department, payload.Country)

	if h.WS != nil {
		h.WS.BroadcastRegistration(membershipNumber, payload.Department)
	}
	if h.Email != nil {
		// L'envoi du mail de bienvenue ne bloque pas l'adhésion.
		go func() {
			if err := h.Email.SendWelcome(member.Email, member.FirstName, membershipNumber); err != nil {
				utils.SafeWarn("Welcome email failed for %s: %v", member.Email, err)
			}
		}()
	}

	c.JSON(http.StatusCreated, models.AuthResponse{
		Member:       member,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var member models.Member
	var passwordHash string
	var totpSecret sql.NullString
	var department, commune, city, motivation, photo sql.NullString

	err := h.DB.QueryRow(`
		SELECT id, membership_number, email, password_hash, last_name, first_name,
		       phone_code, phone, birth_year, country, department, commune, city,
		       profession, availability, motivation, photo, role,
		       totp_secret, totp_enabled, created_at, updated_at
		FROM members
		WHERE email = $1
	`, req.Email).Scan(
		&member.ID, &member.MembershipNumber, &member.Email, &passwordHash,
		&member.LastName, &member.FirstName, &member.PhoneCode, &member.Phone,
		&member.BirthYear, &member.Country, &department, &commune, &city,
		&member.Profession, &member.Availability, &motivation, &photo,
		&member.Role, &totpSecret, &member.TOTPEnabled,
		&member.CreatedAt, &member.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		utils.LogAuthAction("login", req.Email, false)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants invalides"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	member.Department = department.String
	member.Commune = commune.String
	member.City = city.String
	member.Motivation = motivation.String
	member.Photo = photo.String

	if !utils.CheckPassword(req.Password, passwordHash) {
		utils.LogAuthAction("login", req.Email, false)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants invalides"})
		return
	}

	if member.TOTPEnabled {
		if req.TOTPCode == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Code 2FA requis", "requires_2fa": true})
			return
		}

		if totpSecret.Valid {
			secret, err := utils.DecryptSecret(totpSecret.String)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify 2FA"})
				return
			}
			if !utils.VerifyTOTP(secret, req.TOTPCode) {
				utils.LogAuthAction("login-2fa", req.Email, false)
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Code 2FA invalide"})
				return
			}
		}
	}

	accessToken, err := utils.GenerateAccessToken(member.ID, member.Email, member.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate refresh token"})
		return
	}

	_, err = h.DB.Exec(`
		INSERT INTO sessions (member_id, refresh_token, expires_at)
		VALUES ($1, $2, $3)
	`, member.ID, refreshToken, time.Now().Add(refreshTokenTTL))

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	utils.LogAuthAction("login", req.Email, true)

	c.JSON(http.StatusOK, models.AuthResponse{
		Member:       member,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Refresh échange un refresh token valide contre un nouvel access token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var memberID, email, role string
	err := h.DB.QueryRow(`
		SELECT m.id, m.email, m.role
		FROM sessions s
		JOIN members m ON m.id = s.member_id
		WHERE s.refresh_token = $1 AND s.expires_at > NOW()
	`, req.RefreshToken).Scan(&memberID, &email, &role)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expirée"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(memberID, email, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}

// Logout invalide la session associée au refresh token.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.DB.Exec(`DELETE FROM sessions WHERE refresh_token = $1`, req.RefreshToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Déconnecté"})
}
