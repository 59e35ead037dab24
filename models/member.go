package models

import "time"

// ============================================================================
// MEMBER MODEL
// ============================================================================

type Member struct {
	ID               string    `json:"id"`
	MembershipNumber string    `json:"membership_number"`
	LastName         string    `json:"last_name"`
	FirstName        string    `json:"first_name"`
	Email            string    `json:"email"`
	PhoneCode        string    `json:"phone_code"`
	Phone            string    `json:"phone"`
	BirthYear        int       `json:"birth_year"`
	Country          string    `json:"country"`
	Department       string    `json:"department,omitempty"`
	Commune          string    `json:"commune,omitempty"`
	City             string    `json:"city,omitempty"`
	Profession       string    `json:"profession"`
	Availability     string    `json:"availability"`
	Motivation       string    `json:"motivation,omitempty"`
	Photo            string    `json:"photo,omitempty"`
	Role             string    `json:"role"`
	PasswordHash     string    `json:"-"` // Never expose in JSON
	TOTPSecret       string    `json:"-"` // Never expose in JSON
	TOTPEnabled      bool      `json:"totp_enabled"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ============================================================================
// AUTHENTICATION REQUESTS
// ============================================================================

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	TOTPCode string `json:"totp_code,omitempty"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type AuthResponse struct {
	Member       Member `json:"member"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ============================================================================
// PROFILE REQUESTS
// ============================================================================

type UpdateProfileRequest struct {
	PhoneCode    string `json:"phone_code"`
	Phone        string `json:"phone"`
	Department   string `json:"department"`
	Commune      string `json:"commune"`
	City         string `json:"city"`
	Profession   string `json:"profession"`
	Availability string `json:"availability"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// ============================================================================
// 2FA
// ============================================================================

type TOTPSetupResponse struct {
	Secret string `json:"secret"`
	QRCode string `json:"qr_code"`
}

type VerifyTOTPRequest struct {
	Code string `json:"code" binding:"required,len=6"`
}

// ============================================================================
// ADMIN DASHBOARD
// ============================================================================

type MemberListResponse struct {
	Members  []Member `json:"members"`
	Total    int      `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type StatsResponse struct {
	TotalMembers   int               `json:"total_members"`
	NewThisMonth   int               `json:"new_this_month"`
	ByDepartment   []DepartmentCount `json:"by_department"`
	MonthlySignups []MonthlyCount    `json:"monthly_signups"`
}
