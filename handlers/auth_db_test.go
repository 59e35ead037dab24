package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockedRegisterRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := &AuthHandler{DB: db}
	router.POST("/auth/register", h.Register)
	return router, mock
}

func TestRegisterStoresEmptyLocationAsNull(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-de-test-suffisamment-long")
	router, mock := newMockedRegisterRouter(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("senami@example.org").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	// Département, commune et ville passent par NULLIF : une chaîne
	// vide ne doit jamais atteindre la table.
	mock.ExpectQuery(`INSERT INTO members.*NULLIF\(\$10, ''\), NULLIF\(\$11, ''\), NULLIF\(\$12, ''\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
			AddRow("3f1c9a2e-0000-0000-0000-000000000001", time.Now()))
	mock.ExpectExec(`INSERT INTO sessions`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	body := wellFormedBody("1990")
	body["country"] = "France"
	body["department"] = ""
	body["commune"] = ""
	body["city"] = "Paris"
	rec := postRegister(t, router, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
		Member      struct {
			MembershipNumber string `json:"membership_number"`
			Email            string `json:"email"`
		} `json:"member"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.Contains(t, resp.Member.MembershipNumber, "MC-")
	assert.Equal(t, "senami@example.org", resp.Member.Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterConcurrentDuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-de-test-suffisamment-long")
	router, mock := newMockedRegisterRouter(t)

	// Le pré-contrôle passe, puis la contrainte unique refuse
	// l'insertion : même réponse 409 que le doublon détecté tôt.
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("senami@example.org").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(`INSERT INTO members`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "members_email_key"})

	rec := postRegister(t, router, wellFormedBody("1990"))
	require.Equal(t, http.StatusConflict, rec.Code)

	errs := decodeErrors(t, rec)
	assert.Equal(t, "Cette adresse email est déjà utilisée", errs["email"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateEmailPrecheck(t *testing.T) {
	router, mock := newMockedRegisterRouter(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("senami@example.org").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	rec := postRegister(t, router, wellFormedBody("1990"))
	require.Equal(t, http.StatusConflict, rec.Code)

	errs := decodeErrors(t, rec)
	assert.Equal(t, "Cette adresse email est déjà utilisée", errs["email"])

	assert.NoError(t, mock.ExpectationsWereMet())
}
