package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouvement-citoyen/adhesion-api/models"
)

func TestStatsBucketsForeignMembers(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := &AdminHandler{DB: db}
	router.GET("/admin/stats", h.Stats)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM members`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(23))
	mock.ExpectQuery(`WHERE created_at >= date_trunc\('month', NOW\(\)\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	// Les adhérents sans département (NULL ou '') tombent dans le
	// compartiment Étranger.
	mock.ExpectQuery(`COALESCE\(NULLIF\(department, ''\), 'Étranger'\)`).
		WillReturnRows(sqlmock.NewRows([]string{"department", "count"}).
			AddRow("Atlantique", 15).
			AddRow("Littoral", 5).
			AddRow("Étranger", 3))
	mock.ExpectQuery(`to_char\(date_trunc\('month', created_at\)`).
		WillReturnRows(sqlmock.NewRows([]string{"month", "count"}).
			AddRow("2026-07", 9).
			AddRow("2026-08", 4))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var stats models.StatsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	assert.Equal(t, 23, stats.TotalMembers)
	assert.Equal(t, 4, stats.NewThisMonth)
	require.Len(t, stats.ByDepartment, 3)
	assert.Equal(t, models.DepartmentCount{Department: "Étranger", Count: 3}, stats.ByDepartment[2])
	assert.Equal(t, "2026-08", stats.MonthlySignups[1].Month)

	assert.NoError(t, mock.ExpectationsWereMet())
}
