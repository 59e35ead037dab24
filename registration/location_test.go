package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationPickerDerivesCommunes(t *testing.T) {
	p := NewLocationPicker(nil)
	assert.Empty(t, p.Communes())

	p.SelectDepartment("Littoral")
	assert.Equal(t, []string{"Cotonou"}, p.Communes())

	p.SelectDepartment("")
	assert.Empty(t, p.Communes())
}

func TestLocationPickerClearsInvalidCommune(t *testing.T) {
	cleared := 0
	p := NewLocationPicker(func() { cleared++ })

	// Commune valide dans le département A, invalide dans B.
	p.SelectDepartment("Atlantique")
	require.NoError(t, p.SelectCommune("Ouidah"))
	assert.Equal(t, "Ouidah", p.Commune())

	p.SelectDepartment("Borgou")
	assert.Equal(t, "", p.Commune())
	assert.Equal(t, 1, cleared)
	assert.Contains(t, p.Communes(), "Parakou")
}

func TestLocationPickerKeepsSharedCommune(t *testing.T) {
	// Cotonou figure à la fois dans Atlantique et Littoral :
	// le changement de département ne l'efface pas.
	cleared := 0
	p := NewLocationPicker(func() { cleared++ })

	p.SelectDepartment("Atlantique")
	require.NoError(t, p.SelectCommune("Cotonou"))
	p.SelectDepartment("Littoral")

	assert.Equal(t, "Cotonou", p.Commune())
	assert.Zero(t, cleared)
}

func TestLocationPickerEmptyDepartmentClearsCommune(t *testing.T) {
	cleared := 0
	p := NewLocationPicker(func() { cleared++ })

	p.SelectDepartment("Zou")
	require.NoError(t, p.SelectCommune("Bohicon"))

	p.SelectDepartment("")
	assert.Equal(t, "", p.Commune())
	assert.Equal(t, 1, cleared)
}

func TestLocationPickerRejectsForeignCommune(t *testing.T) {
	p := NewLocationPicker(nil)
	p.SelectDepartment("Mono")

	err := p.SelectCommune("Parakou")
	assert.Error(t, err)
	assert.Equal(t, "", p.Commune())
}

func TestLocationPickerUnknownDepartment(t *testing.T) {
	p := NewLocationPicker(nil)
	p.SelectDepartment("Nowhere")
	assert.Empty(t, p.Communes())
	assert.Error(t, p.SelectCommune("Cotonou"))
}
