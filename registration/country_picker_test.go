package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouvement-citoyen/adhesion-api/geo"
)

type resolveRecorder struct {
	name     string
	dialCode string
	calls    int
}

func (r *resolveRecorder) notify(name, dialCode string) {
	r.name = name
	r.dialCode = dialCode
	r.calls++
}

func TestCountryPickerDefaultsToHomeCountry(t *testing.T) {
	p := NewCountryPicker("", nil)
	assert.Equal(t, CountryResolved, p.State())
	assert.Equal(t, geo.HomeCountry, p.Text())

	c, ok := p.Resolved()
	require.True(t, ok)
	assert.Equal(t, "+229", c.DialCode)
}

func TestCountryPickerInitialValue(t *testing.T) {
	p := NewCountryPicker("FRANCE", nil)
	assert.Equal(t, CountryResolved, p.State())
	assert.Equal(t, "France", p.Text())

	// Valeur initiale inconnue : texte conservé, pas de résolution.
	p = NewCountryPicker("Atlantide", nil)
	assert.Equal(t, CountryTyping, p.State())
	_, ok := p.Resolved()
	assert.False(t, ok)
}

func TestCountryPickerTypingDropsResolution(t *testing.T) {
	p := NewCountryPicker("", nil)

	p.Input("Tog")
	assert.Equal(t, CountryTyping, p.State())
	_, ok := p.Resolved()
	assert.False(t, ok)
	require.NotEmpty(t, p.Suggestions())
	assert.Equal(t, "Togo", p.Suggestions()[0].Name)
}

func TestCountryPickerPinnedResolutionOnEmptyText(t *testing.T) {
	rec := &resolveRecorder{}
	p := NewCountryPicker("", rec.notify)

	// Vider le champ ne fait pas tomber la résolution acquise.
	p.Input("")
	assert.Equal(t, "", p.Text())
	c, ok := p.Resolved()
	require.True(t, ok)
	assert.Equal(t, geo.HomeCountry, c.Name)

	// À la perte de focus, le nom épinglé est restauré.
	p.Blur()
	assert.Equal(t, geo.HomeCountry, p.Text())
	assert.Equal(t, CountryResolved, p.State())
}

func TestCountryPickerChoose(t *testing.T) {
	rec := &resolveRecorder{}
	p := NewCountryPicker("", rec.notify)

	p.Input("séné")
	senegal, ok := geo.FindCountryExact("Sénégal")
	require.True(t, ok)

	p.Choose(senegal)
	assert.Equal(t, "Sénégal", p.Text())
	assert.Equal(t, CountryResolved, p.State())
	assert.Empty(t, p.Suggestions())
	assert.Equal(t, "Sénégal", rec.name)
	assert.Equal(t, "+221", rec.dialCode)
}

func TestCountryPickerBlurResolvesExactText(t *testing.T) {
	rec := &resolveRecorder{}
	p := NewCountryPicker("", rec.notify)

	p.Input("côte d'ivoire")
	assert.Equal(t, CountryTyping, p.State())

	p.Blur()
	assert.Equal(t, "Côte d'Ivoire", p.Text())
	assert.Equal(t, CountryResolved, p.State())
	assert.Equal(t, "+225", rec.dialCode)
}

func TestCountryPickerBlurKeepsUnmatchedText(t *testing.T) {
	p := NewCountryPicker("", nil)

	p.Input("pays imaginaire")
	p.Blur()

	// Texte normalisé conservé, résolution absente, suggestions masquées.
	assert.Equal(t, "Pays Imaginaire", p.Text())
	assert.Equal(t, CountryTyping, p.State())
	_, ok := p.Resolved()
	assert.False(t, ok)
	assert.Empty(t, p.Suggestions())
}

func TestCountryPickerClear(t *testing.T) {
	rec := &resolveRecorder{}
	p := NewCountryPicker("", rec.notify)

	p.Clear()
	assert.Equal(t, CountryEmpty, p.State())
	assert.Equal(t, "", p.Text())
	assert.Empty(t, p.Suggestions())
	// L'indicatif retombe sur la valeur par défaut.
	assert.Equal(t, geo.DefaultDialCode, rec.dialCode)

	// Après effacement, un blur ne restaure rien.
	p.Blur()
	assert.Equal(t, "", p.Text())
	assert.Equal(t, CountryEmpty, p.State())
}

func TestCountryPickerSuggestionsCap(t *testing.T) {
	p := NewCountryPicker("", nil)
	p.Input("a")
	assert.LessOrEqual(t, len(p.Suggestions()), 10)
}
