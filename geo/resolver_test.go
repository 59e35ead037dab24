package geo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCountryName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"france", "France"},
		{"FRANCE", "France"},
		{"afrique du sud", "Afrique du Sud"},
		{"AFRIQUE DU SUD", "Afrique du Sud"},
		{"corée du sud", "Corée du Sud"},
		{"burkina faso", "Burkina Faso"},
		{"états-unis", "États-Unis"},
		{"ÉTATS-UNIS", "États-Unis"},
		{"royaume-uni", "Royaume-Uni"},
		{"côte d'ivoire", "Côte d'Ivoire"},
		{"pays-bas", "Pays-Bas"},
		{"papouasie-nouvelle-guinée", "Papouasie-Nouvelle-Guinée"},
		{"bénin", "Bénin"},
		// Mot de liaison en tête : toujours capitalisé.
		{"la france", "La France"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeCountryName(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeCountryNameIdempotent(t *testing.T) {
	inputs := []string{
		"états-unis", "corée du sud", "afrique du sud", "bénin",
		"côte d'ivoire", "la france", "guinée équatoriale", "",
	}
	for _, in := range inputs {
		once := NormalizeCountryName(in)
		assert.Equal(t, once, NormalizeCountryName(once), "input %q", in)
	}
	// Tous les noms canoniques doivent être des points fixes.
	for _, c := range Countries {
		assert.Equal(t, c.Name, NormalizeCountryName(c.Name), "country %q", c.Name)
	}
}

func TestFindCountryByName(t *testing.T) {
	t.Run("requête vide", func(t *testing.T) {
		assert.Empty(t, FindCountryByName(""))
		assert.Empty(t, FindCountryByName("   "))
	})

	t.Run("ben trouve le Bénin", func(t *testing.T) {
		results := FindCountryByName("ben")
		require.NotEmpty(t, results)
		assert.LessOrEqual(t, len(results), 10)

		var found bool
		for _, c := range results {
			if c.Name == HomeCountry {
				found = true
			}
			// Chaque résultat contient la requête, accents ignorés.
			assert.Contains(t, foldAccents(strings.ToLower(c.Name)), "ben")
		}
		assert.True(t, found, "Bénin attendu dans les résultats de %q", "ben")
	})

	t.Run("limite à 10 résultats", func(t *testing.T) {
		// "a" apparaît dans la grande majorité des noms.
		assert.Len(t, FindCountryByName("a"), 10)
	})

	t.Run("ordre de la table préservé", func(t *testing.T) {
		results := FindCountryByName("guin")
		require.GreaterOrEqual(t, len(results), 2)
		idx := func(name string) int {
			for i, c := range Countries {
				if c.Name == name {
					return i
				}
			}
			return -1
		}
		for i := 1; i < len(results); i++ {
			assert.Less(t, idx(results[i-1].Name), idx(results[i].Name))
		}
	})

	t.Run("aucun résultat", func(t *testing.T) {
		assert.Empty(t, FindCountryByName("xyzzy"))
	})
}

func TestFindCountryExact(t *testing.T) {
	c, ok := FindCountryExact("bénin")
	require.True(t, ok)
	assert.Equal(t, "BJ", c.Code)
	assert.Equal(t, "+229", c.DialCode)

	c, ok = FindCountryExact("états-unis")
	require.True(t, ok)
	assert.Equal(t, "US", c.Code)

	_, ok = FindCountryExact("Atlantide")
	assert.False(t, ok)
}

func TestCommunesByDepartment(t *testing.T) {
	assert.Equal(t, []string{"Cotonou"}, CommunesByDepartment("Littoral"))
	assert.Equal(t, []string{"Cotonou"}, CommunesByDepartment("littoral"))
	assert.Empty(t, CommunesByDepartment("Nowhere"))

	communes := CommunesByDepartment("Atlantique")
	assert.Contains(t, communes, "Abomey-Calavi")
	assert.Contains(t, communes, "Cotonou")
	assert.NotContains(t, CommunesByDepartment("Borgou"), "Cotonou")
}

func TestPhoneCodeForCountry(t *testing.T) {
	assert.Equal(t, "+229", PhoneCodeForCountry("Bénin"))
	assert.Equal(t, "+33", PhoneCodeForCountry("france"))
	assert.Equal(t, "+1", PhoneCodeForCountry("états-unis"))
	// Pays inconnu : indicatif par défaut, jamais d'erreur.
	assert.Equal(t, DefaultDialCode, PhoneCodeForCountry("Atlantide"))
	assert.Equal(t, DefaultDialCode, PhoneCodeForCountry(""))
}

func TestReferenceDataIntegrity(t *testing.T) {
	seenName := map[string]bool{}
	seenCode := map[string]bool{}
	for _, c := range Countries {
		assert.False(t, seenName[c.Name], "nom dupliqué: %s", c.Name)
		assert.False(t, seenCode[c.Code], "code dupliqué: %s", c.Code)
		seenName[c.Name] = true
		seenCode[c.Code] = true
		assert.True(t, strings.HasPrefix(c.DialCode, "+"), "indicatif sans +: %s", c.Name)
		assert.Len(t, c.Code, 2)
	}

	seenDept := map[string]bool{}
	for _, d := range Departments {
		assert.False(t, seenDept[d.Name], "département dupliqué: %s", d.Name)
		seenDept[d.Name] = true
		assert.NotEmpty(t, d.Communes, "département sans commune: %s", d.Name)
		seenCommune := map[string]bool{}
		for _, commune := range d.Communes {
			assert.False(t, seenCommune[commune], "commune dupliquée dans %s: %s", d.Name, commune)
			seenCommune[commune] = true
		}
	}
}
