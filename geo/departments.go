package geo

// Department est un département du Bénin avec ses communes,
// dans l'ordre d'affichage du formulaire.
type Department struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Communes []string `json:"communes"`
}

// Departments est la hiérarchie administrative du Bénin (12 départements).
// Les noms de communes sont uniques au sein d'un département.
var Departments = []Department{
	{
		ID:       "alibori",
		Name:     "Alibori",
		Communes: []string{"Banikoara", "Gogounou", "Kandi", "Karimama", "Malanville", "Ségbana"},
	},
	{
		ID:       "atacora",
		Name:     "Atacora",
		Communes: []string{"Boukoumbé", "Cobly", "Kérou", "Kouandé", "Matéri", "Natitingou", "Péhunco", "Tanguiéta", "Toucountouna"},
	},
	{
		ID:       "atlantique",
		Name:     "Atlantique",
		Communes: []string{"Abomey-Calavi", "Allada", "Cotonou", "Kpomassè", "Ouidah", "Sô-Ava", "Toffo", "Tori-Bossito", "Zè"},
	},
	{
		ID:       "borgou",
		Name:     "Borgou",
		Communes: []string{"Bembèrèkè", "Kalalé", "N'Dali", "Nikki", "Parakou", "Pèrèrè", "Sinendé", "Tchaourou"},
	},
	{
		ID:       "collines",
		Name:     "Collines",
		Communes: []string{"Bantè", "Dassa-Zoumè", "Glazoué", "Ouèssè", "Savalou", "Savè"},
	},
	{
		ID:       "couffo",
		Name:     "Couffo",
		Communes: []string{"Aplahoué", "Djakotomey", "Dogbo", "Klouékanmè", "Lalo", "Toviklin"},
	},
	{
		ID:       "donga",
		Name:     "Donga",
		Communes: []string{"Bassila", "Copargo", "Djougou", "Ouaké"},
	},
	{
		ID:       "littoral",
		Name:     "Littoral",
		Communes: []string{"Cotonou"},
	},
	{
		ID:       "mono",
		Name:     "Mono",
		Communes: []string{"Athiémé", "Bopa", "Comè", "Grand-Popo", "Houéyogbé", "Lokossa"},
	},
	{
		ID:       "oueme",
		Name:     "Ouémé",
		Communes: []string{"Adjarra", "Adjohoun", "Aguégués", "Akpro-Missérété", "Avrankou", "Bonou", "Dangbo", "Porto-Novo", "Sèmè-Kpodji"},
	},
	{
		ID:       "plateau",
		Name:     "Plateau",
		Communes: []string{"Adja-Ouèrè", "Ifangni", "Kétou", "Pobè", "Sakété"},
	},
	{
		ID:       "zou",
		Name:     "Zou",
		Communes: []string{"Abomey", "Agbangnizoun", "Bohicon", "Covè", "Djidja", "Ouinhi", "Za-Kpota", "Zagnanado", "Zogbodomey"},
	},
}
