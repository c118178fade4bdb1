package stats

// ActivityStats carries per-activity enrollment counts straight from the
// aggregation query.
type ActivityStats struct {
	Code       string  `db:"code_act"`
	Name       string  `db:"nom_act"`
	MonthlyFee float64 `db:"tarif_mensuel"`
	Capacity   int     `db:"capacite"`
	Count      int     `db:"nb_inscriptions"`
}

type activityStatsResponse struct {
	Code            string  `json:"code_act"`
	Name            string  `json:"nom_act"`
	MonthlyFee      float64 `json:"tarif_mensuel"`
	Capacity        int     `json:"capacite"`
	Count           int     `json:"nb_inscriptions"`
	AvailablePlaces int     `json:"places_disponibles"`
}

type popularActivity struct {
	Name  string `json:"nom"`
	Count int    `json:"inscriptions"`
}

type overviewResponse struct {
	TotalMembers int              `json:"total_members"`
	MostPopular  *popularActivity `json:"most_popular_activity"`
	LeastPopular *popularActivity `json:"least_popular_activity"`
}

// MemberName is one entry in the members-per-activity grouping.
type MemberName struct {
	LastName  string `json:"nom"`
	FirstName string `json:"prenom"`
}

type enrolledMember struct {
	ActivityName string `db:"activite_nom"`
	LastName     string `db:"nom"`
	FirstName    string `db:"prenom"`
}
