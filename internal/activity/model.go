package activity

type Activity struct {
	ID         int     `db:"id" json:"id"`
	Code       string  `db:"code_act" json:"code_act"`
	Name       string  `db:"nom_act" json:"nom_act"`
	MonthlyFee float64 `db:"tarif_mensuel" json:"tarif_mensuel"`
	Capacity   int     `db:"capacite" json:"capacite"`
	Photo      *string `db:"photo" json:"photo"`
}

type CreateActivityRequest struct {
	Code       string  `json:"code_act" binding:"required"`
	Name       string  `json:"nom_act" binding:"required"`
	MonthlyFee float64 `json:"tarif_mensuel" binding:"required"`
	Capacity   int     `json:"capacite" binding:"required,min=1"`
}

type UpdateActivityRequest struct {
	Code       *string  `json:"code_act"`
	Name       *string  `json:"nom_act"`
	MonthlyFee *float64 `json:"tarif_mensuel"`
	Capacity   *int     `json:"capacite"`
}
