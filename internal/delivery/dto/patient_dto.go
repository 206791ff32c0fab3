package dto

type CreatePatientRequest struct {
	Name      string  `json:"name" validate:"required"`
	Surname   string  `json:"surname" validate:"required"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	BirthDate string  `json:"birth_date"`
	Alert     string  `json:"alert"`
	Sex       string  `json:"sex" validate:"omitempty,oneof=M F"`
	WeightKG  float64 `json:"weight_kg"`
	Address   string  `json:"address"`
}

type UpdatePatientRequest struct {
	Name      string  `json:"name"`
	Surname   string  `json:"surname"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	BirthDate string  `json:"birth_date"`
	Alert     string  `json:"alert"`
	Sex       string  `json:"sex"`
	WeightKG  float64 `json:"weight_kg"`
	Address   string  `json:"address"`
}

type PatientResponse struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	Surname   string   `json:"surname"`
	Email     string   `json:"email,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	BirthDate *string  `json:"birth_date,omitempty"`
	Alert     string   `json:"alert,omitempty"`
	Sex       *string  `json:"sex,omitempty"`
	WeightKG  *float64 `json:"weight_kg,omitempty"`
	Address   string   `json:"address,omitempty"`
}
