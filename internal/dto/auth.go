package dto

type RegisterRequestDTO struct {
	Email        string `json:"email" example:"buyer@acme.test"`
	Password     string `json:"password" example:"s3cret"`
	FirstName    string `json:"firstName" example:"Jane"`
	LastName     string `json:"lastName" example:"Doe"`
	Role         string `json:"role" example:"customer"`
	BusinessName string `json:"businessName,omitempty" example:"Acme Ltd"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" example:"buyer@acme.test"`
	Password string `json:"password" example:"s3cret"`
}

type AuthResponseDTO struct {
	Token string `json:"token"`
}
