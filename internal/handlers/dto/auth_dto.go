package dto

// LoginRequest representa a requisição de login com email e senha
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginResponse representa a resposta de login com o token bearer
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CompleteProfileRequest representa a conclusão de cadastro após o fluxo
// OAuth terminar sem conta correspondente
type CompleteProfileRequest struct {
	FirstName             string   `json:"firstName" binding:"required,min=1,max=50"`
	LastName              string   `json:"lastName" binding:"required,min=1,max=50"`
	Email                 string   `json:"email" binding:"required,email"`
	Password              string   `json:"password" binding:"omitempty,min=8,max=72"`
	Bio                   string   `json:"bio" binding:"omitempty,max=1000"`
	City                  string   `json:"city" binding:"omitempty,max=80"`
	Country               string   `json:"country" binding:"omitempty,max=80"`
	Goals                 []string `json:"goals" binding:"omitempty,dive,max=80"`
	PreferredWorkoutTimes []string `json:"preferredWorkoutTimes" binding:"omitempty,dive,oneof=morning afternoon evening"`
}

// SessionResponse representa o principal da sessão corrente
type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
}
