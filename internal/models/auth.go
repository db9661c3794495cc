package models

// Credentials данные формы логина. Живут только на время запроса,
// никогда не сохраняются.
type Credentials struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// SignupRequest тело POST /user/create.
type SignupRequest struct {
	Email     string `json:"email" form:"email"`
	Username  string `json:"username" form:"username"`
	FirstName string `json:"first_name" form:"first"`
	LastName  string `json:"last_name" form:"last"`
	Password  string `json:"password" form:"password"`
}

// TokenResponse успешный ответ эндпоинтов аутентификации.
type TokenResponse struct {
	Token string `json:"token"`
}
