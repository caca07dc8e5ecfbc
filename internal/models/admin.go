package models

/*
|--------------------------------------------------------------------------
| DATABASE MODEL (INTERNAL)
|--------------------------------------------------------------------------
| Dipakai untuk query ke DB
*/
type Admin struct {
	ID             int64
	Specialization Specialization
	WindowNumber   int
}

/*
|--------------------------------------------------------------------------
| REQUEST
|--------------------------------------------------------------------------
*/
type AddAdminRequest struct {
	UserID         int64  `json:"user_id"`
	Specialization string `json:"specialization"`
	WindowNumber   int    `json:"window_number"`
}

/*
|--------------------------------------------------------------------------
| RESPONSE DTO
|--------------------------------------------------------------------------
| Dipakai untuk API response
*/
type AdminResponse struct {
	ID             int64  `json:"id"`
	Specialization string `json:"specialization"`
	WindowNumber   int    `json:"window_number"`
}

func ToAdminResponse(a Admin) AdminResponse {
	return AdminResponse{
		ID:             a.ID,
		Specialization: a.Specialization.String(),
		WindowNumber:   a.WindowNumber,
	}
}
