package register

import (
	"time"

	"github.com/dungeon-app/booking-service/internal/service/users/models"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Category string `json:"category"`
}

// UserResponse HTTP response model
type UserResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Category  string `json:"category"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *RegisterRequest) ToServiceRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Category: r.Category,
	}
}

// FromServiceResponse converts the service response into the HTTP model.
func FromServiceResponse(resp *models.UserResponse) *UserResponse {
	return &UserResponse{
		ID:        resp.ID,
		Name:      resp.Name,
		Email:     resp.Email,
		Role:      resp.Role,
		Category:  resp.Category,
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
