package response

import (
	"time"

	"party-rental/internal/usecase/queries"
)

type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ContactListResponse struct {
	Items      []ContactResponse `json:"items"`
	NextCursor *string           `json:"nextCursor,omitempty"`
}

func FromContactView(v *queries.ContactView) ContactResponse {
	return ContactResponse{
		ID:        v.ID.String(),
		Name:      v.Name,
		Email:     v.Email,
		Phone:     v.Phone,
		Message:   v.Message,
		Status:    v.Status,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromContactPage(p *queries.ContactPage) ContactListResponse {
	items := make([]ContactResponse, 0, len(p.Items))
	for _, v := range p.Items {
		items = append(items, FromContactView(v))
	}
	return ContactListResponse{Items: items, NextCursor: p.NextCursor}
}
