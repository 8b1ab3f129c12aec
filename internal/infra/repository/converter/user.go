package converter

import (
	"party-rental/internal/domain/user"
	"party-rental/internal/infra/sqlstore"
	"party-rental/internal/usecase/queries"
)

func AuthorizedUserViewFromRow(row sqlstore.Users) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       row.ID,
		Email:    row.Email,
		Name:     row.Name,
		Role:     user.Role(row.Role),
		IsActive: row.IsActive,
	}
}
