package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock
//go:generate mockgen -source=blackout.go -destination=../../../tests/mock/queries/blackout.go -package=queriesmock
//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock
//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog.go -package=queriesmock
//go:generate mockgen -source=contact.go -destination=../../../tests/mock/queries/contact.go -package=queriesmock
//go:generate mockgen -source=recommendation.go -destination=../../../tests/mock/queries/recommendation.go -package=queriesmock
//go:generate mockgen -source=settings.go -destination=../../../tests/mock/queries/settings.go -package=queriesmock
//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock
