package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock
//go:generate mockgen -source=blackout.go -destination=../../../tests/mock/commands/blackout.go -package=commandsmock
//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock
//go:generate mockgen -source=contact.go -destination=../../../tests/mock/commands/contact.go -package=commandsmock
//go:generate mockgen -source=settings.go -destination=../../../tests/mock/commands/settings.go -package=commandsmock
