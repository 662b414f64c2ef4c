package service

import (
	"github.com/dom/superheroes-api/internal/repository"
)

type Services struct {
	Hero      *HeroService
	Power     *PowerService
	HeroPower *HeroPowerService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Hero:      NewHeroService(repos),
		Power:     NewPowerService(repos),
		HeroPower: NewHeroPowerService(repos),
	}
}
