package usecase

import (
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/interfaces"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/model"
)

type UseCases struct {
	repo    interfaces.Repository
	dataset *model.Dataset

	Dashboard *DashboardUseCase
}

func New(repo interfaces.Repository, dataset *model.Dataset) *UseCases {
	uc := &UseCases{
		repo:    repo,
		dataset: dataset,
	}

	uc.Dashboard = NewDashboardUseCase(repo, dataset)

	return uc
}
