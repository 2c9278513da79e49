package services

import (
	portsrepo "github.com/SscSPs/ecobudget_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/SscSPs/ecobudget_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// model may be nil, in which case predictions are unavailable.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, model portssvc.PredictionModel) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.TokenService = NewTokenService(cfg)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)
	container.APIToken = NewAPITokenService(repos.APITokenRepo, container.User)

	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.BudgetRepo)
	container.Analysis = NewAnalysisService(repos.TransactionRepo)
	container.Budget = NewBudgetService(repos.TransactionRepo, repos.BudgetRepo)
	container.Carbon = NewCarbonService(repos.TransactionRepo)
	container.Goal = NewGoalService(repos.GoalRepo)
	container.Reflection = NewReflectionService(container.User, container.Goal, cfg.DefaultHourlyWage)
	container.Prediction = NewPredictionService(model, container.Budget, repos.TransactionRepo, cfg.PredictionTimeout)

	return container
}
