package claims

import (
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"

	"encore.app/claims/business/adjudication"
	"encore.app/claims/business/analytics"
	"encore.app/claims/business/calculation"
	"encore.app/claims/business/coverage"
	"encore.app/claims/extraction"
	"encore.app/claims/workflow"
)

var validate = validator.New()

const taskQueue = "claim-processing"

//encore:service
type Service struct {
	coverage     coverage.Business
	calculation  calculation.Business
	analytics    analytics.Business
	adjudication adjudication.Business
	extraction   extraction.Client

	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	temporalClient, err := client.Dial(client.Options{
		HostPort: temporalHostPort(),
	})
	if err != nil {
		return nil, fmt.Errorf("dial temporal: %w", err)
	}

	coverageBusiness := coverage.NewCoverageBusiness()
	calculationBusiness := calculation.NewCalculationBusiness()
	analyticsBusiness := analytics.NewAnalyticsBusiness()
	adjudicationBusiness := adjudication.NewAdjudicationBusiness(coverageBusiness, calculationBusiness, analyticsBusiness)
	extractionClient := extraction.NewHTTPClient(extractionBaseURL())

	workflow.SetActivityDependencies(extractionClient, adjudicationBusiness)

	w := worker.New(temporalClient, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.ClaimProcessing)
	w.RegisterActivity(workflow.ExtractPolicyActivity)
	w.RegisterActivity(workflow.ExtractBillActivity)
	w.RegisterActivity(workflow.AdjudicateClaimActivity)
	w.RegisterActivity(workflow.ReviseClaimActivity)

	if err := w.Start(); err != nil {
		temporalClient.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	rlog.Info("claims service initialized", "taskQueue", taskQueue)

	return &Service{
		coverage:     coverageBusiness,
		calculation:  calculationBusiness,
		analytics:    analyticsBusiness,
		adjudication: adjudicationBusiness,
		extraction:   extractionClient,
		temporal:     temporalClient,
		worker:       w,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}

func temporalHostPort() string {
	if hostPort := os.Getenv("TEMPORAL_HOSTPORT"); hostPort != "" {
		return hostPort
	}
	return client.DefaultHostPort
}

func extractionBaseURL() string {
	if baseURL := os.Getenv("EXTRACTION_SERVICE_URL"); baseURL != "" {
		return baseURL
	}
	return "http://localhost:8090"
}
