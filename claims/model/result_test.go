package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.dev/beta/errs"
)

func TestCalculationResultVerify(t *testing.T) {
	valid := CalculationResult{
		TotalBilled:           120,
		TotalCovered:          100,
		TotalRejected:         20,
		CopayPercentage:       10,
		PatientResponsibility: 10,
		ApprovedAmount:        90,
	}

	testCases := []struct {
		name          string
		mutate        func(r *CalculationResult)
		expectedError string
	}{
		{
			name:   "valid_result",
			mutate: func(r *CalculationResult) {},
		},
		{
			name: "rounding_noise_within_tolerance",
			mutate: func(r *CalculationResult) {
				r.ApprovedAmount += 0.004
			},
		},
		{
			name: "billed_does_not_reconcile",
			mutate: func(r *CalculationResult) {
				r.TotalBilled = 150
			},
			expectedError: "integrity check failed: total_billed",
		},
		{
			name: "approved_plus_copay_does_not_reconcile",
			mutate: func(r *CalculationResult) {
				r.ApprovedAmount = 50
			},
			expectedError: "integrity check failed: approved_amount",
		},
		{
			name: "patient_responsibility_does_not_match_copay",
			mutate: func(r *CalculationResult) {
				r.PatientResponsibility = 25
				r.ApprovedAmount = 75
			},
			expectedError: "integrity check failed: patient_responsibility",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := valid
			tc.mutate(&result)

			err := result.Verify()
			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				var e *errs.Error
				require.ErrorAs(t, err, &e)
				assert.Equal(t, errs.Internal, e.Code)
				return
			}
			assert.NoError(t, err)
		})
	}
}
