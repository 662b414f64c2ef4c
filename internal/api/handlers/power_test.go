package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/dom/superheroes-api/internal/testutil"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowerHandler_List(t *testing.T) {
	ts := testutil.NewTestServer(t)

	powers := testutil.SeedPowers(t, ts.DB.DB, 3)

	resp, err := http.Get(ts.URL("/powers"))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var result []PowerResponse
	testutil.AssertJSONResponse(t, resp, &result)
	require.Len(t, result, 3)
	for i, p := range result {
		assert.Equal(t, powers[i].ID, p.ID)
		assert.Equal(t, powers[i].Description, p.Description)
	}
}

func TestPowerHandler_Get(t *testing.T) {
	ts := testutil.NewTestServer(t)

	power := testutil.NewPowerBuilder().Build(t, ts.DB.DB)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name:           "existing power",
			path:           "/powers/" + itoa(power.ID),
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result map[string]any
				testutil.AssertJSONResponse(t, resp, &result)
				assert.ElementsMatch(t, []string{"id", "description"}, keys(result))
				assert.Equal(t, power.Description, result["description"])
			},
		},
		{
			name:           "missing power",
			path:           "/powers/9999",
			expectedStatus: http.StatusNotFound,
			checkResponse: func(t *testing.T, resp *http.Response) {
				testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Resource not found")
			},
		},
		{
			name:           "id overflows",
			path:           "/powers/99999999999999999999999",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL(tt.path))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestPowerHandler_Update(t *testing.T) {
	ts := testutil.NewTestServer(t)

	power := testutil.NewPowerBuilder().Build(t, ts.DB.DB)
	original := power.Description
	path := ts.URL("/powers/" + itoa(power.ID))

	t.Run("too short keeps stored description", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodPatch, path, map[string]any{"description": "too short"})
		testutil.AssertValidationErrorResponse(t, resp)

		stored, err := ts.Services.Power.GetPower(context.Background(), power.ID)
		require.NoError(t, err)
		assert.Equal(t, original, stored.Description)
	})

	t.Run("null description is a validation error", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodPatch, path, `{"description": null}`)
		testutil.AssertValidationErrorResponse(t, resp)
	})

	t.Run("wrongly typed description is a bad request", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodPatch, path, `{"description": 12345678901234567890}`)
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Bad request")
	})

	t.Run("array body is a bad request", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodPatch, path, `["description"]`)
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Bad request")
	})

	t.Run("empty body is a bad request", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodPatch, path, nil)
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Bad request")
	})

	t.Run("valid description is stored", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodPatch, path, map[string]any{"description": "a sufficiently long valid description text"})
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var result PowerResponse
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, power.ID, result.ID)
		assert.Equal(t, "a sufficiently long valid description text", result.Description)

		stored, err := ts.Services.Power.GetPower(context.Background(), power.ID)
		require.NoError(t, err)
		assert.Equal(t, "a sufficiently long valid description text", stored.Description)
	})

	t.Run("missing power wins over invalid description", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodPatch, ts.URL("/powers/9999"), map[string]any{"description": "short"})
		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Resource not found")
	})

	t.Run("validation failures are counted", func(t *testing.T) {
		assert.GreaterOrEqual(t, promtest.ToFloat64(ts.Metrics.ValidationFailures.WithLabelValues("description")), 2.0)
	})
}
