package csvsource

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const datasetHeader = "customerID,gender,SeniorCitizen,Partner,Dependents,tenure,PhoneService," +
	"MultipleLines,InternetService,OnlineSecurity,OnlineBackup,DeviceProtection,TechSupport," +
	"StreamingTV,StreamingMovies,Contract,PaperlessBilling,PaymentMethod,MonthlyCharges,TotalCharges,Churn"

func TestParse(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes a well-formed dataset", func(t *testing.T) {
		data := datasetHeader + "\n" +
			"7590-VHVEG,Female,0,Yes,No,1,No,No phone service,DSL,No,Yes,No,No,No,No," +
			"Month-to-month,Yes,Electronic check,29.85,29.85,No\n" +
			"5575-GNVDE,Male,1,No,No,34,Yes,No,Fiber optic,Yes,No,Yes,No,No,No," +
			"One year,No,Mailed check,56.95,1889.5,Yes\n"

		rows, err := Parse(ctx, strings.NewReader(data))
		require.NoError(t, err)
		require.Len(t, rows, 2)

		first := rows[0]
		assert.Equal(t, "7590-VHVEG", first.CustomerID)
		assert.False(t, first.SeniorCitizen)
		assert.Equal(t, 1, first.Tenure)
		assert.Equal(t, 29.85, first.MonthlyCharges)
		assert.Equal(t, "Month-to-month", first.Contract)
		assert.False(t, first.Churn)

		second := rows[1]
		assert.True(t, second.SeniorCitizen)
		assert.Equal(t, 1889.5, second.TotalCharges)
		assert.True(t, second.Churn)
	})

	t.Run("blank total charges coerce to zero", func(t *testing.T) {
		data := datasetHeader + "\n" +
			"4472-LVYGI,Female,0,Yes,Yes,0,No,No phone service,DSL,Yes,No,Yes,Yes,Yes,No," +
			"Two year,Yes,Bank transfer (automatic),52.55, ,No\n"

		rows, err := Parse(ctx, strings.NewReader(data))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 0.0, rows[0].TotalCharges)
	})

	t.Run("malformed rows are skipped, not fatal", func(t *testing.T) {
		data := datasetHeader + "\n" +
			"0001-A,Male,0,No,No,not-a-number,Yes,No,DSL,No,No,No,No,No,No," +
			"Month-to-month,Yes,Mailed check,20.05,20.05,No\n" +
			"0002-B,Male,0,No,No,-3,Yes,No,DSL,No,No,No,No,No,No," +
			"Month-to-month,Yes,Mailed check,20.05,20.05,No\n" +
			"0003-C,Male,0,No,No,12,Yes,No,DSL,No,No,No,No,No,No," +
			"Month-to-month,Yes,Mailed check,broken,240.6,No\n" +
			"0004-D,Male,0,No,No,12,Yes,No,DSL,No,No,No,No,No,No," +
			"Month-to-month,Yes,Mailed check,20.05,240.6,No\n"

		rows, err := Parse(ctx, strings.NewReader(data))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "0004-D", rows[0].CustomerID)
	})

	t.Run("missing required column fails", func(t *testing.T) {
		data := "customerID,tenure,MonthlyCharges,TotalCharges,Contract\n" +
			"0001-A,1,20.05,20.05,Month-to-month\n"

		rows, err := Parse(ctx, strings.NewReader(data))
		assert.Nil(t, rows)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `missing column "Churn"`)
	})

	t.Run("empty reader fails on the header", func(t *testing.T) {
		rows, err := Parse(ctx, strings.NewReader(""))
		assert.Nil(t, rows)
		assert.Error(t, err)
	})
}

func TestFileSource_ReadAll(t *testing.T) {
	source := NewFileSource("testdata/does-not-exist.csv")

	rows, err := source.ReadAll(context.Background())
	assert.Nil(t, rows)
	assert.Error(t, err)
}
