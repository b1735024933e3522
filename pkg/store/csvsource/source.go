package csvsource

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/de-tools/churn-atlas/pkg/models/store"
	"github.com/rs/zerolog"
)

// Source reads the one-shot bulk customer dataset. It is the fallback behind
// the durable store and is consumed at most once per cache population.
type Source interface {
	ReadAll(ctx context.Context) ([]store.CustomerRow, error)
}

type fileSource struct {
	path string
}

func NewFileSource(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) ReadAll(ctx context.Context) ([]store.CustomerRow, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", s.path, err)
	}
	defer f.Close()

	return Parse(ctx, f)
}

// Parse decodes the customer dataset CSV. Cleaning rules match the ingestion
// contract: a non-numeric TotalCharges becomes 0, Churn maps Yes/No to a
// bool. Rows with a malformed tenure or monthly charge are skipped and
// counted, not fatal.
func Parse(ctx context.Context, r io.Reader) ([]store.CustomerRow, error) {
	logger := zerolog.Ctx(ctx)

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"customerID", "tenure", "MonthlyCharges", "TotalCharges", "Churn", "Contract"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("dataset missing column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []store.CustomerRow
	skipped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		tenure, err := strconv.Atoi(field(record, "tenure"))
		if err != nil || tenure < 0 {
			skipped++
			continue
		}
		monthly, err := strconv.ParseFloat(field(record, "MonthlyCharges"), 64)
		if err != nil {
			skipped++
			continue
		}

		// Missing/non-numeric total charges are coerced to 0, not dropped.
		total, err := strconv.ParseFloat(field(record, "TotalCharges"), 64)
		if err != nil {
			total = 0
		}

		rows = append(rows, store.CustomerRow{
			CustomerID:       field(record, "customerID"),
			Gender:           field(record, "gender"),
			SeniorCitizen:    field(record, "SeniorCitizen") == "1",
			Partner:          field(record, "Partner"),
			Dependents:       field(record, "Dependents"),
			Tenure:           tenure,
			PhoneService:     field(record, "PhoneService"),
			MultipleLines:    field(record, "MultipleLines"),
			InternetService:  field(record, "InternetService"),
			OnlineSecurity:   field(record, "OnlineSecurity"),
			OnlineBackup:     field(record, "OnlineBackup"),
			DeviceProtection: field(record, "DeviceProtection"),
			TechSupport:      field(record, "TechSupport"),
			StreamingTV:      field(record, "StreamingTV"),
			StreamingMovies:  field(record, "StreamingMovies"),
			Contract:         field(record, "Contract"),
			PaperlessBilling: field(record, "PaperlessBilling"),
			PaymentMethod:    field(record, "PaymentMethod"),
			MonthlyCharges:   monthly,
			TotalCharges:     total,
			Churn:            field(record, "Churn") == "Yes",
		})
	}

	if skipped > 0 {
		logger.Warn().Int("skipped", skipped).Msg("dropped malformed dataset rows")
	}

	return rows, nil
}
