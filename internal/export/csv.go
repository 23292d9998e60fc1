package export

import (
	"encoding/csv"
	"io"

	"outreach-tracker/internal/models"
)

// WriteCSV writes the header row followed by one row per company. Cell
// values with embedded delimiters, quotes, or newlines come out properly
// quoted and escaped.
func WriteCSV(w io.Writer, companies []models.Company) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Headers); err != nil {
		return err
	}
	for i := range companies {
		if err := cw.Write(row(&companies[i])); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
