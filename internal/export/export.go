// Package export serializes the currently filtered projection into CSV,
// spreadsheet-openable HTML, and print-ready HTML. It only reads; no export
// touches the store.
package export

import (
	"fmt"
	"strconv"
	"time"

	"outreach-tracker/internal/models"
)

// Headers is the fixed column order shared by all three formats.
var Headers = []string{
	"S.No", "Company Name", "Details", "Contact", "Email", "Location", "Website", "Mail Status", "Interview",
}

// ExcelContentType is the legacy spreadsheet media type declared on the
// tabular export so spreadsheet applications claim the file.
const ExcelContentType = "application/vnd.ms-excel"

func row(c *models.Company) []string {
	return []string{
		strconv.Itoa(c.SerialNo),
		c.CompanyName,
		c.CompanyDetail,
		c.CompanyContact,
		c.CompanyMail,
		c.CompanyLocation,
		c.CompanyWebsite,
		string(c.MailSent),
		string(c.Interview),
	}
}

func dateStamp() string {
	return time.Now().Format("2006-01-02")
}

func filename(ext string) string {
	return fmt.Sprintf("companies_%s.%s", dateStamp(), ext)
}

// CSVFilename returns the date-stamped name for the CSV export.
func CSVFilename() string { return filename("csv") }

// ExcelFilename returns the date-stamped name for the spreadsheet export.
func ExcelFilename() string { return filename("xls") }

// PrintFilename returns the date-stamped name for the print-ready export.
func PrintFilename() string { return filename("html") }
