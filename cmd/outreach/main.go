// Command outreach is the terminal client for the company outreach tracker.
// It drives the same state model the web UI would: load the full collection,
// filter and search in memory, mutate through the store API, and reload
// after every write.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"outreach-tracker/internal/client"
	"outreach-tracker/internal/config"
	"outreach-tracker/internal/export"
	"outreach-tracker/internal/models"
	"outreach-tracker/internal/tracker"
	"outreach-tracker/internal/view"
)

func main() {
	log.SetFlags(0)

	var (
		configPath = flag.String("config", getEnv("CONFIG_PATH", "config/outreach.yaml"), "path to config file")
		serverURL  = flag.String("server", "", "store API base URL (overrides config)")
		search     = flag.String("search", "", "search term (name, location, email, contact)")
		filter     = flag.String("filter", "all", "status filter: all, sent, pending, not-sent, selected, rejected")

		id        = flag.String("id", "", "company id (for edit/delete)")
		name      = flag.String("name", "", "company name")
		detail    = flag.String("detail", "", "company detail")
		contact   = flag.String("contact", "", "contact number")
		email     = flag.String("email", "", "email address")
		location  = flag.String("location", "", "location")
		website   = flag.String("website", "", "website (optional)")
		mailState = flag.String("mail-status", "", "mail status: Not Sent, Sent, Pending")
		interview = flag.String("interview", "", "interview status: No Idea, Selected, Rejected")

		format = flag.String("format", "csv", "export format: csv, xls, print")
		outDir = flag.String("out", ".", "export output directory")
		yes    = flag.Bool("yes", false, "confirm irreversible operations")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	command := flag.Arg(0)

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *serverURL == "" {
		*serverURL = cfg.Client.ServerURL
	}

	t := tracker.New(client.NewClient(*serverURL))
	t.SetFilter(view.Selector(*filter))
	t.SetSearch(*search)

	ctx := context.Background()
	if err := t.Load(ctx); err != nil {
		log.Fatalf("Database offline: %v", err)
	}

	switch command {
	case "list":
		printStats(t)
		printTable(t.View())
	case "stats":
		printStats(t)
	case "add":
		input := tracker.FormInput{
			Name: *name, Detail: *detail, Contact: *contact,
			Email: *email, Location: *location, Website: *website,
			MailSent:  models.MailStatus(*mailState),
			Interview: models.InterviewStatus(*interview),
		}
		if err := t.Create(ctx, input); err != nil {
			log.Fatalf("Failed to add company: %v", err)
		}
		fmt.Println("Company added successfully")
		printStats(t)
	case "edit":
		runEdit(ctx, t, *id, editFlags{
			name: *name, detail: *detail, contact: *contact,
			email: *email, location: *location, website: *website,
			mailStatus: *mailState, interview: *interview,
		})
	case "delete":
		if err := t.Delete(ctx, *id, *yes); err != nil {
			if errors.Is(err, tracker.ErrConfirmationRequired) {
				log.Fatalf("Deleting is irreversible; re-run with -yes to confirm")
			}
			log.Fatalf("Failed to delete company: %v", err)
		}
		fmt.Println("Company deleted successfully")
	case "send":
		runSend(ctx, t, cfg)
	case "export":
		runExport(t, *format, *outDir)
	case "locations":
		for _, loc := range models.Locations {
			fmt.Println(loc)
		}
	default:
		log.Printf("Unknown command %q", command)
		usage()
		os.Exit(2)
	}
}

type editFlags struct {
	name, detail, contact, email, location, website string
	mailStatus, interview                           string
}

// runEdit prefills the form from the existing record, the way the edit modal
// does, then overlays whichever flags were provided.
func runEdit(ctx context.Context, t *tracker.Tracker, id string, f editFlags) {
	if id == "" {
		log.Fatalf("edit requires -id")
	}

	var existing *models.Company
	for _, c := range t.Records() {
		if c.ClientID == id {
			existing = &c
			break
		}
	}
	if existing == nil {
		log.Fatalf("No company with id %s", id)
	}

	input := tracker.FormInput{
		Name:      pick(f.name, existing.CompanyName),
		Detail:    pick(f.detail, existing.CompanyDetail),
		Contact:   pick(f.contact, existing.CompanyContact),
		Email:     pick(f.email, existing.CompanyMail),
		Location:  pick(f.location, existing.CompanyLocation),
		Website:   pick(f.website, existing.CompanyWebsite),
		MailSent:  models.MailStatus(pick(f.mailStatus, string(existing.MailSent))),
		Interview: models.InterviewStatus(pick(f.interview, string(existing.Interview))),
	}

	if err := t.Update(ctx, id, input); err != nil {
		log.Fatalf("Failed to update company: %v", err)
	}
	fmt.Println("Company updated successfully")
}

// runSend prints the Gmail compose link for the unsent companies in the
// current view, then marks each one Sent and reports per-company outcomes.
func runSend(ctx context.Context, t *tracker.Tracker, cfg *config.Config) {
	result, err := t.BulkMarkSent(ctx)
	if errors.Is(err, tracker.ErrNoRecipients) {
		fmt.Println("Warning: no companies with unsent mail in the current view")
		return
	}

	if len(result.Items) > 0 {
		fmt.Println("Open this link to compose the email:")
		fmt.Println(export.GmailComposeURL(result.Recipients(), cfg.Mail.Subject, cfg.Mail.Body))
		fmt.Println()
	}

	for _, item := range result.Items {
		if item.Err != nil {
			fmt.Printf("  FAILED  %s <%s>: %v\n", item.CompanyName, item.Email, item.Err)
		} else {
			fmt.Printf("  sent    %s <%s>\n", item.CompanyName, item.Email)
		}
	}
	if err != nil {
		log.Fatalf("Bulk send finished with errors: %v", err)
	}
	fmt.Printf("Marked %d companies as Sent\n", len(result.Items))
}

func runExport(t *tracker.Tracker, format, outDir string) {
	var (
		name  string
		write func(f *os.File) error
	)

	companies := t.View()
	switch format {
	case "csv":
		name = export.CSVFilename()
		write = func(f *os.File) error { return export.WriteCSV(f, companies) }
	case "xls":
		name = export.ExcelFilename()
		write = func(f *os.File) error { return export.WriteExcel(f, companies) }
	case "print":
		name = export.PrintFilename()
		write = func(f *os.File) error { return export.WritePrintHTML(f, companies) }
	default:
		log.Fatalf("Unknown export format %q (want csv, xls, or print)", format)
	}

	path := filepath.Join(outDir, name)
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}
	fmt.Printf("Exported %d companies to %s\n", len(companies), path)
}

func printStats(t *tracker.Tracker) {
	stats := t.Stats()
	fmt.Printf("Database %s | total: %d  mail sent: %d  interviewed: %d  pending: %d\n",
		t.Status(), stats.Total, stats.MailSent, stats.Interviewed, stats.Pending)
}

func printTable(companies []models.Company) {
	if len(companies) == 0 {
		fmt.Println("No companies found matching your filters")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "S.NO\tID\tNAME\tCONTACT\tEMAIL\tLOCATION\tMAIL\tINTERVIEW")
	for _, c := range companies {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.SerialNo, c.ClientID, c.CompanyName, c.CompanyContact,
			c.CompanyMail, c.CompanyLocation, c.MailSent, c.Interview)
	}
	w.Flush()
}

func pick(flagValue, existing string) string {
	if strings.TrimSpace(flagValue) != "" {
		return flagValue
	}
	return existing
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: outreach [flags] <command>

Commands:
  list       show the filtered company list with stats
  stats      show aggregate stats only
  add        add a company (-name -detail -contact -email -location [...])
  edit       edit a company by -id; unset flags keep existing values
  delete     delete a company by -id (requires -yes)
  send       Gmail compose link + mark unsent companies in the view as Sent
  export     write the filtered view to a file (-format csv|xls|print)
  locations  print the suggested location list

Flags:
`)
	flag.PrintDefaults()
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
