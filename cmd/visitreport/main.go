// Command visitreport fetches the visit list from the backend, applies the
// report filter and writes the Visit Report artifact (PDF or XLSX), the same
// export the web UI offers.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"harshenterprise-backend/client"
	"harshenterprise-backend/report"
	"harshenterprise-backend/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var (
		start    = flag.String("start", "", "start date (YYYY-MM-DD), inclusive")
		end      = flag.String("end", "", "end date (YYYY-MM-DD), inclusive")
		customer = flag.String("customer", "", "customer name substring filter")
		format   = flag.String("format", "pdf", "output format: pdf or xlsx")
		outDir   = flag.String("out", ".", "directory to write the report into")
	)
	flag.Parse()

	filter := report.Filter{CustomerName: *customer}
	if *start != "" {
		t, err := utils.ParseInputDate(*start)
		if err != nil {
			log.Fatalf("invalid -start: %v", err)
		}
		filter.StartDate = t
	}
	if *end != "" {
		t, err := utils.ParseInputDate(*end)
		if err != nil {
			log.Fatalf("invalid -end: %v", err)
		}
		filter.EndDate = t
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	api := client.New(os.Getenv("BACKEND_URL"))
	identifier := os.Getenv("API_IDENTIFIER")
	password := os.Getenv("API_PASSWORD")
	if identifier != "" {
		if err := api.Login(ctx, identifier, password); err != nil {
			log.Fatalf("login failed: %v", err)
		}
	}

	visits, err := api.Visits().List(ctx)
	if err != nil {
		log.Fatalf("failed to fetch visits: %v", err)
	}

	now := time.Now()
	filtered := report.Apply(visits, filter)
	rows := report.Rows(visits, filtered, now)
	total := report.TotalRevenue(filtered)

	var (
		out  []byte
		name string
	)
	switch *format {
	case "pdf":
		name = report.ReportFileName(now)
		out, err = report.ExportPDF(rows, total, now)
	case "xlsx":
		name = report.ExcelFileName(now)
		out, err = report.ExportExcel(rows, total)
	default:
		log.Fatalf("unknown -format %q, expected pdf or xlsx", *format)
	}
	if err != nil {
		log.Fatalf("failed to render report: %v", err)
	}

	path := filepath.Join(*outDir, name)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", path, err)
	}

	log.Printf("Wrote %s (%d visits, total Rs. %s)", path, len(filtered), utils.FormatINR(total))
}
