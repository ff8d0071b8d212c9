package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fadilmartias/intern-coach/internal/client"
	"github.com/fadilmartias/intern-coach/internal/config"
	"github.com/fadilmartias/intern-coach/internal/dto"
	"github.com/fadilmartias/intern-coach/internal/model"
	"github.com/fadilmartias/intern-coach/internal/util"
	"github.com/joho/godotenv"
)

const usage = `usage: coach <command> [arguments]

commands:
  list                 show all tracked applications
  add                  add an application (see 'coach add -h')
  status <id> <value>  move an application to a new status
  delete <id>          remove an application
  clear                remove every application
  stats                show derived statistics
  export               export applications (see 'coach export -h')
  import <file>        replace the store with a JSON export
`

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.LoadClientConfig()
	api := client.New(cfg.BaseURL)
	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "list":
		err = runList(ctx, api)
	case "add":
		err = runAdd(ctx, api, os.Args[2:])
	case "status":
		if len(os.Args) != 4 {
			err = fmt.Errorf("usage: coach status <id> <value>")
			break
		}
		if !model.Status(os.Args[3]).IsValid() {
			err = fmt.Errorf("status must be one of Applied, Interview, Offer, Rejected")
			break
		}
		_, err = api.UpdateStatus(ctx, os.Args[2], os.Args[3])
		if err == nil {
			fmt.Println("Status updated")
		}
	case "delete":
		if len(os.Args) != 3 {
			err = fmt.Errorf("usage: coach delete <id>")
			break
		}
		err = api.Delete(ctx, os.Args[2])
		if err == nil {
			fmt.Println("Application deleted")
		}
	case "clear":
		err = api.Clear(ctx)
		if err == nil {
			fmt.Println("All applications cleared")
		}
	case "stats":
		err = runStats(ctx, api, cfg.WeeklyGoal)
	case "export":
		err = runExport(ctx, api, os.Args[2:])
	case "import":
		if len(os.Args) != 3 {
			err = fmt.Errorf("usage: coach import <file>")
			break
		}
		var n int
		n, err = api.ImportFile(ctx, os.Args[2])
		if err == nil {
			fmt.Printf("Imported %d applications\n", n)
		}
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func runList(ctx context.Context, api *client.Client) error {
	internships, err := api.List(ctx)
	if err != nil {
		return err
	}
	if len(internships) == 0 {
		fmt.Println("No applications yet")
		return nil
	}
	for _, rec := range internships {
		fmt.Printf("%s  %-12s %s — %s (%s, via %s)\n",
			rec.ID, rec.Status, rec.Company, rec.Role, rec.Location, rec.PlatformOrOther())
	}
	return nil
}

func runAdd(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	in := dto.CreateInternshipInput{}
	fs.StringVar(&in.Company, "company", "", "company name")
	fs.StringVar(&in.Role, "role", "", "role title")
	fs.StringVar(&in.Platform, "platform", "", "platform (LinkedIn, Handshake, Indeed, Company Site, Email, Other)")
	fs.StringVar(&in.Location, "location", "", "location")
	fs.StringVar(&in.Status, "status", "Applied", "status (Applied, Interview, Offer, Rejected)")
	fs.StringVar(&in.Deadline, "deadline", time.Now().Format("2006-01-02"), "application date (YYYY-MM-DD)")
	fs.StringVar(&in.Notes, "notes", "", "free-form notes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Same advisory rules the submit form applies; invalid input never
	// reaches the server. The status set is enumerated here, client-side
	// only, like the form's fixed dropdown.
	in.Trim()
	if !model.Status(in.Status).IsValid() {
		return fmt.Errorf("status must be one of Applied, Interview, Offer, Rejected")
	}
	if msgs := util.ValidateStruct(in); len(msgs) > 0 {
		for _, msg := range msgs {
			fmt.Fprintln(os.Stderr, msg)
		}
		return fmt.Errorf("application not submitted")
	}

	rec, err := api.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Printf("Added %s — %s (%s)\n", rec.Company, rec.Role, rec.ID)
	return nil
}

func runStats(ctx context.Context, api *client.Client, weeklyGoal int) error {
	internships, err := api.List(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	s := client.Summarize(internships, now)

	fmt.Printf("Total applications: %d\n", s.Total)
	fmt.Printf("  Applied: %d  Interview: %d  Offer: %d  Rejected: %d\n",
		s.Applied, s.Interviews, s.Offers, s.Rejected)
	fmt.Printf("Interview rate: %.1f%%\n", s.InterviewRate)
	fmt.Printf("Offer rate: %.1f%%\n", s.OfferRate)
	fmt.Printf("Avg response time: %d days\n", s.AvgResponseDays)
	fmt.Printf("This week: %d / %d applications (%d%%)\n",
		s.ThisWeek, weeklyGoal, client.GoalProgressPercent(s.ThisWeek, weeklyGoal))

	fmt.Println("\nBy platform:")
	for _, row := range client.PlatformBreakdown(internships) {
		fmt.Printf("  %-13s %3d applications, %.1f%% offers\n", row.Platform, row.Count, row.OfferRate)
	}

	if buckets := client.CountByDay(internships); len(buckets) > 0 {
		fmt.Println("\nApplications per day:")
		for _, b := range buckets {
			fmt.Printf("  %s: %d\n", b.Label, b.Count)
		}
	}
	if buckets := client.CountByMonth(internships); len(buckets) > 0 {
		fmt.Println("\nApplications per month:")
		for _, b := range buckets {
			fmt.Printf("  %s: %d\n", b.Label, b.Count)
		}
	}

	if recent := client.Recent(internships, 5); len(recent) > 0 {
		fmt.Println("\nRecent applications:")
		for _, rec := range recent {
			fmt.Printf("  %s — %s (%s)\n", rec.Company, rec.Role, rec.Status)
		}
	}
	return nil
}

func runExport(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	format := fs.String("format", "csv", "export format: csv or json")
	out := fs.String("out", "", "output file (default internships_<date>.<format>)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := *out
	if path == "" {
		path = fmt.Sprintf("internships_%s.%s", time.Now().Format("2006-01-02"), *format)
	}

	switch *format {
	case "csv":
		err := api.ExportCSV(ctx, path)
		if err != nil {
			return err
		}
	case "json":
		err := api.ExportJSON(ctx, path)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown export format %q", *format)
	}
	fmt.Printf("Exported to %s\n", path)
	return nil
}
