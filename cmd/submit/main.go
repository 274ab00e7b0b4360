// Command submit sends one job application through the intake pipeline
// from the terminal: local validation, evidence uploads, then the POST the
// web form would make.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/ifrashafqat/job-portal/internal/client"
	"github.com/ifrashafqat/job-portal/internal/config"
	"github.com/ifrashafqat/job-portal/internal/dtos"
	"github.com/ifrashafqat/job-portal/internal/uploader"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	var form dtos.ApplicationRequest
	endpoint := flag.String("endpoint", fmt.Sprintf("http://localhost:%d/api/applications", cfg.Port), "intake endpoint URL")
	taxIDImage := flag.String("tax-id-image", "", "path to the tax ID document image")
	licenseImage := flag.String("license-image", "", "path to the license document image")

	flag.StringVar(&form.FirstName, "first-name", "", "first name")
	flag.StringVar(&form.LastName, "last-name", "", "last name")
	flag.StringVar(&form.Email, "email", "", "email address")
	flag.StringVar(&form.Phone, "phone", "", "phone number")
	flag.StringVar(&form.TaxID, "tax-id", "", "tax ID (123-45-6789)")
	flag.StringVar(&form.Occupation, "occupation", "", "current occupation")
	flag.StringVar(&form.Address, "address", "", "street address")
	flag.StringVar(&form.City, "city", "", "city")
	flag.StringVar(&form.State, "state", "", "state or province")
	flag.StringVar(&form.PostalCode, "postal-code", "", "postal code")
	flag.StringVar(&form.Country, "country", "", "country")
	flag.StringVar(&form.Position, "position", "", "position applying for")
	flag.Parse()

	up := uploader.New(cfg.ImgBBAPIKey, cfg.UploadTimeout)
	up.Endpoint = cfg.ImgBBEndpoint
	o := client.NewOrchestrator(*endpoint, up, nil)

	sub := &client.Submission{Form: form}
	if sub.TaxIDFile, err = readEvidence(*taxIDImage); err != nil {
		log.Fatal(err)
	}
	if sub.LicenseFile, err = readEvidence(*licenseImage); err != nil {
		log.Fatal(err)
	}

	app, fieldErrs, err := o.Submit(context.Background(), sub)
	if len(fieldErrs) > 0 {
		fmt.Fprintln(os.Stderr, "Validation failed:")
		for _, fe := range fieldErrs {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", fe.Field, fe.Message)
		}
		os.Exit(1)
	}
	if err != nil {
		log.Fatal("Submission failed: ", err)
	}

	fmt.Printf("Application %s submitted (status %s)\n", app.ID, app.Status)
}

// readEvidence loads a newly selected document image, inferring its MIME
// type from the extension. An empty path means no new file was selected.
func readEvidence(path string) (*client.EvidenceFile, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read evidence file: %w", err)
	}
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return &client.EvidenceFile{Data: data, MimeType: mimeType}, nil
}
