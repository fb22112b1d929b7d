package googleauth

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"
)

// Scopes required by the collector: Drive for folders/uploads and
// Sheets for the metadata ledger
var Scopes = []string{
	drive.DriveScope,
	sheets.SpreadsheetsScope,
}

// Options holds the credential configuration for building an HTTP client
type Options struct {
	// AuthMode is "oauth" for a browser flow with a persisted token,
	// or "service_account" for a JWT credentials file
	AuthMode        string
	CredentialsFile string
	TokenFile       string // Only used in oauth mode
}

// HTTPClient builds an authenticated HTTP client shared by the Drive and
// Sheets adapters
func HTTPClient(ctx context.Context, opts Options) (*http.Client, error) {
	switch opts.AuthMode {
	case "service_account":
		return serviceAccountClient(ctx, opts.CredentialsFile)
	case "", "oauth":
		return oauthClient(ctx, opts.CredentialsFile, opts.TokenFile)
	default:
		return nil, fmt.Errorf("unknown auth mode %q: expected oauth or service_account", opts.AuthMode)
	}
}

// serviceAccountClient builds a client from service-account JWT credentials
func serviceAccountClient(ctx context.Context, credentialsFile string) (*http.Client, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file: %w", err)
	}

	config, err := google.JWTConfigFromJSON(b, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse credentials: %w", err)
	}

	return config.Client(ctx), nil
}
