package database

import (
	"context"
	"testing"

	"maintenance_contracts/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

func TestNewAWSConfig(t *testing.T) {
	cfg := config.Config{AWSRegion: "sa-east-1", AWSAccessKeyID: "local", AWSSecretAccessKey: "local"}

	awsCfg, err := NewAWSConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if awsCfg.Region != "sa-east-1" {
		t.Fatalf("expected region sa-east-1, got %q", awsCfg.Region)
	}
	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected credentials error: %v", err)
	}
	if creds.AccessKeyID != "local" {
		t.Fatalf("unexpected access key %q", creds.AccessKeyID)
	}
}

func TestEndpointOption(t *testing.T) {
	var opts dynamodb.Options
	endpointOption("http://dynamodb:8000")(&opts)
	if opts.BaseEndpoint == nil || *opts.BaseEndpoint != "http://dynamodb:8000" {
		t.Fatalf("expected base endpoint to be set")
	}

	var untouched dynamodb.Options
	endpointOption("")(&untouched)
	if untouched.BaseEndpoint != nil {
		t.Fatalf("expected no base endpoint")
	}
}
