package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config is the service configuration read from the environment.
// A .env file is loaded by cmd/api through godotenv/autoload before Load runs.
type Config struct {
	Port      int
	JWTSecret string

	PDF      PDF
	AWS      AWS
	Tables   Tables
	Payments Payments
}

type PDF struct {
	// RawMaxItems is the item count above which the secure path lays the document
	// out with the paginated renderer instead of the single-page one.
	RawMaxItems int
	// FallbackPrivilegedOnly restricts the unaccounted fallback renderer to
	// privileged callers. Off by default: the fallback stays open to everyone.
	FallbackPrivilegedOnly bool
	Compress               bool
	DefaultValidityDays    int
}

type AWS struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// DynamoDBEndpoint points the client at a local DynamoDB when set.
	DynamoDBEndpoint string
}

type Tables struct {
	Quotes          string
	Licenses        string
	UsageLogs       string
	LicensePayments string
}

type Payments struct {
	MercadoPagoAccessToken string
	Mock                   bool
	// Sandbox payer used when a TEST- token is configured and the request omits one.
	TestPayerEmail  string
	TestPayerUserID string
}

func Load() Config {
	return Config{
		Port:      getenvInt("PORT", 8080),
		JWTSecret: os.Getenv("JWT_SECRET"),
		PDF: PDF{
			RawMaxItems:            getenvInt("PDF_RAW_MAX_ITEMS", 15),
			FallbackPrivilegedOnly: getenvBool("PDF_FALLBACK_PRIVILEGED_ONLY", false),
			Compress:               getenvBool("PDF_COMPRESS", true),
			DefaultValidityDays:    getenvInt("PDF_DEFAULT_VALIDITY_DAYS", 30),
		},
		AWS: AWS{
			Region: getenvDefault("AWS_REGION", "us-east-1"),
			// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
			AccessKeyID:      getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		},
		Tables: Tables{
			Quotes:          getenvDefault("QUOTES_TABLE", "quotes"),
			Licenses:        getenvDefault("LICENSES_TABLE", "licenses"),
			UsageLogs:       getenvDefault("USAGE_LOGS_TABLE", "pdf_usage_logs"),
			LicensePayments: getenvDefault("LICENSE_PAYMENTS_TABLE", "license_payments"),
		},
		Payments: Payments{
			MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
			Mock:                   getenvBool("PAYMENT_GATEWAY_MOCK", false) || getenvBool("MERCADOPAGO_MOCK", false),
			TestPayerEmail:         strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
			TestPayerUserID:        strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID")),
		},
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getenvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %t", key, v, def)
		return def
	}
	return b
}
