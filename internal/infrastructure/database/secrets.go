package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

var ErrMissingDBCredentials = errors.New("database credentials not configured")

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SecretsAPI is the part of *secretsmanager.Client used to read credentials.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

func NewSecretsClient(ctx context.Context, region string) (*secretsmanager.Client, error) {
	opts := []func(*config.LoadOptions) error{}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return secretsmanager.NewFromConfig(cfg), nil
}

// RetrieveCredentials prefers explicit username/password and otherwise reads the
// AWSCURRENT version of secretID, a JSON document {"username", "password"}.
func RetrieveCredentials(ctx context.Context, secrets SecretsAPI, username, password, secretID string) (Credentials, error) {
	if username != "" && password != "" {
		return Credentials{Username: username, Password: password}, nil
	}
	if secretID == "" || secrets == nil {
		return Credentials{}, ErrMissingDBCredentials
	}

	result, err := secrets.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretID),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		log.Printf("[database][secrets] get secret failed secret_id=%s err=%v", secretID, err)
		return Credentials{}, fmt.Errorf("get secret %s: %w", secretID, err)
	}
	if result.SecretString == nil {
		return Credentials{}, fmt.Errorf("secret %s has no string value", secretID)
	}

	var creds Credentials
	if err := json.Unmarshal([]byte(*result.SecretString), &creds); err != nil {
		return Credentials{}, fmt.Errorf("decode secret %s: %w", secretID, err)
	}
	if creds.Username == "" || creds.Password == "" {
		return Credentials{}, ErrMissingDBCredentials
	}
	log.Printf("[database][secrets] credentials loaded secret_id=%s", secretID)
	return creds, nil
}
