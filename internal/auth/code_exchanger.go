package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	errMissingAuthorizationCode = errors.New("authorization code must not be empty")
	errMissingClientSecret      = errors.New("client secret configuration required")
	errEmptyIDTokenResponse     = errors.New("token endpoint returned no id token")
	// ErrInvalidExchangerConfig reports an unusable CodeExchanger configuration.
	ErrInvalidExchangerConfig = errors.New("auth: invalid code exchanger config")
)

// CodeExchangerConfig bundles the OAuth client configuration for the
// server-side authorization-code exchange.
type CodeExchangerConfig struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	RedirectURL  string
	HTTPClient   *http.Client
}

// CodeExchanger trades an authorization code for the Google ID token,
// keeping the code and tokens off the browser-visible redirect target.
type CodeExchanger struct {
	tokenURL     string
	clientID     string
	clientSecret string
	redirectURL  string
	httpClient   *http.Client
}

// NewCodeExchanger constructs an exchanger with validated configuration.
func NewCodeExchanger(cfg CodeExchangerConfig) (*CodeExchanger, error) {
	tokenURL := strings.TrimSpace(cfg.TokenURL)
	if tokenURL == "" {
		return nil, fmt.Errorf("%w: token url required", ErrInvalidExchangerConfig)
	}
	clientID := strings.TrimSpace(cfg.ClientID)
	if clientID == "" {
		return nil, fmt.Errorf("%w: client id required", ErrInvalidExchangerConfig)
	}
	if strings.TrimSpace(cfg.ClientSecret) == "" {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExchangerConfig, errMissingClientSecret)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &CodeExchanger{
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: strings.TrimSpace(cfg.ClientSecret),
		redirectURL:  strings.TrimSpace(cfg.RedirectURL),
		httpClient:   httpClient,
	}, nil
}

type tokenEndpointResponse struct {
	IDToken          string `json:"id_token"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Exchange posts the authorization code to the token endpoint and returns
// the ID token from the response.
func (e *CodeExchanger) Exchange(ctx context.Context, code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", errMissingAuthorizationCode
	}

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", e.clientID)
	form.Set("client_secret", e.clientSecret)
	form.Set("redirect_uri", e.redirectURL)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, e.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := e.httpClient.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	var payload tokenEndpointResponse
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return "", err
	}

	if response.StatusCode != http.StatusOK {
		if payload.Error != "" {
			return "", fmt.Errorf("token endpoint rejected code: %s (%s)", payload.Error, payload.ErrorDescription)
		}
		return "", fmt.Errorf("token endpoint returned status %d", response.StatusCode)
	}
	if payload.IDToken == "" {
		return "", errEmptyIDTokenResponse
	}

	return payload.IDToken, nil
}
